/*
Package taper evaluates the segmented stem-profile equations of Clark,
Souter and Schlaegel (Stem Profile Equations for Southern Tree Species,
USDA Forest Service, 1991) over a resolved domain.StemProfile.

The profile treats a stem as three joined sections: a butt flare below
breast height (4.5 ft), a near-conic lower stem between breast height and
Girard height (17.3 ft), and a merged upper stem above it. Each estimator
selects the section its argument falls in and applies that section's
closed form:

  - DiameterAt: stem diameter at a given height
  - HeightAt: height at which the stem tapers to a given diameter
  - Volume: cubic-foot volume between two heights
  - Weight: green weight in tons between two heights

All functions are pure. They read, never mutate, the profile they are
given, so a single resolved profile may be shared across goroutines.
*/
package taper
