/*
Package domain contains the core domain models for stem-profile estimation.

It defines the StemProfile entity (tree descriptors plus resolved coefficient
groups), the coefficient group types published by Clark et al. in "Stem
Profile Equations for Southern Tree Species", and the error taxonomy shared
by every package in the module. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - StemProfile: A single tree (region, species, dbh, total height, bark
    indicator) and its write-once coefficient groups.
  - RegressionCoefficients: Derive inside-bark dbh and the Girard-height
    (17.3 ft) diameter from outside-bark dbh.
  - SegmentationCoefficients: Shape the butt, lower-stem and upper-stem
    sections of the taper curve.
  - WeightCoefficient: Convert cubic-foot volume to green tons.
  - LookupError / DomainError: Structured failures for coefficient misses
    and mathematical domain violations.
*/
package domain
