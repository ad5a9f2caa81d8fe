/*
Package ports defines the driven ports (interfaces) for the stems engine.

The taper equations are pure functions; every external fact they need is
resolved ahead of time through these interfaces, so coefficient tables can
live in memory, in a YAML file, in Postgres, or behind a cache without the
core knowing which.

# Key Interfaces

  - CoefficientProvider: resolves a stem's descriptors to its regression,
    segmentation, and weight coefficient groups.
  - SpeciesLister: optional enumeration of covered species, for
    introspection tooling.
*/
package ports
