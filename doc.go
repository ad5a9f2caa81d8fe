/*
Package stems predicts the taper profile of southern tree species from the
segmented stem-profile equations of Clark, Souter and Schlaegel (1991):
diameter at any height, height to any top diameter, and cubic-foot volume or
green weight between any two heights.

The model splits the stem at breast height (4.5 ft) and at Girard height
(17.3 ft) and fits a separate form to each section, joined so the profile
passes through the inside-bark DBH and the Girard form-class diameter. All a
caller supplies is the tree record (region, species, DBH, total height, bark
basis); the coefficients that shape the three sections are resolved from a
CoefficientProvider.

# Architecture

The core (pkg/domain, pkg/taper) is pure: no IO, no logging, explicit
errors. Coefficient storage hides behind the pkg/ports.CoefficientProvider
interface, with adapters for an in-memory table (preloaded with the
published coastal plain / piedmont pine coefficients), a YAML file, a
Postgres database mirroring the original coefficient schema, and a Redis
read-through cache that can wrap any of the others. This keeps the math
embeddable in any host: CLI, batch cruise processing, or a service.

# Usage

Bind a tree to a Model, resolve its coefficients, then estimate:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/jwlunsford/stems"
		"github.com/jwlunsford/stems/pkg/domain"
	)

	func main() {
		// 16.0 in DBH, 90 ft tall, inside-bark equation forms.
		model, err := stems.New("deep south", "loblolly pine", 16, 90, domain.InsideBark)
		if err != nil {
			log.Fatal(err)
		}

		if err := model.Resolve(context.Background()); err != nil {
			log.Fatal(err)
		}

		d, _ := model.DiameterAt(50)   // in at 50 ft
		h, _ := model.HeightAt(9.8)    // ft to a 9.8 in top
		v, _ := model.Volume(1, 50)    // cu ft, stump to 50 ft
		w, _ := model.Weight(1, 50)    // green tons over the same log

		fmt.Println(d, h, v, w)
	}

Unknown species surface as *domain.LookupError naming the missing
coefficient group(s); estimates on an unresolved stem fail with
domain.ErrUnresolvedParameters rather than returning zeros.
*/
package stems
