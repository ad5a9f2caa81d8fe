package cli

import (
	"context"
	"fmt"

	"github.com/jwlunsford/stems/pkg/ports"
)

// Estimate names one estimator invocation.
type Estimate struct {
	Kind  string  // "diameter", "height", "volume" or "weight"
	At    float64 // target height (diameter) or top diameter (height)
	Lower float64 // interval bounds for volume and weight
	Upper float64
}

// RunEstimate resolves the tree's coefficients and prints a single estimate
// to stdout: inches for diameter, feet for height, cubic feet for volume,
// tons for weight.
func RunEstimate(opts RunOptions, est Estimate) error {
	model, closer, err := createModel(opts)
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	if err := model.Resolve(context.Background()); err != nil {
		return fmt.Errorf("failed to resolve coefficients: %w", err)
	}

	switch est.Kind {
	case "diameter":
		d, err := model.DiameterAt(est.At)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", d)
	case "height":
		h, err := model.HeightAt(est.At)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", h)
	case "volume":
		v, err := model.Volume(est.Lower, est.Upper)
		if err != nil {
			return err
		}
		fmt.Printf("%.0f\n", v)
	case "weight":
		w, err := model.Weight(est.Lower, est.Upper)
		if err != nil {
			return err
		}
		fmt.Printf("%.2f\n", w)
	default:
		return fmt.Errorf("unknown estimate kind %q", est.Kind)
	}

	return nil
}

// RunProfile resolves the tree's coefficients and prints the whole-stem
// profile table, prettified when stdout is a terminal.
func RunProfile(opts RunOptions, step float64) error {
	model, closer, err := createModel(opts)
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	if err := model.Resolve(context.Background()); err != nil {
		return fmt.Errorf("failed to resolve coefficients: %w", err)
	}

	md, err := BuildProfileMarkdown(model, step)
	if err != nil {
		return err
	}

	fmt.Print(RenderMarkdown(md))
	return nil
}

// RunSpecies lists the species the configured coefficient source can resolve.
func RunSpecies(opts RunOptions) error {
	logger := createLogger(opts.Verbose)

	provider, closer, err := createProvider(opts, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	lister, ok := provider.(ports.SpeciesLister)
	if !ok {
		return fmt.Errorf("the configured coefficient source does not support species listing")
	}

	species, err := lister.ListSpecies(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list species: %w", err)
	}

	for _, s := range species {
		fmt.Println(s)
	}
	return nil
}
