// Package file loads coefficient tables from YAML or JSON documents on
// disk into a ports.CoefficientProvider. Documents use the column names
// of the published tables (reg4_a, butt_r, lstem_p, ...), so a table can
// be transcribed straight from the literature:
//
//	regression:
//	  - region: deep south
//	    species: loblolly pine
//	    bark: inside
//	    reg4_a: -0.48391
//	    reg4_b: 0.93884
//	    reg17_a: 0.80079
//	    reg17_b: 0.57255
//	segmentation:
//	  - species: loblolly pine
//	    bark: inside
//	    butt_r: 32.284
//	    butt_c: 0.10449
//	    butt_e: 158.899
//	    lstem_p: 6.3157
//	    ustem_b: 2.178477
//	    ustem_a: 0.64
//	weight:
//	  - species: loblolly pine
//	    tons_per_cubic_foot: 0.025
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwlunsford/stems/pkg/adapters/memory"
	"github.com/jwlunsford/stems/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Provider implements ports.CoefficientProvider from a coefficient
// document on disk. The document is read once at Load; lookups are served
// from memory afterwards.
type Provider struct {
	*memory.Provider
	path string
}

// Path returns the file the provider was loaded from.
func (p *Provider) Path() string { return p.path }

// Rows carry every coefficient as a pointer so an omitted column can be
// told apart from a literal zero and rejected at load.
type document struct {
	Regression   []regressionRow   `mapstructure:"regression"`
	Segmentation []segmentationRow `mapstructure:"segmentation"`
	Weight       []weightRow       `mapstructure:"weight"`
}

type regressionRow struct {
	Region  string   `mapstructure:"region"`
	Species string   `mapstructure:"species"`
	Bark    string   `mapstructure:"bark"`
	Reg4A   *float64 `mapstructure:"reg4_a"`
	Reg4B   *float64 `mapstructure:"reg4_b"`
	Reg17A  *float64 `mapstructure:"reg17_a"`
	Reg17B  *float64 `mapstructure:"reg17_b"`
}

type segmentationRow struct {
	Species string   `mapstructure:"species"`
	Bark    string   `mapstructure:"bark"`
	ButtR   *float64 `mapstructure:"butt_r"`
	ButtC   *float64 `mapstructure:"butt_c"`
	ButtE   *float64 `mapstructure:"butt_e"`
	LowerP  *float64 `mapstructure:"lstem_p"`
	UpperB  *float64 `mapstructure:"ustem_b"`
	UpperA  *float64 `mapstructure:"ustem_a"`
}

type weightRow struct {
	Species          string   `mapstructure:"species"`
	TonsPerCubicFoot *float64 `mapstructure:"tons_per_cubic_foot"`
}

// Load reads a coefficient document and returns a Provider backed by its
// rows. The format follows the file extension: .json is parsed as JSON,
// everything else as YAML. Incomplete rows and unknown keys are load
// errors, not silent zeros.
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coefficient file: %w", err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	}

	var doc document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		ErrorUnused:      true, // reject misspelled columns
		WeaklyTypedInput: true, // accept bark: 1 alongside bark: inside
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%s: invalid coefficient document: %w", path, err)
	}

	table, err := doc.toTable()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Provider{Provider: memory.New(table), path: path}, nil
}

func (d *document) toTable() (memory.Table, error) {
	var table memory.Table

	for i, r := range d.Regression {
		bark, err := domain.ParseBark(r.Bark)
		if err != nil {
			return memory.Table{}, fmt.Errorf("regression row %d: %w", i, err)
		}
		if r.Region == "" || r.Species == "" {
			return memory.Table{}, fmt.Errorf("regression row %d: region and species are required", i)
		}
		if err := allSet(map[string]*float64{
			"reg4_a": r.Reg4A, "reg4_b": r.Reg4B, "reg17_a": r.Reg17A, "reg17_b": r.Reg17B,
		}); err != nil {
			return memory.Table{}, fmt.Errorf("regression row %d (%s): %w", i, r.Species, err)
		}
		table.Regression = append(table.Regression, memory.RegressionRow{
			Region:  r.Region,
			Species: r.Species,
			Bark:    bark,
			Coefficients: domain.RegressionCoefficients{
				Reg4A: *r.Reg4A, Reg4B: *r.Reg4B, Reg17A: *r.Reg17A, Reg17B: *r.Reg17B,
			},
		})
	}

	for i, r := range d.Segmentation {
		bark, err := domain.ParseBark(r.Bark)
		if err != nil {
			return memory.Table{}, fmt.Errorf("segmentation row %d: %w", i, err)
		}
		if r.Species == "" {
			return memory.Table{}, fmt.Errorf("segmentation row %d: species is required", i)
		}
		if err := allSet(map[string]*float64{
			"butt_r": r.ButtR, "butt_c": r.ButtC, "butt_e": r.ButtE,
			"lstem_p": r.LowerP, "ustem_b": r.UpperB, "ustem_a": r.UpperA,
		}); err != nil {
			return memory.Table{}, fmt.Errorf("segmentation row %d (%s): %w", i, r.Species, err)
		}
		table.Segmentation = append(table.Segmentation, memory.SegmentationRow{
			Species: r.Species,
			Bark:    bark,
			Coefficients: domain.SegmentationCoefficients{
				ButtR: *r.ButtR, ButtC: *r.ButtC, ButtE: *r.ButtE,
				LowerP: *r.LowerP, UpperB: *r.UpperB, UpperA: *r.UpperA,
			},
		})
	}

	for i, r := range d.Weight {
		if r.Species == "" {
			return memory.Table{}, fmt.Errorf("weight row %d: species is required", i)
		}
		if r.TonsPerCubicFoot == nil {
			return memory.Table{}, fmt.Errorf("weight row %d (%s): missing tons_per_cubic_foot", i, r.Species)
		}
		table.Weight = append(table.Weight, memory.WeightRow{
			Species:     r.Species,
			Coefficient: domain.WeightCoefficient{TonsPerCubicFoot: *r.TonsPerCubicFoot},
		})
	}

	return table, nil
}

func allSet(fields map[string]*float64) error {
	for name, v := range fields {
		if v == nil {
			return fmt.Errorf("missing %s", name)
		}
	}
	return nil
}
