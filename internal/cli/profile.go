package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jwlunsford/stems"
	"github.com/jwlunsford/stems/internal/presentation/tui"
)

// BuildProfileMarkdown renders the whole-stem profile as a markdown table:
// predicted diameter and cumulative volume from the ground at every step
// feet, closing with a row at the tip.
func BuildProfileMarkdown(model *stems.Model, step float64) (string, error) {
	if step <= 0 {
		return "", fmt.Errorf("profile step must be positive, got %v", step)
	}

	stem := model.Stem()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", stem.Species, stem.Region)
	fmt.Fprintf(&b, "dbh %.1f in, total height %.1f ft, %s bark", stem.DBH, stem.TotalHeight, stem.Bark)
	if girard, err := stem.GirardDiameter(); err == nil {
		fmt.Fprintf(&b, ", girard form-class diameter %.2f in", girard)
	}
	b.WriteString("\n\n")

	b.WriteString("| height (ft) | diameter (in) | volume (cu ft) |\n")
	b.WriteString("|------------:|--------------:|---------------:|\n")

	for h := 0.0; h < stem.TotalHeight; h += step {
		if err := writeProfileRow(&b, model, h); err != nil {
			return "", err
		}
	}
	if err := writeProfileRow(&b, model, stem.TotalHeight); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeProfileRow(b *strings.Builder, model *stems.Model, h float64) error {
	d, err := model.DiameterAt(h)
	if err != nil {
		return err
	}
	v, err := model.Volume(0, h)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "| %11.1f | %13.2f | %14.0f |\n", h, d, v)
	return nil
}

// RenderMarkdown dresses markdown up for terminals. Piped output and
// renderer failures fall back to the raw text.
func RenderMarkdown(md string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}
	out, err := tui.NewRenderer()(md)
	if err != nil {
		return md
	}
	return out
}
