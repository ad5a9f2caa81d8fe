package postgres

import (
	"context"
	"fmt"

	"github.com/jwlunsford/stems/pkg/adapters/memory"
)

const schema = `
CREATE TABLE IF NOT EXISTS regcoeff (
	id      SERIAL PRIMARY KEY,
	region  TEXT NOT NULL,
	spp     TEXT NOT NULL,
	bark    INTEGER NOT NULL,
	reg4_a  DOUBLE PRECISION NOT NULL,
	reg4_b  DOUBLE PRECISION NOT NULL,
	reg17_a DOUBLE PRECISION NOT NULL,
	reg17_b DOUBLE PRECISION NOT NULL,
	UNIQUE (region, spp, bark)
);
CREATE TABLE IF NOT EXISTS segcoeff (
	id      SERIAL PRIMARY KEY,
	spp     TEXT NOT NULL,
	bark    INTEGER NOT NULL,
	butt_r  DOUBLE PRECISION NOT NULL,
	butt_c  DOUBLE PRECISION NOT NULL,
	butt_e  DOUBLE PRECISION NOT NULL,
	lstem_p DOUBLE PRECISION NOT NULL,
	ustem_b DOUBLE PRECISION NOT NULL,
	ustem_a DOUBLE PRECISION NOT NULL,
	UNIQUE (spp, bark)
);
CREATE TABLE IF NOT EXISTS weightcoeff (
	id                  SERIAL PRIMARY KEY,
	spp                 TEXT NOT NULL UNIQUE,
	tons_per_cubic_foot DOUBLE PRECISION NOT NULL
);`

// EnsureSchema creates the coefficient tables when they do not already
// exist.
func (p *Provider) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create coefficient schema: %w", err)
	}
	return nil
}

// Seed upserts the rows of an in-memory table, keyed like the lookups.
// Existing rows are overwritten, so re-seeding a newer table revision is
// safe.
func (p *Provider) Seed(ctx context.Context, table memory.Table) error {
	const insReg = `
		INSERT INTO regcoeff (region, spp, bark, reg4_a, reg4_b, reg17_a, reg17_b)
		VALUES (:region, :spp, :bark, :reg4_a, :reg4_b, :reg17_a, :reg17_b)
		ON CONFLICT (region, spp, bark) DO UPDATE SET
			reg4_a = EXCLUDED.reg4_a, reg4_b = EXCLUDED.reg4_b,
			reg17_a = EXCLUDED.reg17_a, reg17_b = EXCLUDED.reg17_b`
	const insSeg = `
		INSERT INTO segcoeff (spp, bark, butt_r, butt_c, butt_e, lstem_p, ustem_b, ustem_a)
		VALUES (:spp, :bark, :butt_r, :butt_c, :butt_e, :lstem_p, :ustem_b, :ustem_a)
		ON CONFLICT (spp, bark) DO UPDATE SET
			butt_r = EXCLUDED.butt_r, butt_c = EXCLUDED.butt_c, butt_e = EXCLUDED.butt_e,
			lstem_p = EXCLUDED.lstem_p, ustem_b = EXCLUDED.ustem_b, ustem_a = EXCLUDED.ustem_a`
	const insWgt = `
		INSERT INTO weightcoeff (spp, tons_per_cubic_foot)
		VALUES (:spp, :tons_per_cubic_foot)
		ON CONFLICT (spp) DO UPDATE SET tons_per_cubic_foot = EXCLUDED.tons_per_cubic_foot`

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range table.Regression {
		_, err := tx.NamedExecContext(ctx, insReg, map[string]any{
			"region": r.Region, "spp": r.Species, "bark": int(r.Bark),
			"reg4_a": r.Coefficients.Reg4A, "reg4_b": r.Coefficients.Reg4B,
			"reg17_a": r.Coefficients.Reg17A, "reg17_b": r.Coefficients.Reg17B,
		})
		if err != nil {
			return fmt.Errorf("failed to seed regression row %s/%s: %w", r.Region, r.Species, err)
		}
	}
	for _, r := range table.Segmentation {
		_, err := tx.NamedExecContext(ctx, insSeg, map[string]any{
			"spp": r.Species, "bark": int(r.Bark),
			"butt_r": r.Coefficients.ButtR, "butt_c": r.Coefficients.ButtC, "butt_e": r.Coefficients.ButtE,
			"lstem_p": r.Coefficients.LowerP, "ustem_b": r.Coefficients.UpperB, "ustem_a": r.Coefficients.UpperA,
		})
		if err != nil {
			return fmt.Errorf("failed to seed segmentation row %s: %w", r.Species, err)
		}
	}
	for _, r := range table.Weight {
		_, err := tx.NamedExecContext(ctx, insWgt, map[string]any{
			"spp": r.Species, "tons_per_cubic_foot": r.Coefficient.TonsPerCubicFoot,
		})
		if err != nil {
			return fmt.Errorf("failed to seed weight row %s: %w", r.Species, err)
		}
	}
	return tx.Commit()
}
