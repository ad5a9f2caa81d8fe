package postgres_test

import (
	"context"
	"os"
	"sort"
	"testing"

	"github.com/jwlunsford/stems/pkg/adapters/memory"
	"github.com/jwlunsford/stems/pkg/adapters/postgres"
	"github.com/jwlunsford/stems/pkg/domain"
	contract "github.com/jwlunsford/stems/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rows deliberately carry a "test" marker in every key so seeding a
// shared database cannot collide with real coefficient rows.
var (
	seedReg = domain.RegressionCoefficients{Reg4A: -0.51, Reg4B: 0.93, Reg17A: 0.79, Reg17B: 0.58}
	seedSeg = domain.SegmentationCoefficients{ButtR: 30.1, ButtC: 0.11, ButtE: 150.0, LowerP: 6.1, UpperB: 2.2, UpperA: 0.63}
	seedWgt = domain.WeightCoefficient{TonsPerCubicFoot: 0.026}

	seedTable = memory.Table{
		Regression: []memory.RegressionRow{
			{Region: "test flatwoods", Species: "test pond pine", Bark: domain.InsideBark, Coefficients: seedReg},
		},
		Segmentation: []memory.SegmentationRow{
			{Species: "test pond pine", Bark: domain.InsideBark, Coefficients: seedSeg},
		},
		Weight: []memory.WeightRow{
			{Species: "test pond pine", Coefficient: seedWgt},
		},
	}
)

func testProvider(t *testing.T) *postgres.Provider {
	t.Helper()
	dsn := os.Getenv("STEMS_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("STEMS_TEST_PG_DSN not set; skipping postgres provider tests")
	}

	p, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	ctx := context.Background()
	require.NoError(t, p.EnsureSchema(ctx))
	require.NoError(t, p.Seed(ctx, seedTable))
	return p
}

func TestProvider_Contract(t *testing.T) {
	p := testProvider(t)

	contract.CoefficientProviderContractTest(t, p, []contract.Fixture{
		{
			Region: "test flatwoods", Species: "test pond pine", Bark: domain.InsideBark,
			Regression: seedReg, Segmentation: seedSeg, Weight: &seedWgt,
		},
	})
}

func TestSeed_Overwrites(t *testing.T) {
	p := testProvider(t)
	ctx := context.Background()

	updated := seedTable
	updated.Weight = []memory.WeightRow{
		{Species: "test pond pine", Coefficient: domain.WeightCoefficient{TonsPerCubicFoot: 0.031}},
	}
	require.NoError(t, p.Seed(ctx, updated))

	w, err := p.FindWeight(ctx, "test pond pine")
	require.NoError(t, err)
	assert.Equal(t, 0.031, w.TonsPerCubicFoot)

	// Restore the original factor for other tests.
	require.NoError(t, p.Seed(ctx, seedTable))
}

func TestListSpecies(t *testing.T) {
	p := testProvider(t)

	species, err := p.ListSpecies(context.Background())
	require.NoError(t, err)
	assert.Contains(t, species, "test pond pine")
	assert.True(t, sort.StringsAreSorted(species), "species list must be sorted")
}
