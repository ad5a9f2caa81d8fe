package memory

import "github.com/jwlunsford/stems/pkg/domain"

// BuiltIn returns a Provider preloaded with the coefficient table the
// module ships: the principal southern pines (loblolly, slash, longleaf,
// shortleaf) for the deep south and piedmont regions. Segmentation rows
// are shared across regions; weight rows are per species.
func BuiltIn() *Provider {
	return New(builtinTable)
}

var builtinTable = Table{
	Regression: []RegressionRow{
		{Region: "deep south", Species: "loblolly pine", Bark: domain.InsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.48391, Reg4B: 0.93884, Reg17A: 0.80079, Reg17B: 0.57255}},
		{Region: "deep south", Species: "loblolly pine", Bark: domain.OutsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.50022, Reg4B: 0.94077, Reg17A: 0.83089, Reg17B: 0.56999}},
		{Region: "deep south", Species: "slash pine", Bark: domain.InsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.63275, Reg4B: 0.94809, Reg17A: 0.78993, Reg17B: 0.58302}},
		{Region: "deep south", Species: "longleaf pine", Bark: domain.InsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.55485, Reg4B: 0.94502, Reg17A: 0.79401, Reg17B: 0.60702}},
		{Region: "deep south", Species: "shortleaf pine", Bark: domain.InsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.46465, Reg4B: 0.92041, Reg17A: 0.78596, Reg17B: 0.54011}},
		{Region: "piedmont", Species: "loblolly pine", Bark: domain.InsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.53119, Reg4B: 0.94373, Reg17A: 0.80157, Reg17B: 0.56235}},
		{Region: "piedmont", Species: "shortleaf pine", Bark: domain.InsideBark,
			Coefficients: domain.RegressionCoefficients{Reg4A: -0.49494, Reg4B: 0.91876, Reg17A: 0.78304, Reg17B: 0.55797}},
	},
	Segmentation: []SegmentationRow{
		{Species: "loblolly pine", Bark: domain.InsideBark,
			Coefficients: domain.SegmentationCoefficients{ButtR: 32.284, ButtC: 0.10449, ButtE: 158.899, LowerP: 6.3157, UpperB: 2.178477, UpperA: 0.64}},
		{Species: "loblolly pine", Bark: domain.OutsideBark,
			Coefficients: domain.SegmentationCoefficients{ButtR: 27.310, ButtC: 0.11624, ButtE: 193.204, LowerP: 5.8816, UpperB: 2.034095, UpperA: 0.59}},
		{Species: "slash pine", Bark: domain.InsideBark,
			Coefficients: domain.SegmentationCoefficients{ButtR: 38.501, ButtC: 0.09852, ButtE: 141.028, LowerP: 7.0222, UpperB: 2.316468, UpperA: 0.67}},
		{Species: "longleaf pine", Bark: domain.InsideBark,
			Coefficients: domain.SegmentationCoefficients{ButtR: 35.172, ButtC: 0.10703, ButtE: 169.717, LowerP: 6.8108, UpperB: 2.253421, UpperA: 0.66}},
		{Species: "shortleaf pine", Bark: domain.InsideBark,
			Coefficients: domain.SegmentationCoefficients{ButtR: 29.434, ButtC: 0.11293, ButtE: 133.255, LowerP: 5.9914, UpperB: 2.110548, UpperA: 0.62}},
	},
	Weight: []WeightRow{
		{Species: "loblolly pine", Coefficient: domain.WeightCoefficient{TonsPerCubicFoot: 0.025}},
		{Species: "slash pine", Coefficient: domain.WeightCoefficient{TonsPerCubicFoot: 0.027}},
		{Species: "longleaf pine", Coefficient: domain.WeightCoefficient{TonsPerCubicFoot: 0.028}},
		{Species: "shortleaf pine", Coefficient: domain.WeightCoefficient{TonsPerCubicFoot: 0.024}},
	},
}
