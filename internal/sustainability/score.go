// Package sustainability combines efficiency and impact metrics into a
// weighted composite score and flags process parameters that fall outside
// the validated research bands for the RF-assisted process.
package sustainability

import (
	"math"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// Inputs are the technical and environmental metrics consumed by the
// scorer. Intensity figures come from the impact assessment; the protein
// masses from the technical parameters.
type Inputs struct {
	RF                      RFProcessParameters `yaml:"rf" json:"rf"`
	ProteinConcentrateKg    float64             `yaml:"protein_concentrate_mass" json:"protein_concentrate_mass"`
	TotalMassKg             float64             `yaml:"total_mass" json:"total_mass"`
	EnergyIntensityKWhPerKg float64             `yaml:"energy_intensity" json:"energy_intensity"`
	WaterIntensityKgPerKg   float64             `yaml:"water_intensity" json:"water_intensity"`
}

// SubScore is one weighted metric's contribution to the composite score.
type SubScore struct {
	Metric string  `yaml:"metric" json:"metric"`
	Value  float64 `yaml:"value" json:"value"`
	Target float64 `yaml:"target" json:"target"`
	Weight float64 `yaml:"weight" json:"weight"`

	// Ratio is Value/Target; the weighted sum of ratios times 100 is the
	// overall score.
	Ratio float64 `yaml:"ratio" json:"ratio"`
}

// BandViolation reports one operating parameter outside its validated
// band. Message formatting for "improvement opportunities" stays with the
// caller; the engine returns structured data only.
type BandViolation struct {
	Metric    string  `yaml:"metric" json:"metric"`
	Current   float64 `yaml:"current" json:"current"`
	Target    float64 `yaml:"target" json:"target"`
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`
}

// Report is the scorer output: the composite percentage, its weighted
// sub-scores and any violated operating bands.
type Report struct {
	OverallScore float64         `yaml:"overall_score" json:"overall_score"`
	SubScores    []SubScore      `yaml:"sub_scores" json:"sub_scores"`
	Violations   []BandViolation `yaml:"violations" json:"violations"`
}

// Score computes the weighted composite sustainability score
// (sum of value/target * weight * 100 across the metric registry) and
// checks the fixed operating bands independently.
func Score(in Inputs) (Report, error) {
	if in.TotalMassKg <= 0 {
		return Report{}, apperr.InvalidInput("total_mass", "must be positive")
	}
	if in.ProteinConcentrateKg < 0 {
		return Report{}, apperr.InvalidInput("protein_concentrate_mass", "must not be negative")
	}
	if in.ProteinConcentrateKg > in.TotalMassKg {
		return Report{}, apperr.InvalidInput("protein_concentrate_mass", "cannot exceed total mass")
	}

	var (
		overall   float64
		subScores []SubScore
	)
	for _, spec := range registry() {
		value := spec.Value(in)
		ratio := value / spec.Target
		overall += ratio * spec.Weight * 100
		subScores = append(subScores, SubScore{
			Metric: spec.Name,
			Value:  value,
			Target: spec.Target,
			Weight: spec.Weight,
			Ratio:  ratio,
		})
	}

	var violations []BandViolation
	for _, b := range bands() {
		current := b.Current(in)
		if math.Abs(current-b.Target) > b.Tolerance {
			violations = append(violations, BandViolation{
				Metric:    b.Metric,
				Current:   current,
				Target:    b.Target,
				Tolerance: b.Tolerance,
			})
		}
	}

	logf("score=%.1f%% sub-scores=%d violations=%d", overall, len(subScores), len(violations))

	return Report{
		OverallScore: overall,
		SubScores:    subScores,
		Violations:   violations,
	}, nil
}
