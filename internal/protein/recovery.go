// Package protein computes protein recovery and yield metrics for
// fractionation runs: recovery rate, protein loss, concentration factor and
// theoretical yield.
//
// Recovery rate R = (Mf*Cf)/(Mi*Ci) * 100 where Mi/Mf are input/output
// masses and Ci/Cf the input/output protein contents (percent).
package protein

import (
	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// RecoveryInputs describe one fractionation run. Protein contents are
// percentages in (0, 100]. TargetProteinPercent is optional (0 = no
// theoretical yield requested).
type RecoveryInputs struct {
	InputMassKg           float64 `yaml:"input_mass" json:"input_mass"`
	OutputMassKg          float64 `yaml:"output_mass" json:"output_mass"`
	InitialProteinPercent float64 `yaml:"initial_protein_content" json:"initial_protein_content"`
	OutputProteinPercent  float64 `yaml:"output_protein_content" json:"output_protein_content"`
	TargetProteinPercent  float64 `yaml:"target_protein_content,omitempty" json:"target_protein_content,omitempty"`
}

// RecoveryMetrics are the derived recovery figures of a run.
type RecoveryMetrics struct {
	// RecoveryRatePercent is the share of input protein mass recovered in
	// the concentrate.
	RecoveryRatePercent float64 `yaml:"recovery_rate" json:"recovery_rate"`

	// ProteinLossKg is the protein mass lost to the coarse fraction.
	ProteinLossKg float64 `yaml:"protein_loss" json:"protein_loss"`

	// ConcentrationFactor is the output/input protein content ratio.
	ConcentrationFactor float64 `yaml:"concentration_factor" json:"concentration_factor"`

	// YieldPercent is the output/input mass ratio.
	YieldPercent float64 `yaml:"yield_percent" json:"yield_percent"`

	// TheoreticalYieldPercent is Ci/Ct * 100; zero when no target content
	// was supplied.
	TheoreticalYieldPercent float64 `yaml:"theoretical_yield,omitempty" json:"theoretical_yield,omitempty"`
}

// Recovery calculates recovery rate, protein loss, concentration factor and
// yields for one fractionation run.
func Recovery(in RecoveryInputs) (RecoveryMetrics, error) {
	if in.InputMassKg <= 0 {
		return RecoveryMetrics{}, apperr.InvalidInput("input_mass", "must be positive")
	}
	if in.OutputMassKg <= 0 {
		return RecoveryMetrics{}, apperr.InvalidInput("output_mass", "must be positive")
	}
	if in.InitialProteinPercent <= 0 || in.InitialProteinPercent > 100 {
		return RecoveryMetrics{}, apperr.InvalidInput("initial_protein_content", "must be in (0, 100]")
	}
	if in.OutputProteinPercent <= 0 || in.OutputProteinPercent > 100 {
		return RecoveryMetrics{}, apperr.InvalidInput("output_protein_content", "must be in (0, 100]")
	}
	if in.TargetProteinPercent < 0 || in.TargetProteinPercent > 100 {
		return RecoveryMetrics{}, apperr.InvalidInput("target_protein_content", "must be in [0, 100]")
	}

	initialProteinMass := in.InputMassKg * in.InitialProteinPercent / 100
	finalProteinMass := in.OutputMassKg * in.OutputProteinPercent / 100

	metrics := RecoveryMetrics{
		RecoveryRatePercent: finalProteinMass / initialProteinMass * 100,
		ProteinLossKg:       initialProteinMass - finalProteinMass,
		ConcentrationFactor: in.OutputProteinPercent / in.InitialProteinPercent,
		YieldPercent:        in.OutputMassKg / in.InputMassKg * 100,
	}
	if in.TargetProteinPercent > 0 {
		metrics.TheoreticalYieldPercent = in.InitialProteinPercent / in.TargetProteinPercent * 100
	}
	return metrics, nil
}
