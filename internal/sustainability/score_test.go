package sustainability

import (
	"math"
	"testing"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// benchmarkInputs runs every metric exactly at its research benchmark.
func benchmarkInputs() Inputs {
	return Inputs{
		RF: RFProcessParameters{
			TemperatureOutfeedC:       BenchmarkOutfeedTemperatureC,
			TemperatureElectrodeC:     BenchmarkElectrodeTemperatureC,
			EnergyContributionPercent: BenchmarkRFEnergyContributionPercent,
			AnodeCurrentA:             1.79,
			GridCurrentA:              0.51,
		},
		ProteinConcentrateKg:    219,
		TotalMassKg:             1000,
		EnergyIntensityKWhPerKg: BenchmarkEnergyIntensityKWhPerKg,
		WaterIntensityKgPerKg:   BenchmarkWaterIntensityKgPerKg,
	}
}

func TestScore_AtBenchmarks_ScoresOneHundred(t *testing.T) {
	r, err := Score(benchmarkInputs())
	if err != nil {
		t.Fatalf("Score err = %v", err)
	}

	if !approxEqual(r.OverallScore, 100, 1e-9) {
		t.Errorf("OverallScore = %v, want 100", r.OverallScore)
	}
	if len(r.SubScores) != 4 {
		t.Fatalf("got %d sub-scores, want 4", len(r.SubScores))
	}
	for _, s := range r.SubScores {
		if !approxEqual(s.Ratio, 1, 1e-9) {
			t.Errorf("%s ratio = %v, want 1", s.Metric, s.Ratio)
		}
	}
	if len(r.Violations) != 0 {
		t.Errorf("Violations = %v, want none at the benchmark operating point", r.Violations)
	}
}

func TestScore_WeightsSumToOne(t *testing.T) {
	r, err := Score(benchmarkInputs())
	if err != nil {
		t.Fatalf("Score err = %v", err)
	}

	var sum float64
	for _, s := range r.SubScores {
		sum += s.Weight
	}
	if !approxEqual(sum, 1, 1e-9) {
		t.Errorf("sum(weights) = %v, want 1", sum)
	}
}

func TestScore_SubScoreWeighting(t *testing.T) {
	in := benchmarkInputs()
	in.ProteinConcentrateKg = 109.5 // half the yield benchmark

	r, err := Score(in)
	if err != nil {
		t.Fatalf("Score err = %v", err)
	}

	// Dropping the 0.35-weight yield metric to half its target removes
	// 0.5 * 0.35 * 100 = 17.5 points.
	if !approxEqual(r.OverallScore, 82.5, 1e-9) {
		t.Errorf("OverallScore = %v, want 82.5", r.OverallScore)
	}
}

func TestScore_BandViolations(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(*Inputs)
		wantMetric string
	}{
		{"outfeed too hot", func(in *Inputs) { in.RF.TemperatureOutfeedC = 91.0 }, "outfeed_temperature"},
		{"outfeed too cold", func(in *Inputs) { in.RF.TemperatureOutfeedC = 78.0 }, "outfeed_temperature"},
		{"electrode out of band", func(in *Inputs) { in.RF.TemperatureElectrodeC = 107.0 }, "electrode_temperature"},
		{"rf contribution out of band", func(in *Inputs) { in.RF.EnergyContributionPercent = 16.0 }, "rf_energy_contribution"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := benchmarkInputs()
			tc.mutate(&in)

			r, err := Score(in)
			if err != nil {
				t.Fatalf("Score err = %v", err)
			}
			if len(r.Violations) != 1 {
				t.Fatalf("Violations = %#v, want exactly one", r.Violations)
			}
			if r.Violations[0].Metric != tc.wantMetric {
				t.Errorf("violated metric = %s, want %s", r.Violations[0].Metric, tc.wantMetric)
			}
		})
	}
}

func TestScore_WithinToleranceIsNotViolation(t *testing.T) {
	in := benchmarkInputs()
	in.RF.TemperatureOutfeedC = BenchmarkOutfeedTemperatureC + ToleranceTemperatureC

	r, err := Score(in)
	if err != nil {
		t.Fatalf("Score err = %v", err)
	}
	if len(r.Violations) != 0 {
		t.Errorf("edge of band reported as violation: %#v", r.Violations)
	}
}

func TestScore_InvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero total mass", func(in *Inputs) { in.TotalMassKg = 0 }},
		{"negative concentrate mass", func(in *Inputs) { in.ProteinConcentrateKg = -1 }},
		{"concentrate exceeds total", func(in *Inputs) { in.ProteinConcentrateKg = in.TotalMassKg + 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := benchmarkInputs()
			tc.mutate(&in)

			if _, err := Score(in); !apperr.IsInvalidInput(err) {
				t.Fatalf("err = %v, want InvalidInputError", err)
			}
		})
	}
}
