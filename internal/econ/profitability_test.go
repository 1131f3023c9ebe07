package econ

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// referenceProfitabilityInputs pairs the reference cost case with a
// 5 USD/kg selling price.
func referenceProfitabilityInputs() ProfitabilityInputs {
	return ProfitabilityInputs{
		TotalAnnualCost:        1_400_000,
		ProductionVolumeKgYear: 500_000,
		ProjectDurationYears:   10,
		DiscountRate:           0.10,
		EquipmentCost:          2_500_000,
		InstallationFactor:     0.3,
		SellingPricePerKg:      5.0,
	}
}

func TestProfitability_ReferenceCase(t *testing.T) {
	m, err := Profitability(referenceProfitabilityInputs())
	if err != nil {
		t.Fatalf("Profitability err = %v", err)
	}

	if !approxEqual(m.AnnualRevenue, 2_500_000, 1e-9) {
		t.Errorf("AnnualRevenue = %v, want 2500000", m.AnnualRevenue)
	}
	if !approxEqual(m.AnnualProfit, 1_100_000, 1e-9) {
		t.Errorf("AnnualProfit = %v, want 1100000", m.AnnualProfit)
	}
	if !approxEqual(m.TotalInvestment, 3_250_000, 1e-9) {
		t.Errorf("TotalInvestment = %v, want 3250000", m.TotalInvestment)
	}
	if !approxEqual(m.ROIPercent, 33.846153846, 1e-6) {
		t.Errorf("ROIPercent = %v, want ~33.85", m.ROIPercent)
	}
	if !approxEqual(m.PaybackYears, 2.954545454, 1e-6) {
		t.Errorf("PaybackYears = %v, want ~2.95", m.PaybackYears)
	}

	// NPV = -I + P * annuity(10, 10%).
	annuity := (1 - math.Pow(1.10, -10)) / 0.10
	wantNPV := -3_250_000 + 1_100_000*annuity
	if !approxEqual(m.NPV, wantNPV, 1e-9) {
		t.Errorf("NPV = %v, want %v", m.NPV, wantNPV)
	}
}

func TestProfitability_IRRMetrics(t *testing.T) {
	m, err := Profitability(referenceProfitabilityInputs())
	if err != nil {
		t.Fatalf("Profitability err = %v", err)
	}

	// ((P*N - I)/I)/N * 100 for the reference case.
	if !approxEqual(m.IRRApproxPercent, 23.846153846, 1e-6) {
		t.Errorf("IRRApproxPercent = %v, want ~23.85", m.IRRApproxPercent)
	}

	// The exact rate for {-3.25M, 1.1M x10} lies between 30% and 34%.
	if math.IsNaN(m.IRRExactPercent) {
		t.Fatalf("IRRExactPercent did not converge")
	}
	if m.IRRExactPercent < 30 || m.IRRExactPercent > 34 {
		t.Errorf("IRRExactPercent = %v, want in (30, 34)", m.IRRExactPercent)
	}

	// The exact rate must actually be a root of the NPV function.
	flows := []float64{-3_250_000, 1_100_000, 1_100_000, 1_100_000, 1_100_000,
		1_100_000, 1_100_000, 1_100_000, 1_100_000, 1_100_000, 1_100_000}
	if npv := npvAt(flows, m.IRRExactPercent/100); math.Abs(npv) > 1e-3 {
		t.Errorf("npv at exact IRR = %v, want ~0", npv)
	}
}

func TestProfitability_NonPositiveProfit_PaybackUndefined(t *testing.T) {
	in := referenceProfitabilityInputs()
	in.SellingPricePerKg = 2.0 // revenue 1.0M < cost 1.4M

	m, err := Profitability(in)
	if err != nil {
		t.Fatalf("Profitability err = %v", err)
	}
	if m.AnnualProfit >= 0 {
		t.Fatalf("AnnualProfit = %v, want negative", m.AnnualProfit)
	}
	if !math.IsNaN(m.PaybackYears) {
		t.Errorf("PaybackYears = %v, want NaN", m.PaybackYears)
	}
	if math.IsNaN(m.ROIPercent) || math.IsNaN(m.NPV) {
		t.Errorf("ROI/NPV should remain defined for a losing process")
	}
}

func TestProfitability_InvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProfitabilityInputs)
	}{
		{"zero volume", func(in *ProfitabilityInputs) { in.ProductionVolumeKgYear = 0 }},
		{"zero duration", func(in *ProfitabilityInputs) { in.ProjectDurationYears = 0 }},
		{"negative discount rate", func(in *ProfitabilityInputs) { in.DiscountRate = -0.05 }},
		{"discount rate of one", func(in *ProfitabilityInputs) { in.DiscountRate = 1.0 }},
		{"negative selling price", func(in *ProfitabilityInputs) { in.SellingPricePerKg = -1 }},
		{"zero investment", func(in *ProfitabilityInputs) { in.EquipmentCost = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := referenceProfitabilityInputs()
			tc.mutate(&in)

			if _, err := Profitability(in); !apperr.IsInvalidInput(err) {
				t.Fatalf("err = %v, want InvalidInputError", err)
			}
		})
	}
}

func TestProfitabilityMetrics_MarshalJSON_NaNAsNull(t *testing.T) {
	m := ProfitabilityMetrics{
		AnnualProfit:     -100,
		PaybackYears:     math.NaN(),
		IRRExactPercent:  math.NaN(),
		IRRApproxPercent: -12.5,
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal err = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"payback_period_years":null`) {
		t.Errorf("expected null payback, got %s", out)
	}
	if !strings.Contains(out, `"irr_exact_percent":null`) {
		t.Errorf("expected null exact IRR, got %s", out)
	}
	if !strings.Contains(out, `"irr_approx_percent":-12.5`) {
		t.Errorf("expected approx IRR preserved, got %s", out)
	}
}

func TestIrrNewton_NoRoot_ReturnsNaN(t *testing.T) {
	// All-negative flows have no root; the solve must give up, not loop.
	if got := irrNewton(1_000_000, 0, 5); !math.IsNaN(got) {
		t.Fatalf("zero profit should not converge, got %v", got)
	}
	if got := irrNewton(1_000_000, -50_000, 5); !math.IsNaN(got) {
		t.Fatalf("negative profit should not converge, got %v", got)
	}
}
