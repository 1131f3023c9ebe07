package econ

import (
	"encoding/json"
	"math"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// ProfitabilityInputs combine the cost model output with revenue
// assumptions. DiscountRate is a fraction in [0, 1).
type ProfitabilityInputs struct {
	TotalAnnualCost        float64 `yaml:"total_annual_cost" json:"total_annual_cost"`
	ProductionVolumeKgYear float64 `yaml:"production_volume_kg_per_year" json:"production_volume_kg_per_year"`
	ProjectDurationYears   int     `yaml:"project_duration_years" json:"project_duration_years"`
	DiscountRate           float64 `yaml:"discount_rate" json:"discount_rate"`
	EquipmentCost          float64 `yaml:"equipment_cost" json:"equipment_cost"`
	InstallationFactor     float64 `yaml:"installation_factor" json:"installation_factor"`
	SellingPricePerKg      float64 `yaml:"selling_price_per_kg" json:"selling_price_per_kg"`
}

// ProfitabilityMetrics are the capital-budgeting figures for the process.
//
// PaybackYears is NaN when annual profit is not positive: the investment is
// never recovered and the ratio is reported as "not computable" rather than
// a negative or infinite period. IRRExactPercent is NaN when the root solve
// does not converge. NaN fields serialize to JSON null.
type ProfitabilityMetrics struct {
	AnnualRevenue   float64 `yaml:"annual_revenue"`
	AnnualProfit    float64 `yaml:"annual_profit"`
	TotalInvestment float64 `yaml:"total_investment"`
	ROIPercent      float64 `yaml:"roi_percent"`
	PaybackYears    float64 `yaml:"payback_period_years"`
	NPV             float64 `yaml:"npv"`

	// IRRApproxPercent is the linearized approximation carried over from the
	// presentation-layer formula: ((P*N - I)/I)/N * 100. It differs materially
	// from the true IRR at short project durations and is kept only for
	// compatibility with callers that expect it.
	IRRApproxPercent float64 `yaml:"irr_approx_percent"`

	// IRRExactPercent is the Newton-Raphson solve of sum CF_t/(1+r)^t = 0.
	IRRExactPercent float64 `yaml:"irr_exact_percent"`
}

// Profitability converts costs and revenue assumptions into ROI, payback
// period, NPV and IRR. The NPV assumes a constant annual cash flow over the
// project duration; that simplification is part of the model contract.
func Profitability(in ProfitabilityInputs) (ProfitabilityMetrics, error) {
	if in.ProductionVolumeKgYear <= 0 {
		return ProfitabilityMetrics{}, apperr.InvalidInput("production_volume_kg_per_year", "must be positive")
	}
	if in.ProjectDurationYears <= 0 {
		return ProfitabilityMetrics{}, apperr.InvalidInput("project_duration_years", "must be positive")
	}
	if in.DiscountRate < 0 || in.DiscountRate >= 1 {
		return ProfitabilityMetrics{}, apperr.InvalidInput("discount_rate", "must be in [0, 1)")
	}
	if in.EquipmentCost < 0 || in.InstallationFactor < 0 || in.SellingPricePerKg < 0 || in.TotalAnnualCost < 0 {
		return ProfitabilityMetrics{}, apperr.InvalidInput("economic parameters", "must not be negative")
	}

	investment := in.EquipmentCost * (1 + in.InstallationFactor)
	if investment <= 0 {
		return ProfitabilityMetrics{}, apperr.InvalidInput("equipment_cost", "total investment must be positive")
	}

	revenue := in.ProductionVolumeKgYear * in.SellingPricePerKg
	profit := revenue - in.TotalAnnualCost
	years := in.ProjectDurationYears

	payback := math.NaN()
	if profit > 0 {
		payback = investment / profit
	}

	npv := -investment
	for t := 1; t <= years; t++ {
		npv += profit / math.Pow(1+in.DiscountRate, float64(t))
	}

	approx := ((profit*float64(years) - investment) / investment) / float64(years) * 100

	exact := irrNewton(investment, profit, years)

	logf("profitability: profit=%.2f roi=%.2f%% npv=%.2f", profit, profit/investment*100, npv)

	return ProfitabilityMetrics{
		AnnualRevenue:    revenue,
		AnnualProfit:     profit,
		TotalInvestment:  investment,
		ROIPercent:       profit / investment * 100,
		PaybackYears:     payback,
		NPV:              npv,
		IRRApproxPercent: approx,
		IRRExactPercent:  exact,
	}, nil
}

// irrNewton solves sum_{t=0..n} CF_t/(1+r)^t = 0 for the cash-flow series
// {-investment, profit, profit, ...} and returns the rate as a percentage.
// Returns NaN when the iteration does not converge.
func irrNewton(investment, profit float64, years int) float64 {
	flows := make([]float64, years+1)
	flows[0] = -investment
	for t := 1; t <= years; t++ {
		flows[t] = profit
	}

	const (
		maxIterations = 100
		tolerance     = 1e-6
		delta         = 1e-4
	)

	rate := 0.1 // initial guess
	for i := 0; i < maxIterations; i++ {
		npv := npvAt(flows, rate)
		if math.Abs(npv) < tolerance {
			return rate * 100
		}
		derivative := (npvAt(flows, rate+delta) - npv) / delta
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return math.NaN()
		}
		rate -= npv / derivative
		if math.IsNaN(rate) || rate <= -1 {
			return math.NaN()
		}
	}
	return math.NaN()
}

func npvAt(flows []float64, rate float64) float64 {
	var npv float64
	for t, cf := range flows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// MarshalJSON reports NaN metrics (undefined payback, non-converged IRR)
// as JSON null instead of failing to encode.
func (m ProfitabilityMetrics) MarshalJSON() ([]byte, error) {
	out := struct {
		AnnualRevenue    float64  `json:"annual_revenue"`
		AnnualProfit     float64  `json:"annual_profit"`
		TotalInvestment  float64  `json:"total_investment"`
		ROIPercent       float64  `json:"roi_percent"`
		PaybackYears     *float64 `json:"payback_period_years"`
		NPV              float64  `json:"npv"`
		IRRApproxPercent float64  `json:"irr_approx_percent"`
		IRRExactPercent  *float64 `json:"irr_exact_percent"`
	}{
		AnnualRevenue:    m.AnnualRevenue,
		AnnualProfit:     m.AnnualProfit,
		TotalInvestment:  m.TotalInvestment,
		ROIPercent:       m.ROIPercent,
		NPV:              m.NPV,
		IRRApproxPercent: m.IRRApproxPercent,
	}
	if !math.IsNaN(m.PaybackYears) {
		out.PaybackYears = &m.PaybackYears
	}
	if !math.IsNaN(m.IRRExactPercent) {
		out.IRRExactPercent = &m.IRRExactPercent
	}
	return json.Marshal(out)
}
