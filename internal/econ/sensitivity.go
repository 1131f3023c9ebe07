package econ

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// SensitivityClass is the qualitative impact class of a cost driver.
// Cut points on |impact_percent|: below 5 is Low, 5 up to (but excluding)
// 15 is Medium, 15 and above is High.
type SensitivityClass string

const (
	ClassLow    SensitivityClass = "Low"
	ClassMedium SensitivityClass = "Medium"
	ClassHigh   SensitivityClass = "High"

	// ClassUndefined is reported when the base profit is zero and the
	// relative impact cannot be computed.
	ClassUndefined SensitivityClass = "Undefined"
)

// SensitivityConfig carries the knobs that were hard-coded literals in the
// original presentation-layer copies of this calculation. SellingPricePerKg
// and Perturbation are used by the point-impact analysis; Range and Steps
// are retained for multi-point sensitivity curves and are currently unused
// by Analyze.
type SensitivityConfig struct {
	SellingPricePerKg float64 `yaml:"selling_price_per_kg" json:"selling_price_per_kg"`
	Perturbation      float64 `yaml:"perturbation" json:"perturbation"`
	Range             float64 `yaml:"sensitivity_range" json:"sensitivity_range"`
	Steps             int     `yaml:"steps" json:"steps"`
}

// DefaultSensitivityConfig returns the configuration matching the historic
// behavior: 5.0 USD/kg selling price and a fixed +10% perturbation.
func DefaultSensitivityConfig() SensitivityConfig {
	return SensitivityConfig{
		SellingPricePerKg: 5.0,
		Perturbation:      0.10,
		Range:             0.20,
		Steps:             10,
	}
}

// SensitivityInputs are the base cost drivers perturbed by the analysis.
type SensitivityInputs struct {
	EquipmentCost          float64 `yaml:"equipment_cost" json:"equipment_cost"`
	MaintenanceCost        float64 `yaml:"maintenance_cost" json:"maintenance_cost"`
	RawMaterialCostPerKg   float64 `yaml:"raw_material_cost" json:"raw_material_cost"`
	UtilityCostPerKg       float64 `yaml:"utility_cost" json:"utility_cost"`
	LaborCostPerKg         float64 `yaml:"labor_cost" json:"labor_cost"`
	ProductionVolumeKgYear float64 `yaml:"production_volume" json:"production_volume"`
}

// SensitivityRow reports the profitability impact of perturbing one
// parameter. ImpactPercent is NaN when the base profit is zero.
type SensitivityRow struct {
	Parameter     string           `yaml:"parameter_name" json:"parameter_name"`
	BaseValue     float64          `yaml:"base_value" json:"base_value"`
	ImpactPercent float64          `yaml:"impact_percent" json:"impact_percent"`
	Class         SensitivityClass `yaml:"sensitivity_class" json:"sensitivity_class"`
}

// Analyze perturbs each cost driver by cfg.Perturbation and reports the
// signed relative change in annual profit. Rows are returned in parameter
// order; ordering for display is the caller's concern (see SortRowsByImpact).
func Analyze(in SensitivityInputs, cfg SensitivityConfig) ([]SensitivityRow, error) {
	if in.ProductionVolumeKgYear <= 0 {
		return nil, apperr.InvalidInput("production_volume", "must be positive")
	}
	if cfg.SellingPricePerKg <= 0 {
		return nil, apperr.InvalidInput("selling_price_per_kg", "must be positive")
	}

	base := sensitivityProfit(in, cfg.SellingPricePerKg)

	perturb := func(mutate func(*SensitivityInputs)) float64 {
		mod := in
		mutate(&mod)
		return sensitivityProfit(mod, cfg.SellingPricePerKg)
	}

	factor := 1 + cfg.Perturbation
	rows := []SensitivityRow{
		{Parameter: "equipment_cost", BaseValue: in.EquipmentCost,
			ImpactPercent: relImpact(base, perturb(func(m *SensitivityInputs) { m.EquipmentCost *= factor }))},
		{Parameter: "maintenance_cost", BaseValue: in.MaintenanceCost,
			ImpactPercent: relImpact(base, perturb(func(m *SensitivityInputs) { m.MaintenanceCost *= factor }))},
		{Parameter: "raw_material_cost", BaseValue: in.RawMaterialCostPerKg,
			ImpactPercent: relImpact(base, perturb(func(m *SensitivityInputs) { m.RawMaterialCostPerKg *= factor }))},
		{Parameter: "utility_cost", BaseValue: in.UtilityCostPerKg,
			ImpactPercent: relImpact(base, perturb(func(m *SensitivityInputs) { m.UtilityCostPerKg *= factor }))},
		{Parameter: "labor_cost", BaseValue: in.LaborCostPerKg,
			ImpactPercent: relImpact(base, perturb(func(m *SensitivityInputs) { m.LaborCostPerKg *= factor }))},
		{Parameter: "production_volume", BaseValue: in.ProductionVolumeKgYear,
			ImpactPercent: relImpact(base, perturb(func(m *SensitivityInputs) { m.ProductionVolumeKgYear *= factor }))},
	}

	for i := range rows {
		rows[i].Class = Classify(rows[i].ImpactPercent)
	}

	logf("sensitivity: base profit=%.2f across %d drivers", base, len(rows))
	return rows, nil
}

// sensitivityProfit is the simplified profit model used by the sensitivity
// analysis: revenue at the configured selling price minus a ten-year
// straight-line equipment charge and the volume-scaled operating costs.
func sensitivityProfit(in SensitivityInputs, sellingPrice float64) float64 {
	revenue := in.ProductionVolumeKgYear * sellingPrice
	costs := in.EquipmentCost/10 +
		in.MaintenanceCost +
		in.RawMaterialCostPerKg*in.ProductionVolumeKgYear +
		in.UtilityCostPerKg*in.ProductionVolumeKgYear +
		in.LaborCostPerKg*in.ProductionVolumeKgYear
	return revenue - costs
}

func relImpact(base, modified float64) float64 {
	if base == 0 {
		return math.NaN()
	}
	return (modified - base) / base * 100
}

// Classify maps an impact percentage onto its qualitative class.
// The boundary convention is inclusive at the upper cut points: an impact
// magnitude of exactly 5.0 is Medium, exactly 15.0 is High.
func Classify(impactPercent float64) SensitivityClass {
	if math.IsNaN(impactPercent) {
		return ClassUndefined
	}
	switch abs := math.Abs(impactPercent); {
	case abs < 5:
		return ClassLow
	case abs < 15:
		return ClassMedium
	default:
		return ClassHigh
	}
}

// SortRowsByImpact orders rows by |impact| descending for display.
// Undefined impacts sort last.
func SortRowsByImpact(rows []SensitivityRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := math.Abs(rows[i].ImpactPercent), math.Abs(rows[j].ImpactPercent)
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
}

// MarshalJSON reports an undefined impact as JSON null.
func (r SensitivityRow) MarshalJSON() ([]byte, error) {
	out := struct {
		Parameter     string           `json:"parameter_name"`
		BaseValue     float64          `json:"base_value"`
		ImpactPercent *float64         `json:"impact_percent"`
		Class         SensitivityClass `json:"sensitivity_class"`
	}{
		Parameter: r.Parameter,
		BaseValue: r.BaseValue,
		Class:     r.Class,
	}
	if !math.IsNaN(r.ImpactPercent) {
		out.ImpactPercent = &r.ImpactPercent
	}
	return json.Marshal(out)
}
