// Package econ implements the economic branch of the process analysis
// engine: annualized cost modeling, profitability metrics and cost-driver
// sensitivity analysis for the pea-protein extraction process.
//
// Every operation is a pure, synchronous transformation of an input record
// into an output record. The package holds no state between calls; any
// caching, retry or transport policy belongs to the caller.
package econ

import (
	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// CostCategory identifies one slice of the annual cost breakdown.
type CostCategory string

const (
	CostEquipment   CostCategory = "equipment"
	CostMaintenance CostCategory = "maintenance"
	CostRawMaterial CostCategory = "raw_material"
	CostUtilities   CostCategory = "utilities"
	CostLabor       CostCategory = "labor"
	CostIndirect    CostCategory = "indirect"
)

// Categories lists all cost categories in display order.
var Categories = []CostCategory{
	CostEquipment,
	CostMaintenance,
	CostRawMaterial,
	CostUtilities,
	CostLabor,
	CostIndirect,
}

// CostInputs are the capital and operating parameters of the process.
// All costs are USD. All costs and factors must be >= 0; production volume
// and project duration must be positive.
type CostInputs struct {
	EquipmentCost          float64 `yaml:"equipment_cost" json:"equipment_cost"`
	InstallationFactor     float64 `yaml:"installation_factor" json:"installation_factor"`
	MaintenanceCost        float64 `yaml:"maintenance_cost" json:"maintenance_cost"`
	RawMaterialCostPerKg   float64 `yaml:"raw_material_cost_per_kg" json:"raw_material_cost_per_kg"`
	UtilityCostPerKg       float64 `yaml:"utility_cost_per_kg" json:"utility_cost_per_kg"`
	LaborCostPerKg         float64 `yaml:"labor_cost_per_kg" json:"labor_cost_per_kg"`
	IndirectCostsFactor    float64 `yaml:"indirect_costs_factor" json:"indirect_costs_factor"`
	ProductionVolumeKgYear float64 `yaml:"production_volume_kg_per_year" json:"production_volume_kg_per_year"`
	ProjectDurationYears   int     `yaml:"project_duration_years" json:"project_duration_years"`
}

// CostResult is the annualized cost breakdown. Immutable once computed:
// the sum of Breakdown values equals TotalAnnualCost and
// UnitCost * production volume equals TotalAnnualCost.
type CostResult struct {
	Breakdown       map[CostCategory]float64 `yaml:"breakdown" json:"breakdown"`
	TotalAnnualCost float64                  `yaml:"total_annual_cost" json:"total_annual_cost"`
	UnitCost        float64                  `yaml:"unit_cost" json:"unit_cost"`
}

// AnnualCosts converts capital and operating inputs into the annualized
// cost breakdown and unit production cost.
//
// Equipment is amortized linearly over the project duration including the
// installation surcharge; maintenance is already an annual figure; the
// per-kg costs scale with production volume; indirect costs are a fixed
// fraction of the equipment cost.
func AnnualCosts(in CostInputs) (CostResult, error) {
	if err := validateCostInputs(in); err != nil {
		return CostResult{}, err
	}

	breakdown := map[CostCategory]float64{
		CostEquipment:   in.EquipmentCost * (1 + in.InstallationFactor) / float64(in.ProjectDurationYears),
		CostMaintenance: in.MaintenanceCost,
		CostRawMaterial: in.RawMaterialCostPerKg * in.ProductionVolumeKgYear,
		CostUtilities:   in.UtilityCostPerKg * in.ProductionVolumeKgYear,
		CostLabor:       in.LaborCostPerKg * in.ProductionVolumeKgYear,
		CostIndirect:    in.EquipmentCost * in.IndirectCostsFactor,
	}

	var total float64
	for _, v := range breakdown {
		total += v
	}

	logf("annual costs: total=%.2f unit=%.4f", total, total/in.ProductionVolumeKgYear)

	return CostResult{
		Breakdown:       breakdown,
		TotalAnnualCost: total,
		UnitCost:        total / in.ProductionVolumeKgYear,
	}, nil
}

func validateCostInputs(in CostInputs) error {
	if in.ProductionVolumeKgYear <= 0 {
		return apperr.InvalidInput("production_volume_kg_per_year", "must be positive (unit cost undefined otherwise)")
	}
	if in.ProjectDurationYears <= 0 {
		return apperr.InvalidInput("project_duration_years", "must be positive (equipment amortization undefined otherwise)")
	}
	for field, v := range map[string]float64{
		"equipment_cost":           in.EquipmentCost,
		"installation_factor":      in.InstallationFactor,
		"maintenance_cost":         in.MaintenanceCost,
		"raw_material_cost_per_kg": in.RawMaterialCostPerKg,
		"utility_cost_per_kg":      in.UtilityCostPerKg,
		"labor_cost_per_kg":        in.LaborCostPerKg,
		"indirect_costs_factor":    in.IndirectCostsFactor,
	} {
		if v < 0 {
			return apperr.InvalidInput(field, "must not be negative")
		}
	}
	return nil
}
