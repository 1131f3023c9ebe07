// Package impact implements the environmental branch of the process
// analysis engine: impact category assessment with per-process-step
// contribution breakdowns, and allocation of shared burdens across
// co-products.
package impact

import (
	"encoding/json"
	"math"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// ConsumptionInputs are the per-process-step resource consumptions of one
// analysis run. Optional fields are nil when the step does not exist in the
// process variant; nil is "not applicable", never zero-by-omission.
type ConsumptionInputs struct {
	ElectricityKWh float64 `yaml:"electricity_kwh" json:"electricity_kwh"`
	WaterKg        float64 `yaml:"water_kg" json:"water_kg"`
	TransportTonKm float64 `yaml:"transport_ton_km" json:"transport_ton_km"`
	WasteKg        float64 `yaml:"waste_kg" json:"waste_kg"`

	// ProductKg is the total product mass through the process; it drives
	// tempering water, the thermal/mechanical split and all intensity
	// normalizations.
	ProductKg float64 `yaml:"product_kg" json:"product_kg"`

	// EquipmentKg is the equipment mass cleaned per run.
	EquipmentKg float64 `yaml:"equipment_kg" json:"equipment_kg"`

	CoolingKWh *float64 `yaml:"cooling_kwh,omitempty" json:"cooling_kwh,omitempty"`
	ThermalKWh *float64 `yaml:"thermal_kwh,omitempty" json:"thermal_kwh,omitempty"`
}

// Contribution is one named process step's share of a category total,
// tagged with its unit.
type Contribution struct {
	Value float64 `yaml:"value" json:"value"`
	Unit  Unit    `yaml:"unit" json:"unit"`
}

// CategoryResult is one impact category total with its per-process-step
// breakdown. Total always equals the sum of Contributions.
type CategoryResult struct {
	Total         float64                 `yaml:"total" json:"total"`
	Unit          Unit                    `yaml:"unit" json:"unit"`
	Contributions map[string]Contribution `yaml:"process_contributions" json:"process_contributions"`
}

// Intensities are the per-kg and per-energy derived metrics.
// ThermalRatio is NaN when the variant has no thermal step.
type Intensities struct {
	EnergyIntensityKWhPerKg float64 `yaml:"energy_intensity" json:"energy_intensity"`
	WaterIntensityKgPerKg   float64 `yaml:"water_intensity" json:"water_intensity"`
	ThermalRatio            float64 `yaml:"thermal_ratio" json:"thermal_ratio"`
}

// MarshalJSON reports a not-applicable thermal ratio as JSON null.
func (i Intensities) MarshalJSON() ([]byte, error) {
	out := struct {
		EnergyIntensityKWhPerKg float64  `json:"energy_intensity"`
		WaterIntensityKgPerKg   float64  `json:"water_intensity"`
		ThermalRatio            *float64 `json:"thermal_ratio"`
	}{
		EnergyIntensityKWhPerKg: i.EnergyIntensityKWhPerKg,
		WaterIntensityKgPerKg:   i.WaterIntensityKgPerKg,
	}
	if !math.IsNaN(i.ThermalRatio) {
		out.ThermalRatio = &i.ThermalRatio
	}
	return json.Marshal(out)
}

// Result is the full environmental assessment of one run.
type Result struct {
	Categories  map[Category]CategoryResult `yaml:"categories" json:"categories"`
	Intensities Intensities                 `yaml:"intensities" json:"intensities"`
	TotalMassKg float64                     `yaml:"total_mass_kg" json:"total_mass_kg"`
}

// Assess converts resource consumption into impact category totals with
// named process contributions, plus derived intensity metrics. Results are
// computed fresh on every call; nothing is cached between invocations.
func Assess(in ConsumptionInputs) (Result, error) {
	if err := validateConsumption(in); err != nil {
		return Result{}, err
	}

	cooling := 0.0
	if in.CoolingKWh != nil {
		cooling = *in.CoolingKWh
	}

	categories := map[Category]CategoryResult{
		GWP: buildCategory(GWP, map[string]float64{
			"electricity": in.ElectricityKWh * gwpFactors["electricity"].Value,
			"water":       in.WaterKg * gwpFactors["water"].Value,
			"transport":   in.TransportTonKm * gwpFactors["transport"].Value,
		}),
		HCT: buildCategory(HCT, map[string]float64{
			"electricity":     in.ElectricityKWh * hctFactors["electricity"].Value,
			"water_treatment": in.WaterKg * hctFactors["water_treatment"].Value,
			"waste":           in.WasteKg * hctFactors["waste"].Value,
		}),
		FRS: buildCategory(FRS, map[string]float64{
			"electricity":           in.ElectricityKWh * frsFactors["electricity"].Value,
			"thermal_treatment":     in.ProductKg * defaultThermalMassFraction * frsFactors["thermal_treatment"].Value,
			"mechanical_processing": in.ProductKg * defaultMechanicalMassFraction * frsFactors["mechanical_processing"].Value,
		}),
	}

	waterSteps := map[string]float64{
		"tempering": in.ProductKg * waterFactors["tempering"].Value,
		"cleaning":  in.EquipmentKg * waterFactors["cleaning"].Value,
	}
	if in.CoolingKWh != nil {
		waterSteps["cooling"] = cooling * waterFactors["cooling"].Value
	}
	categories[WaterConsumption] = buildCategory(WaterConsumption, waterSteps)

	totalEnergy := in.ElectricityKWh + cooling
	thermal := math.NaN()
	if in.ThermalKWh != nil {
		thermal = *in.ThermalKWh
		totalEnergy += thermal
	}

	intensities := Intensities{
		EnergyIntensityKWhPerKg: totalEnergy / in.ProductKg,
		WaterIntensityKgPerKg:   categories[WaterConsumption].Total / in.ProductKg,
		ThermalRatio:            math.NaN(),
	}
	if in.ThermalKWh != nil && totalEnergy > 0 {
		intensities.ThermalRatio = thermal / totalEnergy
	}

	logf("assessed %d categories: gwp=%.2f water=%.2f energy_intensity=%.3f",
		len(categories), categories[GWP].Total, categories[WaterConsumption].Total,
		intensities.EnergyIntensityKWhPerKg)

	return Result{
		Categories:  categories,
		Intensities: intensities,
		TotalMassKg: in.ProductKg,
	}, nil
}

// Totals extracts the category totals, the shape consumed by Allocate.
func (r Result) Totals() map[Category]float64 {
	totals := make(map[Category]float64, len(r.Categories))
	for c, cr := range r.Categories {
		totals[c] = cr.Total
	}
	return totals
}

// PerKg normalizes every category total and contribution by the total
// product mass.
func (r Result) PerKg() map[Category]CategoryResult {
	out := make(map[Category]CategoryResult, len(r.Categories))
	for c, cr := range r.Categories {
		norm := CategoryResult{
			Total:         cr.Total / r.TotalMassKg,
			Unit:          cr.Unit,
			Contributions: make(map[string]Contribution, len(cr.Contributions)),
		}
		for step, contrib := range cr.Contributions {
			norm.Contributions[step] = Contribution{Value: contrib.Value / r.TotalMassKg, Unit: contrib.Unit}
		}
		out[c] = norm
	}
	return out
}

func buildCategory(c Category, steps map[string]float64) CategoryResult {
	unit := CategoryUnit(c)
	contributions := make(map[string]Contribution, len(steps))
	var total float64
	for step, value := range steps {
		contributions[step] = Contribution{Value: value, Unit: unit}
		total += value
	}
	return CategoryResult{Total: total, Unit: unit, Contributions: contributions}
}

func validateConsumption(in ConsumptionInputs) error {
	if in.ProductKg <= 0 {
		return apperr.InvalidInput("product_kg", "total product mass must be positive")
	}
	checks := map[string]float64{
		"electricity_kwh":  in.ElectricityKWh,
		"water_kg":         in.WaterKg,
		"transport_ton_km": in.TransportTonKm,
		"waste_kg":         in.WasteKg,
		"equipment_kg":     in.EquipmentKg,
	}
	if in.CoolingKWh != nil {
		checks["cooling_kwh"] = *in.CoolingKWh
	}
	if in.ThermalKWh != nil {
		checks["thermal_kwh"] = *in.ThermalKWh
	}
	for field, v := range checks {
		if v < 0 {
			return apperr.InvalidInput(field, "must not be negative")
		}
	}
	return nil
}
