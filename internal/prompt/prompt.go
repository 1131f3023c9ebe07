// Package prompt provides the form-based interactive scenario entry used
// by `analyze --interactive`.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/params"
)

// econField binds one editable economic parameter to a scenario field.
type econField struct {
	Key         string
	Description string
	Get         func(*params.Scenario) float64
	Set         func(*params.Scenario, float64)
}

func econFields() []econField {
	return []econField{
		{
			Key:         "equipment_cost",
			Description: "Total equipment purchase cost (USD)",
			Get:         func(s *params.Scenario) float64 { return s.Economic.Costs.EquipmentCost },
			Set:         func(s *params.Scenario, v float64) { s.Economic.Costs.EquipmentCost = v },
		},
		{
			Key:         "maintenance_cost",
			Description: "Annual maintenance cost (USD/year)",
			Get:         func(s *params.Scenario) float64 { return s.Economic.Costs.MaintenanceCost },
			Set:         func(s *params.Scenario, v float64) { s.Economic.Costs.MaintenanceCost = v },
		},
		{
			Key:         "raw_material_cost_per_kg",
			Description: "Raw material cost (USD/kg)",
			Get:         func(s *params.Scenario) float64 { return s.Economic.Costs.RawMaterialCostPerKg },
			Set:         func(s *params.Scenario, v float64) { s.Economic.Costs.RawMaterialCostPerKg = v },
		},
		{
			Key:         "production_volume_kg_per_year",
			Description: "Annual production volume (kg/year)",
			Get:         func(s *params.Scenario) float64 { return s.Economic.Costs.ProductionVolumeKgYear },
			Set:         func(s *params.Scenario, v float64) { s.Economic.Costs.ProductionVolumeKgYear = v },
		},
		{
			Key:         "selling_price_per_kg",
			Description: "Product selling price (USD/kg)",
			Get: func(s *params.Scenario) float64 { return s.Economic.SellingPricePerKg },
			Set: func(s *params.Scenario, v float64) {
				s.Economic.SellingPricePerKg = v
				s.Economic.Sensitivity.SellingPricePerKg = v
			},
		},
		{
			Key:         "discount_rate",
			Description: "Discount rate, fraction in [0, 1)",
			Get:         func(s *params.Scenario) float64 { return s.Economic.DiscountRate },
			Set:         func(s *params.Scenario, v float64) { s.Economic.DiscountRate = v },
		},
	}
}

// FillEconomic runs a form over the key economic parameters, pre-filled
// with the scenario's current values. Empty input keeps the current value.
// Returns apperr.ErrCancelled when the user aborts the form.
func FillEconomic(scenario *params.Scenario) error {
	fields := econFields()

	valueStore := make(map[string]*string, len(fields))
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewNote().
				Title("Scenario Parameters").
				Description("Adjust the economic parameters for this run.\nPress Enter to keep the shown value.").
				Next(true).
				NextLabel("Continue"),
		),
	}

	for _, f := range fields {
		val := strconv.FormatFloat(f.Get(scenario), 'f', -1, 64)
		valueStore[f.Key] = &val
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(f.Key).
				Description(f.Description).
				Value(valueStore[f.Key]).
				Validate(validateNumber),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return apperr.ErrCancelled
		}
		return fmt.Errorf("scenario form: %w", err)
	}

	for _, f := range fields {
		raw := strings.TrimSpace(*valueStore[f.Key])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// Validate already rejected non-numeric input.
			continue
		}
		f.Set(scenario, v)
	}
	return nil
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}
