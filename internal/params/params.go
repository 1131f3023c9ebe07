// Package params defines the scenario records consumed by the analysis
// engine, one defaults structure per domain (technical, economic,
// environmental), and file loading for scenario files in YAML or JSON.
//
// Defaults are constructed once via Default() and passed explicitly; there
// are no module-level mutable defaults.
package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/econ"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/protein"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/sustainability"
)

// Scenario is a full parameter set for one analysis run.
type Scenario struct {
	Technical     TechnicalParams     `yaml:"technical" json:"technical"`
	Economic      EconomicParams      `yaml:"economic" json:"economic"`
	Environmental EnvironmentalParams `yaml:"environmental" json:"environmental"`
}

// TechnicalParams describe mass flows, protein contents and the RF
// treatment operating point.
type TechnicalParams struct {
	Recovery protein.RecoveryInputs              `yaml:"recovery" json:"recovery"`
	RF       *sustainability.RFProcessParameters `yaml:"rf_treatment,omitempty" json:"rf_treatment,omitempty"`
}

// EconomicParams carry the cost model inputs plus revenue assumptions.
type EconomicParams struct {
	Costs             econ.CostInputs        `yaml:"costs" json:"costs"`
	DiscountRate      float64                `yaml:"discount_rate" json:"discount_rate"`
	SellingPricePerKg float64                `yaml:"selling_price_per_kg" json:"selling_price_per_kg"`
	Sensitivity       econ.SensitivityConfig `yaml:"sensitivity" json:"sensitivity"`
}

// EnvironmentalParams carry resource consumption and the allocation setup.
type EnvironmentalParams struct {
	Consumption impact.ConsumptionInputs `yaml:"consumption" json:"consumption"`
	Allocation  AllocationParams         `yaml:"allocation" json:"allocation"`
}

// AllocationParams configure how shared burdens split across co-products.
type AllocationParams struct {
	Method         string             `yaml:"method" json:"method"`
	MassFlows      map[string]float64 `yaml:"mass_flows" json:"mass_flows"`
	ProductValues  map[string]float64 `yaml:"product_values" json:"product_values"`
	EconomicWeight float64            `yaml:"economic_weight" json:"economic_weight"`
}

// Default returns the research baseline scenario for the RF-assisted dry
// fractionation process. Values follow the published process inventory and
// the reference techno-economic case.
func Default() Scenario {
	cooling := 250.0
	thermal := 780.0
	return Scenario{
		Technical: TechnicalParams{
			Recovery: protein.RecoveryInputs{
				InputMassKg:           1000.0,
				OutputMassKg:          219.0, // 21.9% concentrate yield
				InitialProteinPercent: 45.0,
				OutputProteinPercent:  63.1,
				TargetProteinPercent:  63.1,
			},
			RF: &sustainability.RFProcessParameters{
				TemperatureOutfeedC:       84.4,
				TemperatureElectrodeC:     100.1,
				EnergyContributionPercent: 19.0,
				AnodeCurrentA:             1.79,
				GridCurrentA:              0.51,
			},
		},
		Economic: EconomicParams{
			Costs: econ.CostInputs{
				EquipmentCost:          2_500_000,
				InstallationFactor:     0.3,
				MaintenanceCost:        100_000,
				RawMaterialCostPerKg:   0.8,
				UtilityCostPerKg:       0.15,
				LaborCostPerKg:         0.5,
				IndirectCostsFactor:    0.1,
				ProductionVolumeKgYear: 500_000,
				ProjectDurationYears:   10,
			},
			DiscountRate:      0.10,
			SellingPricePerKg: 5.0,
			Sensitivity:       econ.DefaultSensitivityConfig(),
		},
		Environmental: EnvironmentalParams{
			Consumption: impact.ConsumptionInputs{
				ElectricityKWh: 950.0,
				WaterKg:        3500.0,
				TransportTonKm: 1200.0,
				WasteKg:        450.0,
				ProductKg:      1500.0,
				EquipmentKg:    8500.0,
				CoolingKWh:     &cooling,
				ThermalKWh:     &thermal,
			},
			Allocation: AllocationParams{
				Method: string(impact.MethodHybrid),
				MassFlows: map[string]float64{
					"protein_concentrate": 1000.0,
					"starch":              300.0,
					"fiber":               200.0,
				},
				ProductValues: map[string]float64{
					"protein_concentrate": 6.50,
					"starch":              2.30,
					"fiber":               1.80,
				},
				EconomicWeight: 0.6,
			},
		},
	}
}

// Load reads a scenario file (YAML or JSON, by extension) on top of the
// default scenario: fields absent from the file keep their defaults.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}

	scenario := Default()

	// Decoders add keys to a non-nil map instead of clearing it. The
	// co-product set from the file must replace the baseline set, so the
	// defaults are detached and restored only when the file omits them.
	defaultMasses := scenario.Environmental.Allocation.MassFlows
	defaultValues := scenario.Environmental.Allocation.ProductValues
	scenario.Environmental.Allocation.MassFlows = nil
	scenario.Environmental.Allocation.ProductValues = nil

	switch detectFormat(path) {
	case "json":
		if err := json.Unmarshal(data, &scenario); err != nil {
			return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
		}
	}

	if scenario.Environmental.Allocation.MassFlows == nil {
		scenario.Environmental.Allocation.MassFlows = defaultMasses
	}
	if scenario.Environmental.Allocation.ProductValues == nil {
		scenario.Environmental.Allocation.ProductValues = defaultValues
	}
	return scenario, nil
}

// Save writes a scenario file in YAML or JSON, chosen by extension.
// Used by the init command to emit an editable baseline scenario.
func Save(s Scenario, path string) error {
	var (
		data []byte
		err  error
	)
	switch detectFormat(path) {
	case "json":
		data, err = json.MarshalIndent(s, "", "  ")
	default:
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func detectFormat(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return "json"
	}
	return "yaml"
}

// ProfitabilityInputs assembles the profitability model inputs from the
// economic parameters and a computed total annual cost.
func (s Scenario) ProfitabilityInputs(totalAnnualCost float64) econ.ProfitabilityInputs {
	return econ.ProfitabilityInputs{
		TotalAnnualCost:        totalAnnualCost,
		ProductionVolumeKgYear: s.Economic.Costs.ProductionVolumeKgYear,
		ProjectDurationYears:   s.Economic.Costs.ProjectDurationYears,
		DiscountRate:           s.Economic.DiscountRate,
		EquipmentCost:          s.Economic.Costs.EquipmentCost,
		InstallationFactor:     s.Economic.Costs.InstallationFactor,
		SellingPricePerKg:      s.Economic.SellingPricePerKg,
	}
}

// SensitivityInputs extracts the cost drivers for the sensitivity analysis.
func (s Scenario) SensitivityInputs() econ.SensitivityInputs {
	return econ.SensitivityInputs{
		EquipmentCost:          s.Economic.Costs.EquipmentCost,
		MaintenanceCost:        s.Economic.Costs.MaintenanceCost,
		RawMaterialCostPerKg:   s.Economic.Costs.RawMaterialCostPerKg,
		UtilityCostPerKg:       s.Economic.Costs.UtilityCostPerKg,
		LaborCostPerKg:         s.Economic.Costs.LaborCostPerKg,
		ProductionVolumeKgYear: s.Economic.Costs.ProductionVolumeKgYear,
	}
}

// AllocationInputs assembles an allocation request against the given
// category totals.
func (s Scenario) AllocationInputs(totals map[impact.Category]float64) (impact.AllocationInputs, error) {
	method, ok := impact.ParseAllocationMethod(s.Environmental.Allocation.Method)
	if !ok {
		return impact.AllocationInputs{}, fmt.Errorf("unknown allocation method %q (expected mass|economic|hybrid)", s.Environmental.Allocation.Method)
	}
	return impact.AllocationInputs{
		Method:         method,
		MassesKg:       s.Environmental.Allocation.MassFlows,
		PricesPerKg:    s.Environmental.Allocation.ProductValues,
		EconomicWeight: s.Environmental.Allocation.EconomicWeight,
		Totals:         totals,
	}, nil
}

// ScorerInputs assembles the sustainability scorer inputs from the
// technical parameters and the computed impact intensities.
// Returns an error when the scenario has no RF treatment block: the
// composite score is benchmarked against the RF-assisted process variant.
func (s Scenario) ScorerInputs(intensities impact.Intensities) (sustainability.Inputs, error) {
	if s.Technical.RF == nil {
		return sustainability.Inputs{}, fmt.Errorf("scenario has no rf_treatment parameters; the sustainability score is defined for the RF process variant")
	}
	return sustainability.Inputs{
		RF:                      *s.Technical.RF,
		ProteinConcentrateKg:    s.Technical.Recovery.OutputMassKg,
		TotalMassKg:             s.Technical.Recovery.InputMassKg,
		EnergyIntensityKWhPerKg: intensities.EnergyIntensityKWhPerKg,
		WaterIntensityKgPerKg:   intensities.WaterIntensityKgPerKg,
	}, nil
}
