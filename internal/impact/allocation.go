package impact

import (
	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
)

// AllocationMethod selects the rule dividing shared burdens among
// co-products.
type AllocationMethod string

const (
	MethodMass     AllocationMethod = "mass"
	MethodEconomic AllocationMethod = "economic"
	MethodHybrid   AllocationMethod = "hybrid"
)

// ParseAllocationMethod validates a method name from configuration.
func ParseAllocationMethod(s string) (AllocationMethod, bool) {
	switch AllocationMethod(s) {
	case MethodMass, MethodEconomic, MethodHybrid:
		return AllocationMethod(s), true
	}
	return "", false
}

// AllocationInputs describe one allocation request. PricesPerKg is required
// for the economic and hybrid methods. EconomicWeight is the hybrid blend
// weight for the economic factors, clamped to [0, 1].
type AllocationInputs struct {
	Method         AllocationMethod     `yaml:"method" json:"method"`
	MassesKg       map[string]float64   `yaml:"mass_flows" json:"mass_flows"`
	PricesPerKg    map[string]float64   `yaml:"product_values" json:"product_values"`
	EconomicWeight float64              `yaml:"economic_weight" json:"economic_weight"`
	Totals         map[Category]float64 `yaml:"totals" json:"totals"`
}

// AllocationResult maps each co-product to its allocation factor and its
// per-category impact share. Factors sum to 1 within floating tolerance.
type AllocationResult struct {
	Method           AllocationMethod                `yaml:"method" json:"method"`
	Factors          map[string]float64              `yaml:"factors" json:"factors"`
	AllocatedImpacts map[string]map[Category]float64 `yaml:"allocated_impacts" json:"allocated_impacts"`
}

// Allocate divides category totals across co-products using the selected
// method:
//
//	mass:     factor_i = mass_i / sum(mass)
//	economic: factor_i = mass_i*price_i / sum(mass_j*price_j)
//	hybrid:   factor_i = w*economic_i + (1-w)*mass_i
func Allocate(in AllocationInputs) (AllocationResult, error) {
	if len(in.MassesKg) == 0 {
		return AllocationResult{}, &apperr.InvalidAllocationError{Method: string(in.Method), Reason: "no co-products supplied"}
	}

	var factors map[string]float64
	var err error
	switch in.Method {
	case MethodMass:
		factors, err = massFactors(in.MassesKg)
	case MethodEconomic:
		factors, err = economicFactors(in.MassesKg, in.PricesPerKg)
	case MethodHybrid:
		factors, err = hybridFactors(in.MassesKg, in.PricesPerKg, in.EconomicWeight)
	default:
		return AllocationResult{}, &apperr.InvalidAllocationError{Method: string(in.Method), Reason: "unknown allocation method"}
	}
	if err != nil {
		return AllocationResult{}, err
	}

	allocated := make(map[string]map[Category]float64, len(factors))
	for product, factor := range factors {
		shares := make(map[Category]float64, len(in.Totals))
		for category, total := range in.Totals {
			shares[category] = factor * total
		}
		allocated[product] = shares
	}

	logf("allocated %d categories across %d co-products (%s)", len(in.Totals), len(factors), in.Method)

	return AllocationResult{
		Method:           in.Method,
		Factors:          factors,
		AllocatedImpacts: allocated,
	}, nil
}

func massFactors(masses map[string]float64) (map[string]float64, error) {
	var total float64
	for _, m := range masses {
		total += m
	}
	if total <= 0 {
		return nil, &apperr.InvalidAllocationError{Method: string(MethodMass), Reason: "total co-product mass is zero"}
	}
	factors := make(map[string]float64, len(masses))
	for product, m := range masses {
		factors[product] = m / total
	}
	return factors, nil
}

func economicFactors(masses, prices map[string]float64) (map[string]float64, error) {
	var total float64
	for product, m := range masses {
		total += m * prices[product]
	}
	if total <= 0 {
		return nil, &apperr.InvalidAllocationError{Method: string(MethodEconomic), Reason: "total economic value is zero"}
	}
	factors := make(map[string]float64, len(masses))
	for product, m := range masses {
		factors[product] = m * prices[product] / total
	}
	return factors, nil
}

func hybridFactors(masses, prices map[string]float64, economicWeight float64) (map[string]float64, error) {
	mass, err := massFactors(masses)
	if err != nil {
		return nil, err
	}
	economic, err := economicFactors(masses, prices)
	if err != nil {
		return nil, &apperr.InvalidAllocationError{Method: string(MethodHybrid), Reason: "total economic value is zero"}
	}

	w := min(max(economicWeight, 0), 1)
	factors := make(map[string]float64, len(masses))
	for product := range masses {
		factors[product] = w*economic[product] + (1-w)*mass[product]
	}
	return factors, nil
}
