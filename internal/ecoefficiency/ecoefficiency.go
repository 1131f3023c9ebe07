// Package ecoefficiency relates the economic value created by the process
// to its environmental burdens.
package ecoefficiency

import (
	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
)

// ValueAdded is total product revenue minus the raw material cost:
// sum(price_i * volume_i) - raw_material_cost.
func ValueAdded(pricesPerKg, volumesKg map[string]float64, rawMaterialCost float64) float64 {
	var revenue float64
	for product, price := range pricesPerKg {
		revenue += price * volumesKg[product]
	}
	return revenue - rawMaterialCost
}

// Ratio is economic value per unit of environmental impact. Zero impact
// (or a negative one) yields a ratio of 0 rather than a division error.
func Ratio(economicValue, environmentalImpact float64) float64 {
	if environmentalImpact <= 0 {
		return 0
	}
	return economicValue / environmentalImpact
}

// PerCategory computes the eco-efficiency ratio against every impact
// category total.
func PerCategory(economicValue float64, totals map[impact.Category]float64) map[impact.Category]float64 {
	out := make(map[impact.Category]float64, len(totals))
	for category, total := range totals {
		out[category] = Ratio(economicValue, total)
	}
	return out
}
