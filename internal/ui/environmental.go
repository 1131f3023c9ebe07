package ui

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
)

// EnvironmentalUI renders the environmental analysis report.
type EnvironmentalUI struct {
	writer io.Writer
	quiet  bool
}

// NewEnvironmentalUI creates a renderer for the environmental command.
func NewEnvironmentalUI(w io.Writer, quiet bool) *EnvironmentalUI {
	return &EnvironmentalUI{writer: w, quiet: quiet}
}

// PrintReport renders impact totals with process contributions, derived
// intensities, the allocation result and the eco-efficiency table.
// Allocation and eco-efficiency sections are skipped when nil.
func (e *EnvironmentalUI) PrintReport(res impact.Result, alloc *impact.AllocationResult, eco map[impact.Category]float64) {
	if e.quiet {
		return
	}

	var out strings.Builder

	out.WriteString(Title.Render("Environmental Analysis"))
	out.WriteString("\n\n")

	out.WriteString(SectionHeader.Render("Impact Categories"))
	out.WriteString("\n")
	for _, category := range impact.AllCategories {
		cr := res.Categories[category]
		out.WriteString(fmt.Sprintf("  %s: %s\n", Bold.Render(string(category)), formatImpact(cr.Total, cr.Unit)))
		for _, step := range sortedSteps(cr.Contributions) {
			contrib := cr.Contributions[step]
			out.WriteString(fmt.Sprintf("    %s %-22s %s\n", GetBullet(), step, formatImpact(contrib.Value, contrib.Unit)))
		}
	}
	out.WriteString("\n")

	out.WriteString(SectionHeader.Render("Intensities"))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("  energy intensity", fmt.Sprintf("%.3f kWh/kg", res.Intensities.EnergyIntensityKWhPerKg)) + "\n")
	out.WriteString(FormatKeyValue("  water intensity", fmt.Sprintf("%.3f kg/kg", res.Intensities.WaterIntensityKgPerKg)) + "\n")
	out.WriteString(FormatKeyValue("  thermal ratio", ratio(res.Intensities.ThermalRatio)) + "\n")

	if alloc != nil {
		out.WriteString("\n")
		out.WriteString(SectionHeader.Render(fmt.Sprintf("Allocation (%s)", alloc.Method)))
		out.WriteString("\n")
		for _, product := range sortedProducts(alloc.Factors) {
			out.WriteString(fmt.Sprintf("  %-18s %6.2f%%\n", product, alloc.Factors[product]*100))
			for _, category := range impact.AllCategories {
				if share, ok := alloc.AllocatedImpacts[product][category]; ok {
					out.WriteString(fmt.Sprintf("    %s %-20s %s\n", GetBullet(), category, formatImpact(share, impact.CategoryUnit(category))))
				}
			}
		}
	}

	if eco != nil {
		out.WriteString("\n")
		out.WriteString(SectionHeader.Render("Eco-Efficiency (value added per impact unit)"))
		out.WriteString("\n")
		for _, category := range impact.AllCategories {
			if v, ok := eco[category]; ok {
				out.WriteString(fmt.Sprintf("  %-20s %12.4g\n", category, v))
			}
		}
	}

	fmt.Fprintln(e.writer, Box.Render(strings.TrimRight(out.String(), "\n")))
}

// Summary returns a single-line plain summary of the impact totals.
func (e *EnvironmentalUI) Summary(res impact.Result) string {
	return fmt.Sprintf("GWP: %.2f kg CO2 eq | HCT: %.2e CTUh | FRS: %.2f kg oil eq | Water: %.2f kg",
		res.Categories[impact.GWP].Total,
		res.Categories[impact.HCT].Total,
		res.Categories[impact.FRS].Total,
		res.Categories[impact.WaterConsumption].Total)
}

func formatImpact(v float64, unit impact.Unit) string {
	if unit == impact.UnitCTUh {
		return fmt.Sprintf("%.3e %s", v, unit)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}

func ratio(v float64) string {
	if math.IsNaN(v) {
		return Muted.Render("n/a (no thermal step)")
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

func sortedSteps(contributions map[string]impact.Contribution) []string {
	steps := make([]string, 0, len(contributions))
	for step := range contributions {
		steps = append(steps, step)
	}
	sort.Strings(steps)
	return steps
}

func sortedProducts(factors map[string]float64) []string {
	products := make([]string, 0, len(factors))
	for product := range factors {
		products = append(products, product)
	}
	sort.Strings(products)
	return products
}
