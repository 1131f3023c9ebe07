package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/econ"
)

// EconomicUI renders the economic analysis report.
type EconomicUI struct {
	writer io.Writer
	quiet  bool
}

// NewEconomicUI creates a renderer for the economic command.
func NewEconomicUI(w io.Writer, quiet bool) *EconomicUI {
	return &EconomicUI{writer: w, quiet: quiet}
}

// PrintReport renders the cost breakdown, profitability metrics and
// sensitivity table. Sensitivity rows are sorted by |impact| descending
// before rendering; sorting is a display concern, so it happens here.
func (e *EconomicUI) PrintReport(cost econ.CostResult, prof econ.ProfitabilityMetrics, rows []econ.SensitivityRow) {
	if e.quiet {
		return
	}

	var out strings.Builder

	out.WriteString(Title.Render("Economic Analysis"))
	out.WriteString("\n\n")

	out.WriteString(SectionHeader.Render("Annual Cost Breakdown"))
	out.WriteString("\n")
	for _, category := range econ.Categories {
		out.WriteString(fmt.Sprintf("  %-14s %14s\n", category, usd(cost.Breakdown[category])))
	}
	out.WriteString(fmt.Sprintf("  %-14s %14s\n", Bold.Render("total"), Bold.Render(usd(cost.TotalAnnualCost))))
	out.WriteString(FormatKeyValue("  unit cost", fmt.Sprintf("%.2f USD/kg", cost.UnitCost)))
	out.WriteString("\n\n")

	out.WriteString(SectionHeader.Render("Profitability"))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("  annual revenue", usd(prof.AnnualRevenue)) + "\n")
	out.WriteString(FormatKeyValue("  annual profit", usd(prof.AnnualProfit)) + "\n")
	out.WriteString(FormatKeyValue("  total investment", usd(prof.TotalInvestment)) + "\n")
	out.WriteString(FormatKeyValue("  ROI", fmt.Sprintf("%.2f%%", prof.ROIPercent)) + "\n")
	out.WriteString(FormatKeyValue("  payback period", years(prof.PaybackYears)) + "\n")
	out.WriteString(FormatKeyValue("  NPV", usd(prof.NPV)) + "\n")
	out.WriteString(FormatKeyValue("  IRR (approximate)", fmt.Sprintf("%.2f%%", prof.IRRApproxPercent)) + "\n")
	out.WriteString(FormatKeyValue("  IRR (exact)", percent(prof.IRRExactPercent)) + "\n\n")

	out.WriteString(SectionHeader.Render("Cost Driver Sensitivity (+10%)"))
	out.WriteString("\n")
	sorted := make([]econ.SensitivityRow, len(rows))
	copy(sorted, rows)
	econ.SortRowsByImpact(sorted)
	for _, row := range sorted {
		out.WriteString(fmt.Sprintf("  %-20s %10s  %s\n",
			row.Parameter, impactPercent(row.ImpactPercent), classBadge(row.Class)))
	}

	fmt.Fprintln(e.writer, Box.Render(strings.TrimRight(out.String(), "\n")))
}

// Summary returns a single-line plain summary of the economic results.
func (e *EconomicUI) Summary(cost econ.CostResult, prof econ.ProfitabilityMetrics) string {
	return fmt.Sprintf("Total Annual Cost: %.2f | Unit Cost: %.2f USD/kg | ROI: %.2f%% | Payback: %s | NPV: %.2f",
		cost.TotalAnnualCost, cost.UnitCost, prof.ROIPercent, years(prof.PaybackYears), prof.NPV)
}

func classBadge(c econ.SensitivityClass) string {
	switch c {
	case econ.ClassHigh:
		return Error.Render(string(c))
	case econ.ClassMedium:
		return Warning.Render(string(c))
	case econ.ClassLow:
		return Success.Render(string(c))
	default:
		return Muted.Render(string(c))
	}
}

func usd(v float64) string { return fmt.Sprintf("%.2f USD", v) }

func percent(v float64) string {
	if math.IsNaN(v) {
		return Muted.Render("n/a")
	}
	return fmt.Sprintf("%.2f%%", v)
}

func years(v float64) string {
	if math.IsNaN(v) {
		return Muted.Render("undefined (no positive profit)")
	}
	return fmt.Sprintf("%.2f years", v)
}

func impactPercent(v float64) string {
	if math.IsNaN(v) {
		return Muted.Render("n/a")
	}
	return fmt.Sprintf("%+.2f%%", v)
}
