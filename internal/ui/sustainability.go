package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/sustainability"
)

// SustainabilityUI renders the sustainability score report.
type SustainabilityUI struct {
	writer io.Writer
	quiet  bool
}

// NewSustainabilityUI creates a renderer for the sustainability command.
func NewSustainabilityUI(w io.Writer, quiet bool) *SustainabilityUI {
	return &SustainabilityUI{writer: w, quiet: quiet}
}

// PrintReport renders the composite score, its weighted sub-scores and the
// improvement opportunities derived from violated operating bands.
func (s *SustainabilityUI) PrintReport(report sustainability.Report) {
	if s.quiet {
		return
	}

	var out strings.Builder

	out.WriteString(Title.Render("Sustainability Score"))
	out.WriteString("\n\n")
	out.WriteString(fmt.Sprintf("  %s %s\n\n", Bold.Render("overall:"), scoreBadge(report.OverallScore)))

	out.WriteString(SectionHeader.Render("Weighted Metrics"))
	out.WriteString("\n")
	for _, sub := range report.SubScores {
		out.WriteString(fmt.Sprintf("  %-26s value %8.3f  target %8.3f  weight %.2f  %s\n",
			sub.Metric, sub.Value, sub.Target, sub.Weight, ratioMark(sub.Ratio)))
	}

	if len(report.Violations) > 0 {
		out.WriteString("\n")
		out.WriteString(SectionHeader.Render("Improvement Opportunities"))
		out.WriteString("\n")
		for _, v := range report.Violations {
			out.WriteString(fmt.Sprintf("  %s %s\n", GetCrossMark(), improvementMessage(v)))
		}
	} else {
		out.WriteString("\n  " + GetCheckMark() + " all validated operating bands satisfied\n")
	}

	frame := SuccessBox
	if len(report.Violations) > 0 {
		frame = ErrorBox
	}
	fmt.Fprintln(s.writer, frame.Render(strings.TrimRight(out.String(), "\n")))
}

// Summary returns a single-line plain summary of the score.
func (s *SustainabilityUI) Summary(report sustainability.Report) string {
	return fmt.Sprintf("Sustainability Score: %.1f%% | Metrics: %d | Band Violations: %d",
		report.OverallScore, len(report.SubScores), len(report.Violations))
}

// improvementMessage turns a structured band violation into the
// human-readable opportunity line shown to operators.
func improvementMessage(v sustainability.BandViolation) string {
	return fmt.Sprintf("%s is %.2f, outside the validated band %.2f ± %.2f",
		v.Metric, v.Current, v.Target, v.Tolerance)
}

func scoreBadge(score float64) string {
	text := fmt.Sprintf("%.1f%%", score)
	switch {
	case score >= 80:
		return Success.Render(text)
	case score >= 50:
		return Warning.Render(text)
	default:
		return Error.Render(text)
	}
}

func ratioMark(ratio float64) string {
	if ratio >= 1 {
		return GetCheckMark()
	}
	return GetWarnMark()
}
