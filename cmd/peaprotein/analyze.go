package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/econ"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/prompt"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/protein"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/report"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/sustainability"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline",
	Long:  "Runs protein recovery, the economic branch (cost, profitability, sensitivity) and the environmental branch (impacts, allocation, eco-efficiency, sustainability score), and assembles everything into one report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := validLogLevel(viper.GetString("analyze.log-level"))
		if err != nil {
			return err
		}
		if level == "debug" {
			econ.SetLogger(cmd.ErrOrStderr())
			impact.SetLogger(cmd.ErrOrStderr())
			sustainability.SetLogger(cmd.ErrOrStderr())
		}

		scenario, err := loadScenario(viper.GetString("analyze.input"))
		if err != nil {
			return err
		}

		if viper.GetBool("analyze.interactive") {
			if err := prompt.FillEconomic(&scenario); err != nil {
				return err
			}
		}

		a := report.New(scenario)

		recovery, err := protein.Recovery(scenario.Technical.Recovery)
		if err != nil {
			return fmt.Errorf("protein recovery: %w", err)
		}
		a.Recovery = &recovery

		// Branches are independent; within each, models run in dependency
		// order (cost before profitability, impacts before allocation).
		a.Economic, err = runEconomic(scenario)
		if err != nil {
			return fmt.Errorf("economic analysis: %w", err)
		}

		a.Environmental, err = runEnvironmental(scenario)
		if err != nil {
			return fmt.Errorf("environmental analysis: %w", err)
		}

		scoreIn, err := scenario.ScorerInputs(a.Environmental.Impact.Intensities)
		if err != nil {
			return apperr.User(err.Error())
		}
		score, err := sustainability.Score(scoreIn)
		if err != nil {
			return fmt.Errorf("sustainability score: %w", err)
		}
		a.Sustainability = &score

		quiet := level == "quiet"
		out := cmd.OutOrStdout()
		ui.NewEconomicUI(out, quiet).PrintReport(a.Economic.Cost, a.Economic.Profitability, a.Economic.Sensitivity)
		ui.NewEnvironmentalUI(out, quiet).PrintReport(a.Environmental.Impact, a.Environmental.Allocation, a.Environmental.EcoEfficiency)
		ui.NewSustainabilityUI(out, quiet).PrintReport(score)

		if path := viper.GetString("analyze.output"); path != "" {
			if err := report.Write(a, path, viper.GetString("analyze.format")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Dim.Render("Report written to: ")+ui.Secondary.Render(path))
		}
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Dim.Render("Run ID: ")+ui.Secondary.Render(a.RunID))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("input", "i", "", "Path to scenario file (YAML or JSON)")
	analyzeCmd.Flags().StringP("output", "o", "", "Write the assembled report to this file")
	analyzeCmd.Flags().StringP("format", "f", "auto", "Output report format: yaml|json|auto")
	analyzeCmd.Flags().Bool("interactive", false, "Review and adjust economic parameters in a form before running")
	analyzeCmd.Flags().String("log-level", "", "Log level: quiet|standard|debug")

	viper.BindPFlag("analyze.input", analyzeCmd.Flags().Lookup("input"))
	viper.BindPFlag("analyze.output", analyzeCmd.Flags().Lookup("output"))
	viper.BindPFlag("analyze.format", analyzeCmd.Flags().Lookup("format"))
	viper.BindPFlag("analyze.interactive", analyzeCmd.Flags().Lookup("interactive"))
	viper.BindPFlag("analyze.log-level", analyzeCmd.Flags().Lookup("log-level"))
}
