package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/econ"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/params"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/report"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/ui"
)

var economicCmd = &cobra.Command{
	Use:   "economic",
	Short: "Run the economic analysis branch",
	Long:  "Computes the annualized cost breakdown, profitability metrics and cost-driver sensitivity table for a scenario file (YAML or JSON). Without --input the research baseline scenario is used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := validLogLevel(viper.GetString("economic.log-level"))
		if err != nil {
			return err
		}
		if level == "debug" {
			econ.SetLogger(cmd.ErrOrStderr())
		}

		scenario, err := loadScenario(viper.GetString("economic.input"))
		if err != nil {
			return err
		}
		if viper.IsSet("economic.selling-price") {
			scenario.Economic.SellingPricePerKg = viper.GetFloat64("economic.selling-price")
			scenario.Economic.Sensitivity.SellingPricePerKg = viper.GetFloat64("economic.selling-price")
		}

		results, err := runEconomic(scenario)
		if err != nil {
			return err
		}

		if viper.GetBool("economic.plain-summary") {
			eui := ui.NewEconomicUI(cmd.OutOrStdout(), true)
			fmt.Fprintln(cmd.OutOrStdout(), eui.Summary(results.Cost, results.Profitability))
			return nil
		}

		eui := ui.NewEconomicUI(cmd.OutOrStdout(), level == "quiet")
		eui.PrintReport(results.Cost, results.Profitability, results.Sensitivity)

		if out := viper.GetString("economic.output"); out != "" {
			a := report.New(scenario)
			a.Economic = results
			if err := report.Write(a, out, viper.GetString("economic.format")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Dim.Render("Report written to: ")+ui.Secondary.Render(out))
		}
		return nil
	},
}

// runEconomic executes the economic branch in dependency order: the cost
// model output feeds both the profitability model and the report.
func runEconomic(scenario params.Scenario) (*report.EconomicResults, error) {
	cost, err := econ.AnnualCosts(scenario.Economic.Costs)
	if err != nil {
		return nil, err
	}
	prof, err := econ.Profitability(scenario.ProfitabilityInputs(cost.TotalAnnualCost))
	if err != nil {
		return nil, err
	}
	rows, err := econ.Analyze(scenario.SensitivityInputs(), scenario.Economic.Sensitivity)
	if err != nil {
		return nil, err
	}
	return &report.EconomicResults{Cost: cost, Profitability: prof, Sensitivity: rows}, nil
}

// loadScenario reads the scenario file, or returns the research baseline
// when no path was given.
func loadScenario(path string) (params.Scenario, error) {
	if path == "" {
		return params.Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return params.Scenario{}, fmt.Errorf("scenario file: %w", err)
	}
	return params.Load(path)
}

func init() {
	economicCmd.Flags().StringP("input", "i", "", "Path to scenario file (YAML or JSON)")
	economicCmd.Flags().Float64("selling-price", 0, "Override the product selling price (USD/kg)")
	economicCmd.Flags().StringP("output", "o", "", "Write the branch results to this file")
	economicCmd.Flags().StringP("format", "f", "auto", "Output report format: yaml|json|auto")
	economicCmd.Flags().String("log-level", "", "Log level: quiet|standard|debug")
	economicCmd.Flags().Bool("plain-summary", false, "Print a single-line plain summary (no styling)")

	// Bind all flags to viper for config file support
	viper.BindPFlag("economic.input", economicCmd.Flags().Lookup("input"))
	viper.BindPFlag("economic.selling-price", economicCmd.Flags().Lookup("selling-price"))
	viper.BindPFlag("economic.output", economicCmd.Flags().Lookup("output"))
	viper.BindPFlag("economic.format", economicCmd.Flags().Lookup("format"))
	viper.BindPFlag("economic.log-level", economicCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("economic.plain-summary", economicCmd.Flags().Lookup("plain-summary"))
}
