package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/ecoefficiency"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/params"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/report"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/ui"
)

var environmentalCmd = &cobra.Command{
	Use:   "environmental",
	Short: "Run the environmental analysis branch",
	Long:  "Computes impact category totals with per-process-step contributions, derived intensity metrics, the co-product allocation and eco-efficiency ratios for a scenario file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := validLogLevel(viper.GetString("environmental.log-level"))
		if err != nil {
			return err
		}
		if level == "debug" {
			impact.SetLogger(cmd.ErrOrStderr())
		}

		scenario, err := loadScenario(viper.GetString("environmental.input"))
		if err != nil {
			return err
		}
		if method := viper.GetString("environmental.method"); method != "" {
			scenario.Environmental.Allocation.Method = method
		}
		if viper.IsSet("environmental.economic-weight") {
			scenario.Environmental.Allocation.EconomicWeight = viper.GetFloat64("environmental.economic-weight")
		}

		results, err := runEnvironmental(scenario)
		if err != nil {
			return err
		}

		if viper.GetBool("environmental.plain-summary") {
			eui := ui.NewEnvironmentalUI(cmd.OutOrStdout(), true)
			fmt.Fprintln(cmd.OutOrStdout(), eui.Summary(results.Impact))
			return nil
		}

		eui := ui.NewEnvironmentalUI(cmd.OutOrStdout(), level == "quiet")
		eui.PrintReport(results.Impact, results.Allocation, results.EcoEfficiency)

		if out := viper.GetString("environmental.output"); out != "" {
			a := report.New(scenario)
			a.Environmental = results
			if err := report.Write(a, out, viper.GetString("environmental.format")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Dim.Render("Report written to: ")+ui.Secondary.Render(out))
		}
		return nil
	},
}

// runEnvironmental executes the environmental branch in dependency order:
// the impact assessment feeds the allocator and the eco-efficiency table.
func runEnvironmental(scenario params.Scenario) (*report.EnvironmentalResults, error) {
	res, err := impact.Assess(scenario.Environmental.Consumption)
	if err != nil {
		return nil, err
	}

	allocIn, err := scenario.AllocationInputs(res.Totals())
	if err != nil {
		return nil, err
	}
	alloc, err := impact.Allocate(allocIn)
	if err != nil {
		return nil, err
	}

	valueAdded := ecoefficiency.ValueAdded(
		scenario.Environmental.Allocation.ProductValues,
		scenario.Environmental.Allocation.MassFlows,
		scenario.Economic.Costs.RawMaterialCostPerKg*scenario.Environmental.Consumption.ProductKg,
	)
	eco := ecoefficiency.PerCategory(valueAdded, res.Totals())

	return &report.EnvironmentalResults{Impact: res, Allocation: &alloc, EcoEfficiency: eco}, nil
}

func init() {
	environmentalCmd.Flags().StringP("input", "i", "", "Path to scenario file (YAML or JSON)")
	environmentalCmd.Flags().String("method", "", "Allocation method: mass|economic|hybrid")
	environmentalCmd.Flags().Float64("economic-weight", 0, "Hybrid allocation weight for economic factors, in [0,1]")
	environmentalCmd.Flags().StringP("output", "o", "", "Write the branch results to this file")
	environmentalCmd.Flags().StringP("format", "f", "auto", "Output report format: yaml|json|auto")
	environmentalCmd.Flags().String("log-level", "", "Log level: quiet|standard|debug")
	environmentalCmd.Flags().Bool("plain-summary", false, "Print a single-line plain summary (no styling)")

	viper.BindPFlag("environmental.input", environmentalCmd.Flags().Lookup("input"))
	viper.BindPFlag("environmental.method", environmentalCmd.Flags().Lookup("method"))
	viper.BindPFlag("environmental.economic-weight", environmentalCmd.Flags().Lookup("economic-weight"))
	viper.BindPFlag("environmental.output", environmentalCmd.Flags().Lookup("output"))
	viper.BindPFlag("environmental.format", environmentalCmd.Flags().Lookup("format"))
	viper.BindPFlag("environmental.log-level", environmentalCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("environmental.plain-summary", environmentalCmd.Flags().Lookup("plain-summary"))
}
