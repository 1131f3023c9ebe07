package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/impact"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/params"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/sustainability"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/ui"
)

var sustainabilityCmd = &cobra.Command{
	Use:   "sustainability",
	Short: "Compute the weighted sustainability score",
	Long:  "Combines RF treatment efficiency, protein yield, energy efficiency and resource conservation into the weighted composite score, and reports operating parameters outside the validated research bands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := validLogLevel(viper.GetString("sustainability.log-level"))
		if err != nil {
			return err
		}
		if level == "debug" {
			sustainability.SetLogger(cmd.ErrOrStderr())
		}

		scenario, err := loadScenario(viper.GetString("sustainability.input"))
		if err != nil {
			return err
		}

		rep, err := runSustainability(scenario)
		if err != nil {
			return err
		}

		if viper.GetBool("sustainability.plain-summary") {
			sui := ui.NewSustainabilityUI(cmd.OutOrStdout(), true)
			fmt.Fprintln(cmd.OutOrStdout(), sui.Summary(rep))
			return nil
		}

		sui := ui.NewSustainabilityUI(cmd.OutOrStdout(), level == "quiet")
		sui.PrintReport(rep)
		return nil
	},
}

// runSustainability derives the intensity metrics from the impact
// assessment, then scores the scenario against the research benchmarks.
func runSustainability(scenario params.Scenario) (sustainability.Report, error) {
	res, err := impact.Assess(scenario.Environmental.Consumption)
	if err != nil {
		return sustainability.Report{}, err
	}
	in, err := scenario.ScorerInputs(res.Intensities)
	if err != nil {
		return sustainability.Report{}, err
	}
	return sustainability.Score(in)
}

func init() {
	sustainabilityCmd.Flags().StringP("input", "i", "", "Path to scenario file (YAML or JSON)")
	sustainabilityCmd.Flags().String("log-level", "", "Log level: quiet|standard|debug")
	sustainabilityCmd.Flags().Bool("plain-summary", false, "Print a single-line plain summary (no styling)")

	viper.BindPFlag("sustainability.input", sustainabilityCmd.Flags().Lookup("input"))
	viper.BindPFlag("sustainability.log-level", sustainabilityCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("sustainability.plain-summary", sustainabilityCmd.Flags().Lookup("plain-summary"))
}
