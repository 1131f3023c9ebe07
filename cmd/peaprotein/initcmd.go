package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dish365/pea-protein-analysis-sub001/internal/apperr"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/params"
	"github.com/Dish365/pea-protein-analysis-sub001/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the research baseline scenario to a file",
	Long:  "Writes the default RF dry fractionation scenario (YAML or JSON, by extension) so it can be edited and fed back via --input.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "scenario.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !viper.GetBool("init.force") {
			return apperr.Userf("%s already exists (use --force to overwrite)", path)
		}

		if err := params.Save(params.Default(), path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatKeyValue("Scenario written", path))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	viper.BindPFlag("init.force", initCmd.Flags().Lookup("force"))
}
