// Package cmd - schemes command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"hospital-billing/core/ui"
	"hospital-billing/internal/config"
)

// schemesCmd lists the available billing schemes
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available billing schemes",
	Args:  cobra.NoArgs,
	RunE:  runSchemes,
}

func init() {
	schemesCmd.Flags().StringVarP(&schemeFile, "schemes", "s", "", "HCL file defining billing schemes")
	schemesCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runSchemes(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	schemes, err := loadSchemes(cfg)
	if err != nil {
		return err
	}

	out := ui.NewWriter(os.Stdout, noColor || cfg.Output.NoColor)
	out.Header("Billing Schemes")

	table := out.NewTable("Code", "Name", "Multiplier")
	for _, scheme := range schemes.All() {
		table.AddRow(scheme.Code, scheme.Name, scheme.Multiplier.StringFixed(2))
	}
	table.Render()

	out.Println("")
	out.Println("Unrecognized codes fall back to %s.", schemes.Fallback().Name)
	return nil
}
