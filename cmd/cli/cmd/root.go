// Package cmd provides the CLI commands for hospital-billing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hospital-billing/internal/config"
	"hospital-billing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hospital-billing",
	Short: "Admit patients and generate bills from the terminal",
	Long: `hospital-billing is an interactive patient billing console.

It admits inpatients and outpatients, computes treatment charges, applies
a billing scheme (normal, corporate insurance, senior citizen discount),
prints the bill, and notifies the hospital departments.

Examples:
  hospital-billing bill
  hospital-billing bill --schemes schemes.hcl
  hospital-billing schemes`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hospital-billing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(billCmd)
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hospital-billing version 0.1.0")
	},
}
