// Package cmd - bill command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	schemesfile "hospital-billing/adapters/schemes/hcl"
	"hospital-billing/core/billing"
	"hospital-billing/core/notify"
	"hospital-billing/core/patient"
	"hospital-billing/core/session"
	"hospital-billing/core/ui"
	"hospital-billing/internal/config"
	"hospital-billing/internal/logging"
)

var (
	schemeFile string
	noColor    bool
)

// billCmd represents the bill command
var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Run the interactive admission and billing session",
	Long: `Start the interactive billing shell.

The shell admits a patient, computes the treatment charge, applies the
selected billing scheme, prints the bill, and notifies the Accounts Dept
and the Reception Desk.

Examples:
  hospital-billing bill
  hospital-billing bill --schemes schemes.hcl
  hospital-billing bill --no-color`,
	Args: cobra.NoArgs,
	RunE: runBill,
}

func init() {
	billCmd.Flags().StringVarP(&schemeFile, "schemes", "s", "", "HCL file defining billing schemes")
	billCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runBill(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	schemes, err := loadSchemes(cfg)
	if err != nil {
		return err
	}

	out := ui.NewWriter(os.Stdout, noColor || cfg.Output.NoColor)

	// Fixed department wiring, in notification order.
	publisher := notify.NewPublisher()
	publisher.Subscribe(notify.NewDepartment("Accounts Dept", out))
	publisher.Subscribe(notify.NewDepartment("Reception Desk", out))

	logging.Info("starting billing session")

	sess := session.New(session.Options{
		HospitalName: cfg.Hospital.Name,
		In:           os.Stdin,
		Out:          out,
		Registry:     patient.NewRegistry(cfg.Hospital.StartingPatientID),
		Schemes:      schemes,
		Publisher:    publisher,
		Currency:     cfg.Billing.Currency,
	})

	return sess.Run()
}

func loadSchemes(cfg *config.Config) (*billing.Schemes, error) {
	path := schemeFile
	if path == "" {
		path = cfg.Billing.SchemeFile
	}
	if path == "" {
		return billing.DefaultSchemes(), nil
	}
	return schemesfile.Load(path)
}
