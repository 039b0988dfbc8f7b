// Package dashboard handles the annual aggregation command.
package dashboard

import (
	"os"

	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/internal/annual"
	"mrossi/rendiconti/internal/report"
)

var (
	year       int
	propertyID string
)

// Cmd represents the annual command.
var Cmd = &cobra.Command{
	Use:   "annual",
	Short: "Aggregate monthly statements into the annual table",
	Long: `Annual folds the stored monthly records of one year into the dashboard
table: twelve monthly sums plus a grand total for each financial line item,
for a single property or across all of them.`,
	Run: annualFunc,
}

func init() {
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Target year (required)")
	Cmd.Flags().StringVarP(&propertyID, "property", "p", "", "Restrict to one property ID (default: all)")
	_ = Cmd.MarkFlagRequired("year")
}

func annualFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	st := root.GetStore()
	properties, err := st.LoadProperties()
	if err != nil {
		logger.Fatalf("Failed to load properties: %v", err)
	}
	records, err := st.LoadRecords()
	if err != nil {
		logger.Fatalf("Failed to load records: %v", err)
	}

	table := annual.Aggregate(records, properties, year, propertyID)

	out := os.Stdout
	if root.SharedFlags.Output != "" {
		f, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			logger.Fatalf("Failed to create output file: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close output file")
			}
		}()
		out = f
	}

	generator := report.NewGenerator(logger)
	if err := generator.RenderAnnualCSV(out, table); err != nil {
		logger.Fatalf("Failed to render annual table: %v", err)
	}
}
