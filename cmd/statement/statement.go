// Package statement handles the single-month statement report command.
package statement

import (
	"os"

	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/internal/models"
	"mrossi/rendiconti/internal/monthutils"
	"mrossi/rendiconti/internal/report"
)

var (
	propertyID string
	year       int
	month      string
	format     string
)

// Cmd represents the statement command.
var Cmd = &cobra.Command{
	Use:   "statement",
	Short: "Render the statement report for one property and month",
	Long: `Statement resolves one stored monthly record, derives its financial
breakdown and renders the report data consumed by document renderers.`,
	Run: statementFunc,
}

func init() {
	Cmd.Flags().StringVarP(&propertyID, "property", "p", "", "Property ID (required)")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (required)")
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month, 1-12 or name (required)")
	Cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or csv")
	_ = Cmd.MarkFlagRequired("property")
	_ = Cmd.MarkFlagRequired("year")
	_ = Cmd.MarkFlagRequired("month")
}

func statementFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	monthIndex, ok := monthutils.Resolve(month)
	if !ok {
		logger.Fatalf("Unrecognized month: %q", month)
	}

	st := root.GetStore()
	properties, err := st.LoadProperties()
	if err != nil {
		logger.Fatalf("Failed to load properties: %v", err)
	}
	records, err := st.LoadRecords()
	if err != nil {
		logger.Fatalf("Failed to load records: %v", err)
	}
	brand, err := st.LoadBrand()
	if err != nil {
		logger.Fatalf("Failed to load brand: %v", err)
	}
	if brand == (models.Brand{}) && root.Cfg != nil {
		brand = models.Brand{
			Name:  root.Cfg.Brand.Name,
			Color: root.Cfg.Brand.Color,
			Logo:  root.Cfg.Brand.Logo,
		}
	}

	property, found := findProperty(properties, propertyID)
	if !found {
		logger.Fatalf("Property not found: %s", propertyID)
	}

	record, found := findRecord(records, propertyID, year, monthIndex)
	if !found {
		logger.Fatalf("No record saved for %s %d/%d", propertyID, year, monthIndex+1)
	}

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
	s := report.BuildStatement(record, property, brand)
	if err := generator.RenderStatement(out, s, format); err != nil {
		logger.Fatalf("Failed to render statement: %v", err)
	}
}

func findProperty(properties []models.Property, id string) (models.Property, bool) {
	for _, p := range properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

func findRecord(records []models.MonthlyRecord, propertyID string, year, month int) (models.MonthlyRecord, bool) {
	for _, r := range records {
		if r.PropertyID == propertyID && r.Year == year && r.Month == month {
			return r, true
		}
	}
	return models.MonthlyRecord{}, false
}
