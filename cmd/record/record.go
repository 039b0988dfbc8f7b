// Package record handles manual monthly-record commands.
package record

import (
	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/internal/models"
	"mrossi/rendiconti/internal/monthutils"
)

var (
	propertyID string
	year       int
	month      string
	airbnb     string
	pulizie    string
	altreSpese string
	notes      string
)

// Cmd represents the record command group.
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Manage monthly records",
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save one month's raw figures for a property",
	Long: `Save stores a monthly record. An existing record for the same property,
year and month is replaced wholesale.`,
	Run: saveFunc,
}

func init() {
	saveCmd.Flags().StringVarP(&propertyID, "property", "p", "", "Property ID (required)")
	saveCmd.Flags().IntVarP(&year, "year", "y", 0, "Year (required)")
	saveCmd.Flags().StringVarP(&month, "month", "m", "", "Month, 1-12 or name (required)")
	saveCmd.Flags().StringVar(&airbnb, "airbnb", "0", "Gross booking income")
	saveCmd.Flags().StringVar(&pulizie, "pulizie", "0", "Cleaning costs")
	saveCmd.Flags().StringVar(&altreSpese, "altre-spese", "0", "Other expenses")
	saveCmd.Flags().StringVar(&notes, "notes", "", "Free-text notes for the report")
	_ = saveCmd.MarkFlagRequired("property")
	_ = saveCmd.MarkFlagRequired("year")
	_ = saveCmd.MarkFlagRequired("month")

	Cmd.AddCommand(saveCmd)
}

func saveFunc(cmd *cobra.Command, args []string) {
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
	if !propertyExists(properties, propertyID) {
		logger.Fatalf("Property not found: %s", propertyID)
	}

	records, err := st.LoadRecords()
	if err != nil {
		logger.Fatalf("Failed to load records: %v", err)
	}

	r := models.NewMonthlyRecord(propertyID, year, monthIndex,
		models.ParseAmount(airbnb), models.ParseAmount(pulizie), models.ParseAmount(altreSpese))
	r.Notes = notes

	replaced := false
	for i := range records {
		if records[i].Key() == r.Key() {
			records[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, r)
	}

	if err := st.SaveRecords(records); err != nil {
		logger.Fatalf("Failed to save records: %v", err)
	}

	if replaced {
		root.Log.Infof("Replaced record for %s %d/%d", propertyID, year, monthIndex+1)
	} else {
		root.Log.Infof("Saved record for %s %d/%d", propertyID, year, monthIndex+1)
	}
}

func propertyExists(properties []models.Property, id string) bool {
	for _, p := range properties {
		if p.ID == id {
			return true
		}
	}
	return false
}
