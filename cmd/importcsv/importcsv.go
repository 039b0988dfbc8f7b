// Package importcsv handles the bulk CSV import command.
package importcsv

import (
	"os"

	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/internal/importer"
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import monthly statement rows from a CSV file",
	Long: `Import reconciles CSV rows against the stored properties and monthly
records. Unknown properties are created, existing ones updated, and a row
matching an existing (property, year, month) statement replaces it wholesale.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if root.SharedFlags.Input == "" {
		logger.Fatalf("No input file specified, use --input")
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

	file, err := os.Open(root.SharedFlags.Input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.Fatalf("Failed to open input file: %v", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close input file")
		}
	}()

	result, err := importer.Import(file, properties, records, logger)
	if err != nil {
		logger.Fatalf("Import failed: %v", err)
	}

	for _, d := range result.Diagnostics {
		logger.Warn(d.String())
	}

	if err := st.SaveProperties(result.Properties); err != nil {
		logger.Fatalf("Failed to save properties: %v", err)
	}
	if err := st.SaveRecords(result.Records); err != nil {
		logger.Fatalf("Failed to save records: %v", err)
	}

	root.Log.Infof("Import completed: %d rows imported, %d dropped", result.Imported, result.Dropped)
}
