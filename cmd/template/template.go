// Package template handles the import template export command.
package template

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/internal/importer"
)

const exampleRow = "Casalbertone,PF,25,2025,3,2234.81,247,0"

// Cmd represents the template command.
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Write the import CSV template with an example row",
	Run:   templateFunc,
}

func templateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	output := root.SharedFlags.Output
	if output == "" {
		output = "template_rendiconti.csv"
	}

	content := strings.Join(importer.Header, ",") + "\n" + exampleRow + "\n"
	if err := os.WriteFile(output, []byte(content), 0600); err != nil {
		logger.Fatalf("Failed to write template: %v", err)
	}

	root.Log.Infof("Template written to %s", output)
}
