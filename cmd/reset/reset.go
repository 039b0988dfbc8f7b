// Package reset handles the data reset command.
package reset

import (
	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
)

var force bool

// Cmd represents the reset command.
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored properties, records and branding",
	Long: `Reset removes every stored snapshot, returning the application to its
initial empty state. It refuses to run without --force.`,
	Run: resetFunc,
}

func init() {
	Cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion of all stored data")
}

func resetFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if !force {
		logger.Fatalf("Refusing to delete all stored data without --force")
	}

	if err := root.GetStore().Reset(); err != nil {
		logger.Fatalf("Failed to reset stored data: %v", err)
	}
	root.Log.Info("All stored data deleted")
}
