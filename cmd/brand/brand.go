// Package brand handles report branding commands.
package brand

import (
	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
)

var (
	name  string
	color string
	logo  string
)

// Cmd represents the brand command group.
var Cmd = &cobra.Command{
	Use:   "brand",
	Short: "Manage the report branding",
}

func newSetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "set",
		Short: "Set the branding shown on statement reports",
		Long: `Set updates the stored branding snapshot. Only the fields passed as
flags change; the others keep their current value.`,
		Run: setFunc,
	}
	c.Flags().StringVarP(&name, "name", "n", "", "Brand name shown on reports")
	c.Flags().StringVarP(&color, "color", "c", "", "Accent color, e.g. #487667")
	c.Flags().StringVar(&logo, "logo", "", "Logo image reference")
	return c
}

func init() {
	Cmd.AddCommand(newSetCmd())
}

func setFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	st := root.GetStore()
	b, err := st.LoadBrand()
	if err != nil {
		logger.Fatalf("Failed to load brand: %v", err)
	}

	if cmd.Flags().Changed("name") {
		b.Name = name
	}
	if cmd.Flags().Changed("color") {
		b.Color = color
	}
	if cmd.Flags().Changed("logo") {
		b.Logo = logo
	}

	if err := st.SaveBrand(b); err != nil {
		logger.Fatalf("Failed to save brand: %v", err)
	}
	root.Log.Infof("Brand updated: %s", b.Name)
}
