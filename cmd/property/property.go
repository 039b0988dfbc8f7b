// Package property handles property directory maintenance commands.
package property

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mrossi/rendiconti/cmd/root"
	"mrossi/rendiconti/internal/models"
)

var (
	name          string
	ownerType     string
	commissionPct string
	ownerDisplay  string
	address       string
	deleteID      string
)

// Cmd represents the property command group.
var Cmd = &cobra.Command{
	Use:   "property",
	Short: "Manage the property directory",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored properties",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a property",
	Run:   addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a property and its monthly records",
	Run:   deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Property name (required)")
	addCmd.Flags().StringVarP(&ownerType, "owner-type", "t", string(models.OwnerIndividual), "Owner tax category: PF or Societa")
	addCmd.Flags().StringVarP(&commissionPct, "commission", "c", "0", "Management commission percentage")
	addCmd.Flags().StringVar(&ownerDisplay, "owner-display", "", "Owner display name for reports")
	addCmd.Flags().StringVar(&address, "address", "", "Property address")
	_ = addCmd.MarkFlagRequired("name")

	deleteCmd.Flags().StringVar(&deleteID, "id", "", "Property ID (required)")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	properties, err := root.GetStore().LoadProperties()
	if err != nil {
		logger.Fatalf("Failed to load properties: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNome\tTipo\tCommissione %")
	for _, p := range properties {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.OwnerType, models.FormatAmount(p.CommissionPct))
	}
	if err := w.Flush(); err != nil {
		logger.Fatalf("Failed to write property list: %v", err)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	st := root.GetStore()
	properties, err := st.LoadProperties()
	if err != nil {
		logger.Fatalf("Failed to load properties: %v", err)
	}

	p := models.NewProperty(name, models.ParseOwnerType(ownerType), models.ParseAmount(commissionPct))
	p.OwnerDisplay = ownerDisplay
	p.Address = address
	properties = append(properties, p)

	if err := st.SaveProperties(properties); err != nil {
		logger.Fatalf("Failed to save properties: %v", err)
	}
	root.Log.Infof("Added property %s (%s)", p.Name, p.ID)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if err := root.GetStore().DeleteProperty(deleteID); err != nil {
		logger.Fatalf("Failed to delete property: %v", err)
	}
	root.Log.Infof("Deleted property %s", deleteID)
}
