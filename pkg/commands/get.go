package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "get <kind>",
		Short:     "List records in one store",
		ValidArgs: []string{"bills", "insurance", "subscriptions", "recurring", "notes", "vehicles", "medicines"},
		Args:      cobra.ExactValidArgs(1),
		Example: `
sambat get bills
sambat get vehicles
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			ctx := cmd.Context()

			tbl := uitable.New()
			tbl.MaxColWidth = 50
			tbl.Separator = "  "

			switch args[0] {
			case "bills":
				tbl.AddRow("ID", "Name", "Amount", "Due", "Paid")
				for _, b := range s.Bills.All(ctx) {
					tbl.AddRow(b.ID, b.Name, b.Amount.String()+" "+b.Currency, b.DueDate, b.Paid)
				}
			case "insurance":
				tbl.AddRow("ID", "Name", "Provider", "Premium", "Expires", "Status")
				for _, p := range s.Insurance.All(ctx) {
					tbl.AddRow(p.ID, p.Name, p.Provider, p.Premium.String()+" "+p.Currency, p.ExpiryDate, p.Status)
				}
			case "subscriptions":
				tbl.AddRow("ID", "Name", "Provider", "Fee", "Renews", "Active")
				for _, sub := range s.Subscriptions.All(ctx) {
					tbl.AddRow(sub.ID, sub.Name, sub.Provider, sub.Fee.String()+" "+sub.Currency, sub.RenewDate, sub.Active)
				}
			case "recurring":
				tbl.AddRow("ID", "Name", "Amount", "Next Due", "Active")
				for _, r := range s.Recurring.All(ctx) {
					tbl.AddRow(r.ID, r.Name, r.Amount.String()+" "+r.Currency, r.NextDueDate, r.Active)
				}
			case "notes":
				tbl.AddRow("ID", "Title", "Remind On", "Done")
				for _, n := range s.Notes.All(ctx) {
					tbl.AddRow(n.ID, n.Title, n.RemindDate, n.Done)
				}
			case "vehicles":
				tbl.AddRow("ID", "Name", "Plate", "Insurance", "Registration")
				for _, v := range s.Vehicles.All(ctx) {
					tbl.AddRow(v.ID, v.Name, v.PlateNumber, v.InsuranceExpiry, v.RegistrationExpiry)
				}
			case "medicines":
				tbl.AddRow("ID", "Name", "Quantity", "Expires")
				for _, m := range s.Medicines.All(ctx) {
					tbl.AddRow(m.ID, m.Name, m.Quantity, m.ExpiryDate)
				}
			}

			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
