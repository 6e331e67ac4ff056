package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/ledger"
)

type recordOptions struct {
	Name      string
	Source    string
	ItemID    string
	Amount    string
	Currency  string
	PaidDate  string
	DueDate   string
	Method    string
	Notes     string
	Provider  string
	Reference string
}

func addRecord(topLevel *cobra.Command) {
	ro := &recordOptions{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a payment in the ledger",
		Example: `
sambat record --name "Home electricity" --source bills --amount 1450 --method esewa
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ro.Name == "" {
				return oo.HandleError(fmt.Errorf("--name is required"))
			}
			amount, err := decimal.NewFromString(ro.Amount)
			if err != nil {
				return oo.HandleError(fmt.Errorf("bad --amount %q: %w", ro.Amount, err))
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			meta := map[string]string{}
			if ro.Provider != "" {
				meta["provider"] = ro.Provider
			}
			if ro.Reference != "" {
				meta["reference"] = ro.Reference
			}
			rec := s.Ledger.Record(ledger.PaymentRecord{
				Source:         ro.Source,
				SourceItemID:   ro.ItemID,
				DisplayName:    ro.Name,
				Amount:         amount,
				Currency:       ro.Currency,
				PaidDate:       ro.PaidDate,
				SettledDueDate: ro.DueDate,
				PaymentMethod:  ro.Method,
				Notes:          ro.Notes,
				Meta:           meta,
			})
			fmt.Printf("recorded %s\n", rec.LedgerID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ro.Name, "name", "", "What was paid.")
	cmd.Flags().StringVar(&ro.Source, "source", "other", "Ledger source (bills, insurance, subscriptions, ...).")
	cmd.Flags().StringVar(&ro.ItemID, "item", "", "Originating record id, if any.")
	cmd.Flags().StringVar(&ro.Amount, "amount", "0", "Amount paid.")
	cmd.Flags().StringVar(&ro.Currency, "currency", "NPR", "Currency code.")
	cmd.Flags().StringVar(&ro.PaidDate, "paid", "", "BS date paid (YYYY/MM/DD); defaults to today.")
	cmd.Flags().StringVar(&ro.DueDate, "due", "", "BS due date this payment settles.")
	cmd.Flags().StringVar(&ro.Method, "method", "", "Payment method.")
	cmd.Flags().StringVar(&ro.Notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringVar(&ro.Provider, "provider", "", "Provider, for the export.")
	cmd.Flags().StringVar(&ro.Reference, "reference", "", "Policy or reference number, for the export.")

	topLevel.AddCommand(cmd)
}
