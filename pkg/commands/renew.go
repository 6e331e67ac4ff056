package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/app"
	"github.com/santoshphuyala/sambat/pkg/domain"
	"github.com/santoshphuyala/sambat/pkg/ledger"
)

func addRenew(topLevel *cobra.Command) {
	ro := &recordOptions{}

	cmd := &cobra.Command{
		Use:   "renew <kind> <id>",
		Short: "Settle an obligation and push the due date forward",
		Long: `Record the payment, emit a confirmation reminder, and update the
record's due date when --due is given. Kinds: insurance, bill,
subscription, recurring, vehicle, medicine-expiry.`,
		Example: `
sambat renew insurance 2ac9... --amount 5000 --due 2083/05/10
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			amount, err := decimal.NewFromString(ro.Amount)
			if err != nil {
				return oo.HandleError(fmt.Errorf("bad --amount %q: %w", ro.Amount, err))
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			name, err := settle(s, kind, args[1], ro.DueDate)
			if err != nil {
				return oo.HandleError(err)
			}
			if ro.Name != "" {
				name = ro.Name
			}

			meta := map[string]string{}
			if ro.Provider != "" {
				meta["provider"] = ro.Provider
			}
			if ro.Reference != "" {
				meta["reference"] = ro.Reference
			}
			rec, err := s.Ledger.NotifyRenewal(cmd.Context(), ledger.Renewal{
				Kind:          kind,
				ItemID:        args[1],
				DisplayName:   name,
				NewDueDate:    ro.DueDate,
				Amount:        amount,
				Currency:      ro.Currency,
				PaymentMethod: ro.Method,
				Notes:         ro.Notes,
				Meta:          meta,
			})
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("recorded %s\n", rec.LedgerID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ro.Name, "name", "", "Display name override.")
	cmd.Flags().StringVar(&ro.Amount, "amount", "0", "Amount paid.")
	cmd.Flags().StringVar(&ro.Currency, "currency", "NPR", "Currency code.")
	cmd.Flags().StringVar(&ro.DueDate, "due", "", "New BS due date (YYYY/MM/DD).")
	cmd.Flags().StringVar(&ro.Method, "method", "", "Payment method.")
	cmd.Flags().StringVar(&ro.Notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringVar(&ro.Provider, "provider", "", "Provider, for the export.")
	cmd.Flags().StringVar(&ro.Reference, "reference", "", "Policy or reference number, for the export.")

	topLevel.AddCommand(cmd)
}

// settle looks up the record's display name and, when a new due date is
// given, writes it back so the next scan works from the renewed date.
func settle(s *app.Service, kind domain.Kind, id, newDue string) (string, error) {
	switch kind {
	case domain.Insurance:
		p, err := s.Insurance.Get(id)
		if err != nil {
			return "", err
		}
		if newDue != "" {
			p.ExpiryDate = newDue
			if err := s.Insurance.Update(&p); err != nil {
				return "", err
			}
		}
		return p.Name, nil
	case domain.Bill:
		b, err := s.Bills.Get(id)
		if err != nil {
			return "", err
		}
		if newDue != "" {
			b.DueDate = newDue
		} else {
			b.Paid = true
		}
		if err := s.Bills.Update(&b); err != nil {
			return "", err
		}
		return b.Name, nil
	case domain.Subscription:
		sub, err := s.Subscriptions.Get(id)
		if err != nil {
			return "", err
		}
		if newDue != "" {
			sub.RenewDate = newDue
			if err := s.Subscriptions.Update(&sub); err != nil {
				return "", err
			}
		}
		return sub.Name, nil
	case domain.Recurring:
		r, err := s.Recurring.Get(id)
		if err != nil {
			return "", err
		}
		if newDue != "" {
			r.NextDueDate = newDue
			if err := s.Recurring.Update(&r); err != nil {
				return "", err
			}
		}
		return r.Name, nil
	case domain.Vehicle:
		v, err := s.Vehicles.Get(id)
		if err != nil {
			return "", err
		}
		return v.Name, nil
	case domain.MedicineStock, domain.MedicineExpiry:
		m, err := s.Medicines.Get(id)
		if err != nil {
			return "", err
		}
		if newDue != "" && kind == domain.MedicineExpiry {
			m.ExpiryDate = newDue
			if err := s.Medicines.Update(&m); err != nil {
				return "", err
			}
		}
		return m.Name, nil
	case domain.Note:
		n, err := s.Notes.Get(id)
		if err != nil {
			return "", err
		}
		return n.Title, nil
	}
	return "", fmt.Errorf("cannot settle kind %s", kind)
}
