package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/domain"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to one of the stores",
		Example: `
sambat add bill Electricity --amount 1450 --due 2083/06/01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBill(cmd)
	addInsurancePolicy(cmd)
	addSubscription(cmd)
	addRecurring(cmd)
	addNote(cmd)
	addVehicle(cmd)
	addMedicine(cmd)

	topLevel.AddCommand(cmd)
}

func amountArg(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad amount %q: %w", raw, err)
	}
	return amount, nil
}

func addBill(parent *cobra.Command) {
	var amount, currency, due, category string
	cmd := &cobra.Command{
		Use:   "bill <name>",
		Short: "Add a bill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amountArg(amount)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			b := domain.BillRecord{
				Name:     strings.Join(args, " "),
				Category: category,
				Amount:   a,
				Currency: currency,
				DueDate:  due,
			}
			id, err := s.Bills.Add(&b)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "0", "Amount due.")
	cmd.Flags().StringVar(&currency, "currency", "NPR", "Currency code.")
	cmd.Flags().StringVar(&due, "due", "", "BS due date (YYYY/MM/DD).")
	cmd.Flags().StringVar(&category, "category", "", "Bill category.")
	parent.AddCommand(cmd)
}

func addInsurancePolicy(parent *cobra.Command) {
	var premium, currency, expiry, provider, number string
	cmd := &cobra.Command{
		Use:   "insurance <name>",
		Short: "Add an insurance policy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amountArg(premium)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			p := domain.InsurancePolicy{
				Name:         strings.Join(args, " "),
				Provider:     provider,
				PolicyNumber: number,
				Premium:      a,
				Currency:     currency,
				ExpiryDate:   expiry,
				Status:       "active",
			}
			id, err := s.Insurance.Add(&p)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&premium, "premium", "0", "Premium amount.")
	cmd.Flags().StringVar(&currency, "currency", "NPR", "Currency code.")
	cmd.Flags().StringVar(&expiry, "expires", "", "BS expiry date (YYYY/MM/DD).")
	cmd.Flags().StringVar(&provider, "provider", "", "Insurer.")
	cmd.Flags().StringVar(&number, "policy", "", "Policy number.")
	parent.AddCommand(cmd)
}

func addSubscription(parent *cobra.Command) {
	var fee, currency, renew, provider string
	cmd := &cobra.Command{
		Use:   "subscription <name>",
		Short: "Add a subscription",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amountArg(fee)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			sub := domain.SubscriptionRecord{
				Name:      strings.Join(args, " "),
				Provider:  provider,
				Fee:       a,
				Currency:  currency,
				RenewDate: renew,
				Active:    true,
			}
			id, err := s.Subscriptions.Add(&sub)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&fee, "fee", "0", "Renewal fee.")
	cmd.Flags().StringVar(&currency, "currency", "NPR", "Currency code.")
	cmd.Flags().StringVar(&renew, "renews", "", "BS renewal date (YYYY/MM/DD).")
	cmd.Flags().StringVar(&provider, "provider", "", "Service provider.")
	parent.AddCommand(cmd)
}

func addRecurring(parent *cobra.Command) {
	var amount, currency, due string
	cmd := &cobra.Command{
		Use:   "recurring <name>",
		Short: "Add a recurring payment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amountArg(amount)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			r := domain.RecurringPayment{
				Name:        strings.Join(args, " "),
				Amount:      a,
				Currency:    currency,
				NextDueDate: due,
				Active:      true,
			}
			id, err := s.Recurring.Add(&r)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "0", "Amount per cycle.")
	cmd.Flags().StringVar(&currency, "currency", "NPR", "Currency code.")
	cmd.Flags().StringVar(&due, "due", "", "Next BS due date (YYYY/MM/DD).")
	parent.AddCommand(cmd)
}

func addNote(parent *cobra.Command) {
	var on, body string
	cmd := &cobra.Command{
		Use:   "note <title>",
		Short: "Add a reminder note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			n := domain.ReminderNote{
				Title:      strings.Join(args, " "),
				Body:       body,
				RemindDate: on,
			}
			id, err := s.Notes.Add(&n)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&on, "on", "", "BS date to remind on (YYYY/MM/DD).")
	cmd.Flags().StringVar(&body, "body", "", "Note body.")
	parent.AddCommand(cmd)
}

func addVehicle(parent *cobra.Command) {
	var plate, insurance, registration string
	cmd := &cobra.Command{
		Use:   "vehicle <name>",
		Short: "Add a vehicle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			v := domain.VehicleRecord{
				Name:               strings.Join(args, " "),
				PlateNumber:        plate,
				InsuranceExpiry:    insurance,
				RegistrationExpiry: registration,
			}
			id, err := s.Vehicles.Add(&v)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().StringVar(&plate, "plate", "", "Plate number.")
	cmd.Flags().StringVar(&insurance, "insurance", "", "BS insurance expiry (YYYY/MM/DD).")
	cmd.Flags().StringVar(&registration, "registration", "", "BS registration expiry (YYYY/MM/DD).")
	parent.AddCommand(cmd)
}

func addMedicine(parent *cobra.Command) {
	var quantity int
	var expires string
	cmd := &cobra.Command{
		Use:   "medicine <name>",
		Short: "Add a medicine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			m := domain.MedicineRecord{
				Name:       strings.Join(args, " "),
				Quantity:   quantity,
				ExpiryDate: expires,
			}
			id, err := s.Medicines.Add(&m)
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Println(id)
			return nil
		},
	}
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Units on hand.")
	cmd.Flags().StringVar(&expires, "expires", "", "BS expiry date (YYYY/MM/DD).")
	parent.AddCommand(cmd)
}
