package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/ledger"
	"github.com/santoshphuyala/sambat/pkg/printers"
)

func addHistory(topLevel *cobra.Command) {
	var source string
	var csvPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the payment history",
		Example: `
sambat history
sambat history --source insurance
sambat history --csv payments.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			var filter ledger.Filter
			if source != "" {
				filter = ledger.BySource(source)
			}
			records, err := s.Ledger.History(cmd.Context(), filter)
			if err != nil {
				return oo.HandleError(err)
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return oo.HandleError(err)
				}
				defer f.Close()
				if err := ledger.ExportCSV(f, records); err != nil {
					return oo.HandleError(err)
				}
				fmt.Printf("wrote %d record(s) to %s\n", len(records), csvPath)
				return nil
			}

			pp := printers.PrettyPrint{}
			pp.Title("Payment History")
			pp.History(records)
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "Only one ledger source.")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Export to a CSV file instead of printing.")

	del := &cobra.Command{
		Use:   "delete <ledger-id>",
		Short: "Delete one history record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(s.Ledger.Delete(args[0]))
		},
	}
	cmd.AddCommand(del)

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole history",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(s.Ledger.Clear(cmd.Context()))
		},
	}
	cmd.AddCommand(clear)

	topLevel.AddCommand(cmd)
}
