package commands

import (
	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/printers"
)

func addScan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run every due-date check once",
		Example: `
sambat scan
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			delivered, unread, err := s.RunAllChecks(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Delivered(delivered, unread)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
