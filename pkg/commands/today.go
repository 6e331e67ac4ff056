package commands

import (
	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/calendar"
	"github.com/santoshphuyala/sambat/pkg/printers"
)

func addToday(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today in both calendars",
		Example: `
sambat today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := calendar.NewAdapter()
			today, err := cal.Today()
			if err != nil {
				return oo.HandleError(err)
			}
			gregorian, err := calendar.ToGregorian(today)
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Today(today.String(), gregorian.Format("2006-01-02"))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
