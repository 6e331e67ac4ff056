package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func addDismiss(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dismiss <identity>",
		Short: "Stop a reminder from firing again",
		Example: `
sambat dismiss "bill:7f3c:overdue"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(s.Dismiss.Dismiss(args[0]))
		},
	}

	topLevel.AddCommand(cmd)
}

func addSnooze(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "snooze <identity> <minutes>",
		Short: "Silence a reminder for a while",
		Long:  "Silence a reminder for the given number of minutes. Durations like 90m or 2h work too.",
		Example: `
sambat snooze "insurance:2ac9:5" 120
sambat snooze "insurance:2ac9:5" 2h
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := parseMinutes(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(s.Dismiss.Snooze(args[0], minutes))
		},
	}

	topLevel.AddCommand(cmd)
}

// parseMinutes accepts a bare minute count or a Go duration string.
func parseMinutes(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, errors.New("snooze must be a positive number of minutes")
		}
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("cannot read %q as minutes or a duration", s)
	}
	if d < time.Minute {
		return 0, errors.New("snooze must be at least one minute")
	}
	return int(d / time.Minute), nil
}
