package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the daily scheduler in the foreground",
		Long:  "Scans immediately, then once per day at the configured hour, until interrupted.",
		Example: `
sambat watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := s.StartDaily(ctx); err != nil {
				return oo.HandleError(err)
			}
			fmt.Println("watching; next scans fire daily — ctrl-c to stop")
			<-ctx.Done()
			s.StopDaily()
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
