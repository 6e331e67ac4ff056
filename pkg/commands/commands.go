package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/santoshphuyala/sambat/pkg/app"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sambat",
		Short: base.Wrap80("Bikram Sambat life management: bills, policies, renewals and reminders on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addScan(topLevel)
	addWatch(topLevel)
	addInbox(topLevel)
	addRead(topLevel)
	addDismiss(topLevel)
	addSnooze(topLevel)
	addRecord(topLevel)
	addRenew(topLevel)
	addHistory(topLevel)
	addVersion(topLevel)
}

// newService builds the engine from the ambient config.
func newService() (*app.Service, error) {
	return app.New(nil)
}
