package commands

import (
	"github.com/spf13/cobra"

	"github.com/santoshphuyala/sambat/pkg/printers"
)

func addInbox(topLevel *cobra.Command) {
	var all bool
	var identities bool

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show the notification center",
		Example: `
sambat inbox
sambat inbox --all --identities
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			items, err := s.Inbox.Items(!all)
			if err != nil {
				return oo.HandleError(err)
			}
			unread, err := s.Inbox.Unread()
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowIdentity: identities}
			pp.Title("Notification Center")
			pp.Badge(unread)
			pp.Inbox(items)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include read reminders.")
	cmd.Flags().BoolVar(&identities, "identities", false, "Show reminder identities (for dismiss/snooze).")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the notification center",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(s.Inbox.Clear())
		},
	}
	cmd.AddCommand(clear)

	topLevel.AddCommand(cmd)
}

func addRead(topLevel *cobra.Command) {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [identity]",
		Short: "Mark reminders read",
		Example: `
sambat read "bill:7f3c:5"
sambat read --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			if all {
				return oo.HandleError(s.Inbox.MarkAllRead())
			}
			if len(args) != 1 {
				return cmd.Help()
			}
			return oo.HandleError(s.Inbox.MarkRead(args[0]))
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Mark every reminder read.")

	topLevel.AddCommand(cmd)
}
