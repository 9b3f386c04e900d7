package cmd

import (
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/internal/session"
	"github.com/spf13/cobra"
)

var ulogClear = grovelogging.NewUnifiedLogger("rollcall.cmd.clear")

func newClearCmd() *cobra.Command {
	var sessionName string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop all attendance entries of a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			ledger, err := store.Load(sessionName)
			if err != nil {
				return err
			}

			dropped := ledger.Len()
			ledger.Clear()
			if err := store.Save(sessionName, ledger); err != nil {
				return err
			}

			ulogClear.Info("Cleared session").
				Field("session", sessionName).
				Field("dropped", dropped).
				Pretty(fmt.Sprintf("Cleared %d attendees from session '%s'.\n", dropped, sessionName)).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionName, "session", "s", session.DefaultName, "Ledger session to clear")

	return cmd
}
