package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/internal/display"
	"github.com/grovetools/rollcall/internal/roster"
	"github.com/grovetools/rollcall/internal/session"
	"github.com/spf13/cobra"
)

var ulogShow = grovelogging.NewUnifiedLogger("rollcall.cmd.show")

func newShowCmd() *cobra.Command {
	var sessionName string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the attendance report for a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			ledger, err := store.Load(sessionName)
			if err != nil {
				return err
			}

			rows := roster.BuildReport(ledger)

			if jsonOutput {
				data, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal report: %w", err)
				}
				ulogShow.Info("Attendance report").
					Field("session", sessionName).
					Field("attendees", len(rows)).
					Pretty(string(data)).
					PrettyOnly().
					Emit()
				return nil
			}

			if len(rows) == 0 {
				fmt.Printf("Session '%s' has no attendance records yet.\n", sessionName)
				return nil
			}

			display.PrintAttendanceTable(rows, os.Stdout)
			fmt.Printf("\nAttendees: %d\n", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionName, "session", "s", session.DefaultName, "Ledger session to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
