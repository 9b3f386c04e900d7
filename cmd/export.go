package cmd

import (
	"fmt"
	"time"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/internal/display"
	"github.com/grovetools/rollcall/internal/roster"
	"github.com/grovetools/rollcall/internal/session"
	"github.com/spf13/cobra"
)

var ulogExport = grovelogging.NewUnifiedLogger("rollcall.cmd.export")

func newExportCmd() *cobra.Command {
	var sessionName string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a session's attendance report as CSV",
		Long: "Export a snapshot of the session ledger as UTF-8 CSV (with BOM for spreadsheet\n" +
			"compatibility). The ledger itself is not modified.",
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
			if len(rows) == 0 {
				ulogExport.Info("Nothing to export").
					Field("session", sessionName).
					Pretty(display.Warn(fmt.Sprintf("Session '%s' has no attendance data to export.\n", sessionName))).
					PrettyOnly().
					Emit()
				return nil
			}

			path := outPath
			if path == "" {
				path = fmt.Sprintf("rollcall_%s_%s.csv", sessionName, time.Now().Format("20060102_150405"))
			}

			if err := roster.ExportFile(path, rows); err != nil {
				return err
			}

			ulogExport.Info("Exported attendance report").
				Field("session", sessionName).
				Field("attendees", len(rows)).
				Field("path", path).
				Pretty(display.Success(fmt.Sprintf("Exported %d attendees to %s\n", len(rows), path))).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionName, "session", "s", session.DefaultName, "Ledger session to export")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (default rollcall_<session>_<timestamp>.csv)")

	return cmd
}
