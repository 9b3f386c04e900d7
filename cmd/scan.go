package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/config"
	"github.com/grovetools/rollcall/internal/capture"
	"github.com/grovetools/rollcall/internal/display"
	"github.com/grovetools/rollcall/internal/extract"
	"github.com/grovetools/rollcall/internal/roster"
	"github.com/grovetools/rollcall/internal/session"
	"github.com/spf13/cobra"
)

var ulogScan = grovelogging.NewUnifiedLogger("rollcall.cmd.scan")

func newScanCmd() *cobra.Command {
	var sessionName string

	cmd := &cobra.Command{
		Use:   "scan [image-file]",
		Short: "Capture a participant panel and merge attendees into the session ledger",
		Long: "Capture a participant panel and merge the extracted attendee names into the session ledger.\n" +
			"Without arguments an interactive region grab is started; pass an image file to use an\n" +
			"existing screenshot, or '-' to read PNG bytes from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			var src capture.Source
			switch {
			case len(args) == 1 && args[0] == "-":
				src = capture.StdinSource{}
			case len(args) == 1:
				src = capture.FileSource{Path: args[0]}
			default:
				src = capture.ScreenSource{}
			}

			img, err := src.Capture(cmd.Context())
			if errors.Is(err, capture.ErrCanceled) {
				ulogScan.Info("Capture canceled").
					Pretty("Capture canceled.\n").
					PrettyOnly().
					Emit()
				return nil
			}
			if err != nil {
				return err
			}

			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			ulogScan.Info("Analyzing image").
				Field("engine", engine.Name()).
				Field("image_bytes", len(img)).
				Pretty(display.Muted(fmt.Sprintf("Analyzing image with %s...\n", engine.Name()))).
				PrettyOnly().
				Emit()

			res, err := engine.Extract(cmd.Context(), extract.Input{
				Image:     img,
				Format:    extract.ImageFormatPNG,
				Languages: cfg.Extract.Languages,
			})
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			names := roster.Normalize(res.RawText, normalizeOptions(cfg))
			if len(names) == 0 {
				ulogScan.Info("No attendee names detected").
					Field("session", sessionName).
					Pretty(display.Warn("No attendee names detected. Adjust the captured region and try again.\n")).
					PrettyOnly().
					Emit()
				return nil
			}

			store, err := session.NewStore()
			if err != nil {
				return err
			}
			ledger, err := store.Load(sessionName)
			if err != nil {
				return err
			}

			now := time.Now()
			newCount := ledger.Merge(names, now)
			if err := store.Save(sessionName, ledger); err != nil {
				return err
			}

			display.PrintAttendanceTable(roster.BuildReport(ledger), os.Stdout)

			ulogScan.Info("Merged submission").
				Field("session", sessionName).
				Field("detected", len(names)).
				Field("new", newCount).
				Field("total", ledger.Len()).
				Pretty(display.Success(fmt.Sprintf("\nDetected %d attendees (%d new) at %s — session '%s' now has %d.\n",
					len(names), newCount, now.Format(roster.TimeLayout), sessionName, ledger.Len()))).
				PrettyOnly().
				Emit()

			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionName, "session", "s", session.DefaultName, "Ledger session to merge into")

	return cmd
}
