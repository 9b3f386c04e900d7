package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/rollcall/internal/display"
	"github.com/grovetools/rollcall/internal/session"
	"github.com/spf13/cobra"
)

func newSessionsCmd() *cobra.Command {
	var jsonOutput bool
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "sessions [flags]",
		Short: "List stored ledger sessions",
		Long:  "List stored ledger sessions, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewStore()
			if err != nil {
				return err
			}
			infos, err := store.Scan()
			if err != nil {
				return fmt.Errorf("failed to scan for sessions: %w", err)
			}

			if nameFilter != "" {
				var filtered []session.Info
				for _, info := range infos {
					if strings.Contains(strings.ToLower(info.Name), strings.ToLower(nameFilter)) {
						filtered = append(filtered, info)
					}
				}
				infos = filtered
			}

			if len(infos) == 0 {
				if nameFilter != "" {
					fmt.Printf("No sessions found matching '%s'\n", nameFilter)
				} else {
					fmt.Println("No sessions found. Run 'rollcall scan' to start one.")
				}
				return nil
			}

			if jsonOutput {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal sessions to JSON: %w", err)
				}
				fmt.Println(string(data))
			} else {
				display.PrintSessionsTable(infos, os.Stdout)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVarP(&nameFilter, "name", "n", "", "Filter sessions by name (case-insensitive substring match)")

	return cmd
}
