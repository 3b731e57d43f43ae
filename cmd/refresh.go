/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// refresh.go implements the "interactions refresh" command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rescan the extension directories",
		Long: `Rescan the configured extension directories and report what was found.
Useful to verify an extensions root after adding or removing assets.`,
		Args: cobra.NoArgs,
		RunE: runRefresh,
	}
}

func runRefresh(_ *cobra.Command, _ []string) error {
	reg := Registry()
	err := reg.Refresh()
	log.Event("cli:refresh", "refresh").Author(Author()).Detail("count", reg.Len()).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("refresh: %w", err))
	}

	if JSON() {
		return PrintJSON(map[string]any{"interactions": reg.Len(), "dirs": reg.Dirs()})
	}
	fmt.Fprintf(Out(), "refreshed %d interactions from %d directories\n", reg.Len(), len(reg.Dirs()))
	return nil
}

func init() {
	rootCmd.AddCommand(newRefreshCmd())
}
