/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// log.go implements the "interactions log" command for reading the audit log.

package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show the most recent audit log entries, newest first.

The log lives at ~/.interactions/log/interactions-log.db.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP("limit", "n", 20, "Number of entries to show")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt("limit")
	if limit < 1 {
		return PrintJSONError(fmt.Errorf("log: limit must be positive, got %d", limit))
	}

	entries, err := log.Recent(limit)
	if err != nil {
		return PrintJSONError(fmt.Errorf("log: %w", err))
	}

	if JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return PrintJSON(entries)
	}

	tw := tabwriter.NewWriter(Out(), 0, 4, 2, ' ', 0)
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "error: " + e.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			time.Unix(e.Start, 0).Format(time.DateTime), e.Source, e.Action, e.Target, status)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(newLogCmd())
}
