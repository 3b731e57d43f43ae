/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// configs.go implements the "interactions configs" command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/interactions/internal/format"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newConfigsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configs",
		Short: "Show the display configuration of every interaction",
		Long:  `Show each interaction's display mode and whether it ends an exploration.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigs,
	}
}

func runConfigs(_ *cobra.Command, _ []string) error {
	configs, err := Registry().Configs()
	log.Event("cli:configs", "read").Author(Author()).Detail("count", len(configs)).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("configs: %w", err))
	}

	if JSON() {
		return PrintJSON(configs)
	}
	return format.Configs(Out(), configs)
}

func init() {
	rootCmd.AddCommand(newConfigsCmd())
}
