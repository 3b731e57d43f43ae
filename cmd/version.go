/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// version.go implements the version command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, git commit, Go version, platform and the number of compiled-in interaction types.`,
		Run: func(_ *cobra.Command, _ []string) {
			info := version.Get(len(interaction.Registered()))
			if JSON() {
				_ = PrintJSON(info)
				return
			}
			fmt.Fprint(Out(), info.String())
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
