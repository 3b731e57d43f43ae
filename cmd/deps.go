/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// deps.go implements the "interactions deps" command.

package cmd

import (
	"fmt"
	"strings"

	"github.com/jpl-au/interactions/internal/format"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <id>...",
		Short: "List the frontend dependencies of interactions",
		Long: `Print the deduplicated frontend dependency ids needed to render the
given interactions, one per line.

  interactions deps CodeRepl LogicProof`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDeps,
	}
}

func runDeps(_ *cobra.Command, args []string) error {
	deps, err := Registry().DependencyIDs(args)
	log.Event("cli:deps", "read").Author(Author()).Target(strings.Join(args, ",")).Detail("count", len(deps)).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("deps: %w", err))
	}

	if JSON() {
		if deps == nil {
			deps = []string{}
		}
		return PrintJSON(deps)
	}
	format.List(Out(), deps)
	return nil
}

func init() {
	rootCmd.AddCommand(newDepsCmd())
}
