/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// ls.go implements the "interactions ls" command.

package cmd

import (
	"fmt"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/internal/format"
	"github.com/jpl-au/interactions/internal/glob"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [pattern]",
		Short: "List available interactions",
		Long: `List the interactions discovered in the configured extension directories.

  interactions ls                 # all ids
  interactions ls '*Input'        # glob, case-insensitive
  interactions ls 'Code*,Logic*'  # several patterns
  interactions ls -l              # with display mode and dependencies`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLs,
	}
	c.Flags().BoolP("long", "l", false, "Show display mode, terminal flag and dependencies")
	return c
}

func runLs(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool("long")
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	var err error
	defer func() {
		log.Event("cli:ls", "list").Author(Author()).Detail("pattern", pattern).Write(err)
	}()

	ids, err := Registry().IDs()
	if err != nil {
		return PrintJSONError(fmt.Errorf("ls: %w", err))
	}
	ids, err = glob.Filter(pattern, ids)
	if err != nil {
		return PrintJSONError(fmt.Errorf("ls: invalid pattern %q: %w", pattern, err))
	}

	if !long {
		if JSON() {
			if ids == nil {
				ids = []string{}
			}
			return PrintJSON(ids)
		}
		format.List(Out(), ids)
		return nil
	}

	matched := make([]interaction.Interaction, 0, len(ids))
	for _, id := range ids {
		i, getErr := Registry().Get(id)
		if getErr != nil {
			err = getErr
			return PrintJSONError(fmt.Errorf("ls: %w", err))
		}
		matched = append(matched, i)
	}

	if JSON() {
		summaries := make([]format.Summary, 0, len(matched))
		for _, i := range matched {
			summaries = append(summaries, format.Summarise(i, false))
		}
		return PrintJSON(summaries)
	}
	return format.Long(Out(), matched)
}

func init() {
	rootCmd.AddCommand(newLsCmd())
}
