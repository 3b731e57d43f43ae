/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// show.go implements the "interactions show" command.
//
// Terminal output is rendered with glamour; pipe/redirect gets the raw
// markdown description.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/interactions/internal/format"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newShowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Describe an interaction",
		Long:  `Show an interaction's attributes, dependencies and HTML body.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	c.Flags().Bool("raw", false, "Output raw markdown without rendering")
	return c
}

func runShow(c *cobra.Command, args []string) error {
	raw, _ := c.Flags().GetBool("raw")
	id := args[0]

	i, err := Registry().Get(id)
	log.Event("cli:show", "read").Author(Author()).Target(id).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("show: %w", err))
	}

	if JSON() {
		return PrintJSON(format.Summarise(i, true))
	}

	md := format.Markdown(i)
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(md, "dark")
		if err == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}
	fmt.Fprint(Out(), md)
	return nil
}

func init() {
	rootCmd.AddCommand(newShowCmd())
}
