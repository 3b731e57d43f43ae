/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// html.go implements the "interactions html" command.

package cmd

import (
	"fmt"
	"strings"

	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newHTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "html <id>...",
		Short: "Print the concatenated HTML of interactions",
		Long: `Print the HTML bodies of the given interactions in argument order,
separated by " \n". Repeated ids are repeated in the output.

  interactions html Continue TextInput > templates.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: runHTML,
	}
}

func runHTML(_ *cobra.Command, args []string) error {
	body, err := Registry().HTML(args)
	log.Event("cli:html", "read").Author(Author()).Target(strings.Join(args, ",")).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("html: %w", err))
	}

	if JSON() {
		return PrintJSON(map[string]any{"ids": args, "html": body})
	}
	fmt.Fprintln(Out(), body)
	return nil
}

func init() {
	rootCmd.AddCommand(newHTMLCmd())
}
