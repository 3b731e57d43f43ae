/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// guide.go implements the "interactions guide" command.
//
// Guides are embedded in the binary. Terminal output gets glamour rendering;
// pipe/redirect gets raw markdown.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/interactions/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the usage guide",
		Long: `Outputs the interactions guide for LLMs and humans.

  interactions guide              # main guide
  interactions guide extensions   # writing a custom extensions root
  interactions guide mcp          # MCP tools and resources`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if JSON() {
				return PrintJSON(map[string]string{"topic": name, "content": content})
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(Out(), content)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newGuideCmd())
}
