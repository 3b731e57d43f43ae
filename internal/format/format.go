// Package format provides output formatting utilities for CLI display.
//
// Commands hand query results to these helpers so that column alignment and
// markdown layout live in one place.
package format

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/jpl-au/interactions/interaction"
)

// List prints interaction ids one per line.
func List(w io.Writer, ids []string) {
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
}

// Long prints one row per interaction with its display configuration and
// dependencies.
func Long(w io.Writer, all []interaction.Interaction) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDISPLAY\tTERMINAL\tDEPENDENCIES")
	for _, i := range all {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			i.ID(), i.DisplayMode(), yesNo(i.IsTerminal()), orDash(strings.Join(i.DependencyIDs(), ",")))
	}
	return tw.Flush()
}

// Configs prints the display configuration of each interaction, sorted by id.
func Configs(w io.Writer, configs map[string]interaction.Config) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDISPLAY\tTERMINAL")
	for _, id := range slices.Sorted(maps.Keys(configs)) {
		c := configs[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, c.DisplayMode, yesNo(c.IsTerminal))
	}
	return tw.Flush()
}

// Markdown describes a single interaction as a markdown document. The HTML
// body is included as a fenced code block.
func Markdown(i interaction.Interaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", i.Name())
	fmt.Fprintf(&b, "%s\n\n", i.Description())
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| id | `%s` |\n", i.ID())
	fmt.Fprintf(&b, "| category | %s |\n", i.Category())
	fmt.Fprintf(&b, "| display mode | %s |\n", i.DisplayMode())
	fmt.Fprintf(&b, "| terminal | %s |\n", yesNo(i.IsTerminal()))
	fmt.Fprintf(&b, "| dependencies | %s |\n", orDash(strings.Join(i.DependencyIDs(), ", ")))
	fmt.Fprintf(&b, "| directory | `%s` |\n\n", i.Dir())
	fmt.Fprintf(&b, "```html\n%s\n```\n", strings.TrimRight(i.HTMLBody(), "\n"))
	return b.String()
}

// Summary is the JSON form of a single interaction.
type Summary struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Category      string                  `json:"category"`
	Description   string                  `json:"description"`
	DisplayMode   interaction.DisplayMode `json:"display_mode"`
	IsTerminal    bool                    `json:"is_terminal"`
	DependencyIDs []string                `json:"dependency_ids"`
	Dir           string                  `json:"dir"`
	HTMLBody      string                  `json:"html_body,omitempty"`
}

// Summarise converts i to its JSON form. The HTML body is included only when
// withHTML is set.
func Summarise(i interaction.Interaction, withHTML bool) Summary {
	s := Summary{
		ID:            i.ID(),
		Name:          i.Name(),
		Category:      i.Category(),
		Description:   i.Description(),
		DisplayMode:   i.DisplayMode(),
		IsTerminal:    i.IsTerminal(),
		DependencyIDs: i.DependencyIDs(),
		Dir:           i.Dir(),
	}
	if s.DependencyIDs == nil {
		s.DependencyIDs = []string{}
	}
	if withHTML {
		s.HTMLBody = i.HTMLBody()
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
