/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// diff.go implements the "interactions diff" command, comparing an
// interaction's built-in HTML with the body the registry resolved under the
// configured extensions root.

package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/interaction/builtin"
	"github.com/jpl-au/interactions/internal/config"
	"github.com/jpl-au/interactions/internal/diff"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <id>",
		Short: "Compare an interaction with its built-in version",
		Long: `Show how an interaction's HTML under the extensions root differs from the
built-in asset of the same name.

  interactions --root ./extensions diff CodeRepl`,
		Args: cobra.ExactArgs(1),
		RunE: runDiff,
	}
	c.Flags().Bool("no-colour", false, "Disable coloured output")
	return c
}

func runDiff(c *cobra.Command, args []string) error {
	noColour, _ := c.Flags().GetBool("no-colour")
	id := args[0]

	var err error
	defer func() {
		log.Event("cli:diff", "diff").Author(Author()).Target(id).Write(err)
	}()

	builtinBody, err := builtinHTML(id)
	if err != nil {
		return PrintJSONError(fmt.Errorf("diff: %w", err))
	}
	i, err := Registry().Get(id)
	if err != nil {
		return PrintJSONError(fmt.Errorf("diff: %w", err))
	}

	r := diff.Compute(builtinBody, i.HTMLBody(), "builtin/"+id, path.Join(sourceLabel(), i.Dir(), id+".html"))

	if JSON() {
		return PrintJSON(map[string]any{
			"id":      id,
			"old":     r.Old,
			"new":     r.New,
			"changed": r.Changed(),
			"diff":    r.Diff,
		})
	}
	if !r.Changed() {
		fmt.Fprintf(Out(), "%s: identical to built-in\n", id)
		return nil
	}
	colour := !noColour && term.IsTerminal(int(os.Stdout.Fd()))
	return diff.Write(Out(), r, colour)
}

// builtinHTML reads the embedded asset of id from its default directory.
func builtinHTML(id string) (string, error) {
	for _, a := range config.DefaultAllowed {
		if a.ID != id {
			continue
		}
		data, err := fs.ReadFile(builtin.FS, path.Join(a.Dir, id+".html"))
		if err != nil {
			return "", fmt.Errorf("reading built-in %s: %w", id, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: no built-in %s", interaction.ErrNotFound, id)
}

func sourceLabel() string {
	if regRoot == "" {
		return "builtin"
	}
	return regRoot
}

func init() {
	rootCmd.AddCommand(newDiffCmd())
}
