/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/interactions/internal/config"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output string
	author string
	root   string
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns the author flag value.
func Author() string { return author }

// Root returns the extensions root override.
// Priority: --root flag > INTERACTIONS_ROOT env var > empty (use config).
func Root() string {
	if root != "" {
		return root
	}
	return os.Getenv("INTERACTIONS_ROOT")
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing Cobra's own error
// output), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// detectAuthor resolves the default author recorded in the audit log.
// Returns empty string when config is missing or has no author set.
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Author recorded in the audit log")
	rootCmd.PersistentFlags().StringVar(&root, "root", "", "Extensions root directory (default: embedded built-ins)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
