/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE builds the registry lazily: commands that only touch
// configuration, the guide or the audit log run without scanning the
// extension directories, so a broken extensions root can still be fixed with
// "interactions config".

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

// noRegistryCommands lists commands that skip registry initialisation.
var noRegistryCommands = map[string]bool{
	"config":     true,
	"guide":      true,
	"log":        true,
	"version":    true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Registry of answer-input interaction types",
	Long: `Discover, inspect and serve the interaction types (answer-input widgets)
available to an exploration player: their HTML templates, frontend
dependencies and display configuration.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if author == "" {
			author = detectAuthor()
		}

		if noRegistryCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initRegistry(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise registry: %w", err)
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command and closes the log before exit.
// Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
