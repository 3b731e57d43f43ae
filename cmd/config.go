/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// config.go implements the "interactions config" command.
//
// Config follows a cascade model similar to git: local config
// (.interactions/config.yaml) takes precedence over global
// (~/.interactions/config.yaml). The --local flag forces the local file even
// if it doesn't exist yet.

package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jpl-au/interactions/internal/config"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  interactions config                              # show config
  interactions config extensions.root              # show one value
  interactions config extensions.root ./extensions # set a value

Configuration locations:
  Global: ~/.interactions/config.yaml
  Local:  .interactions/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.

The interactions list is edited in the file itself:

  interactions:
    - id: CodeRepl
      dir: interactions/CodeRepl`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.interactions/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("cli:config", "list").Author(Author()).Write(nil)
		if JSON() {
			return PrintJSON(all)
		}
		for _, k := range slices.Sorted(maps.Keys(all)) {
			fmt.Fprintf(Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("cli:config", "get").Author(Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newConfigCmd())
}
