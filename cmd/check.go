/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// check.go implements the "interactions check" command.

package cmd

import (
	"errors"
	"fmt"

	"github.com/jpl-au/interactions/internal/check"
	"github.com/jpl-au/interactions/internal/log"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the configured interactions",
		Long: `Verify that every configured interaction has its asset and a registered
type, that discovery finds exactly the configured set, that display modes
are valid and that at least one interaction is terminal.

Exits non-zero when a problem is found.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(c *cobra.Command, _ []string) error {
	r, err := check.Run(regFS, regCfg.AllowedInteractions(), Registry())
	log.Event("cli:check", "check").Author(Author()).Write(err)

	if r == nil {
		return PrintJSONError(fmt.Errorf("check: %w", err))
	}
	if JSON() {
		if printErr := PrintJSON(r); printErr != nil {
			return printErr
		}
	} else {
		check.Write(Out(), r)
	}

	if errors.Is(err, check.ErrFailed) {
		// The report already lists the problems.
		c.SilenceErrors = true
		c.SilenceUsage = true
	}
	return err
}

func init() {
	rootCmd.AddCommand(newCheckCmd())
}
