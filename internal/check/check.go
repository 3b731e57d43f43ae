// Package check verifies that a configuration of allowed interactions is
// consistent with what the registry discovers: every allowed interaction has
// its asset in its directory and a registered type, nothing is lost or
// gained by discovery, and the display configuration is well formed.
package check

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/internal/config"
)

// ErrFailed is returned by Run when at least one problem was found.
var ErrFailed = errors.New("check failed")

// Report holds the outcome of a check.
type Report struct {
	Allowed    int      `json:"allowed"`
	Discovered int      `json:"discovered"`
	Terminal   int      `json:"terminal"`
	Problems   []string `json:"problems,omitempty"`
}

// OK reports whether no problems were found.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

func (r *Report) problem(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// Run checks allowed against the assets in fsys and the interactions reg
// discovers. It returns the report and ErrFailed if the report has problems;
// any other error means the registry could not be populated.
func Run(fsys fs.FS, allowed []config.Allowed, reg *interaction.Registry) (*Report, error) {
	r := &Report{Allowed: len(allowed)}

	for _, a := range allowed {
		asset := path.Join(a.Dir, a.ID+".html")
		if _, err := fs.Stat(fsys, asset); err != nil {
			r.problem("%s: asset %s missing", a.ID, asset)
		}
		if !interaction.IsRegistered(a.ID) {
			r.problem("%s: no interaction type registered", a.ID)
		}
	}

	configs, err := reg.Configs()
	if err != nil {
		return nil, err
	}
	r.Discovered = len(configs)
	if r.Discovered != r.Allowed {
		r.problem("discovered %d interactions, %d allowed", r.Discovered, r.Allowed)
	}

	for id, c := range configs {
		if !c.DisplayMode.Valid() {
			r.problem("%s: display mode %q not in %v", id, c.DisplayMode, interaction.AllowedDisplayModes)
		}
		if c.IsTerminal {
			r.Terminal++
		}
	}
	if r.Terminal == 0 {
		r.problem("no terminal interaction")
	}

	if !r.OK() {
		return r, ErrFailed
	}
	return r, nil
}

// Write prints the report in plain text.
func Write(w io.Writer, r *Report) {
	fmt.Fprintf(w, "allowed:    %d\n", r.Allowed)
	fmt.Fprintf(w, "discovered: %d\n", r.Discovered)
	fmt.Fprintf(w, "terminal:   %d\n", r.Terminal)
	if r.OK() {
		fmt.Fprintln(w, "ok")
		return
	}
	for _, p := range r.Problems {
		fmt.Fprintf(w, "problem: %s\n", p)
	}
}
