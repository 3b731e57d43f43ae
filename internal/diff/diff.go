// Package diff compares interaction HTML bodies, typically the embedded
// built-in asset against an override under the configured extensions root.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// Equal runs longer than 2*contextLines are collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain diff text
}

// Changed reports whether the two sides differ.
func (r Result) Changed() bool {
	for _, line := range strings.Split(r.Diff, "\n") {
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "+ ") {
			return true
		}
	}
	return false
}

// Compute returns a line-oriented diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	// Diff whole lines so markup changes show as replaced lines rather than
	// character fragments.
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	return Result{
		Old:  oldLabel,
		New:  newLabel,
		Diff: format(d),
	}
}

// Write writes the formatted result to w.
func Write(w io.Writer, r Result, colour bool) error {
	_, err := fmt.Fprint(w, r.Format(colour))
	return err
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writePrefixed(&b, "- ", lines)
		case diffmatchpatch.DiffInsert:
			writePrefixed(&b, "+ ", lines)
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				writePrefixed(&b, "  ", lines[:contextLines])
				b.WriteString("  ...\n")
				writePrefixed(&b, "  ", lines[len(lines)-contextLines:])
			} else {
				writePrefixed(&b, "  ", lines)
			}
		}
	}
	return b.String()
}

func writePrefixed(b *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		b.WriteString(prefix + l + "\n")
	}
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
