// Package glob matches interaction ids against shell-style patterns.
//
// Patterns use path.Match syntax (*, ?, [...]). A pattern may list several
// alternatives separated by commas ("Code*,Logic*"). Matching ignores case
// so "*input" selects NumericInput and TextInput alike.
package glob

import (
	"path"
	"strings"
)

// Match reports whether id matches pattern. Returns an error if any
// alternative in pattern is malformed.
func Match(pattern, id string) (bool, error) {
	id = strings.ToLower(id)
	for _, alt := range strings.Split(pattern, ",") {
		alt = strings.ToLower(strings.TrimSpace(alt))
		if alt == "" {
			continue
		}
		ok, err := path.Match(alt, id)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the ids matching pattern, preserving order. An empty
// pattern matches everything.
func Filter(pattern string, ids []string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		return ids, nil
	}
	var out []string
	for _, id := range ids {
		ok, err := Match(pattern, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}
