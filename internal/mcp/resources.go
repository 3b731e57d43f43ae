// resources.go parses interaction resource URIs.
//
// URIs follow interaction://{id}. The id is the interaction's name as
// registered, so no further decoding is needed.

package mcp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyID indicates a resource URI without an interaction id.
	ErrEmptyID = errors.New("empty interaction id")
)

func parseInteractionURI(uri string) (string, error) {
	const prefix = "interaction://"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	id := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), "/")
	if id == "" {
		return "", ErrEmptyID
	}
	if strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return id, nil
}
