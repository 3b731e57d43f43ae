// Package interaction provides the registry of answer-input widget types.
// Interaction types register a factory at init time, and a Registry discovers
// their HTML assets in the configured extension directories, instantiating
// each registered type once and caching it for lookup by id.
package interaction

import (
	"errors"
	"slices"
)

// ErrNotFound is returned when an interaction id is unknown even after the
// registry has been refreshed.
var ErrNotFound = errors.New("interaction not found")

// DisplayMode controls where the frontend places an interaction.
type DisplayMode string

const (
	// DisplayInline renders the interaction inside the conversation flow.
	DisplayInline DisplayMode = "inline"
	// DisplaySupplemental renders the interaction in a separate panel.
	DisplaySupplemental DisplayMode = "supplemental"
)

// AllowedDisplayModes lists every valid display mode.
var AllowedDisplayModes = []DisplayMode{DisplayInline, DisplaySupplemental}

// Valid reports whether m is one of AllowedDisplayModes.
func (m DisplayMode) Valid() bool {
	return slices.Contains(AllowedDisplayModes, m)
}

// Interaction defines the contract for interaction types.
//
// The interface carries an unexported method, so only types embedding Base
// satisfy it. Base supplies every method; embedding types only declare their
// Definition.
type Interaction interface {
	// ID returns the identifier the registry stores this interaction under.
	// It matches the name the type was registered with.
	ID() string

	// Name returns the human-readable name.
	Name() string

	// Category groups interactions in editor pickers.
	Category() string

	// Description is a one-line summary for editors.
	Description() string

	// HTMLBody returns the frontend template discovered alongside the type.
	HTMLBody() string

	// DependencyIDs returns the external frontend libraries the
	// interaction needs. The returned slice is a copy.
	DependencyIDs() []string

	// DisplayMode returns where the interaction is rendered.
	DisplayMode() DisplayMode

	// IsTerminal reports whether reaching this interaction ends the
	// exploration.
	IsTerminal() bool

	// Dir returns the extension directory the interaction was found in.
	Dir() string

	base() *Base
}

// Definition holds the static attributes an interaction type declares.
type Definition struct {
	Name          string
	Category      string
	Description   string
	DisplayMode   DisplayMode
	IsTerminal    bool
	DependencyIDs []string
}

// Base is embedded by every interaction type. The registry binds the id,
// directory and HTML body when the type is discovered.
type Base struct {
	Def Definition

	id   string
	dir  string
	html string
}

// Config is the display configuration of a single interaction.
type Config struct {
	DisplayMode DisplayMode `json:"display_mode"`
	IsTerminal  bool        `json:"is_terminal"`
}

func (b *Base) ID() string               { return b.id }
func (b *Base) Name() string             { return b.Def.Name }
func (b *Base) Category() string         { return b.Def.Category }
func (b *Base) Description() string      { return b.Def.Description }
func (b *Base) HTMLBody() string         { return b.html }
func (b *Base) DisplayMode() DisplayMode { return b.Def.DisplayMode }
func (b *Base) IsTerminal() bool         { return b.Def.IsTerminal }
func (b *Base) Dir() string              { return b.dir }

// DependencyIDs returns a copy so callers cannot mutate the cached instance.
func (b *Base) DependencyIDs() []string {
	return slices.Clone(b.Def.DependencyIDs)
}

func (b *Base) base() *Base { return b }

// bind attaches discovery results to a freshly constructed instance.
func (b *Base) bind(id, dir, html string) {
	b.id = id
	b.dir = dir
	b.html = html
}

// ConfigOf returns the display configuration of i.
func ConfigOf(i Interaction) Config {
	return Config{
		DisplayMode: i.DisplayMode(),
		IsTerminal:  i.IsTerminal(),
	}
}
