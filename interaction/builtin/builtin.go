// Package builtin provides the reference interaction types and their
// frontend assets. Importing it registers every type with the interaction
// catalog:
//
//	import _ "github.com/jpl-au/interactions/interaction/builtin"
//
// FS holds the assets laid out as interactions/<Name>/<Name>.html, matching
// the directories in config.DefaultAllowed.
package builtin

import (
	"embed"
	"io/fs"
)

//go:embed interactions
var assets embed.FS

// FS is the embedded extensions root.
var FS fs.FS = assets

// Categories used by the built-in types.
const (
	categoryBasic       = "Basic Input"
	categoryProgramming = "Programming"
	categoryMaths       = "Mathematics"
	categoryGeography   = "Geography"
	categoryMusic       = "Music"
	categoryGraphics    = "Graphics"
)
