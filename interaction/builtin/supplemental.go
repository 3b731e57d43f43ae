// supplemental.go declares the interactions rendered in a side panel. Most
// of them pull in a frontend library.

package builtin

import "github.com/jpl-au/interactions/interaction"

func init() {
	interaction.Register("CodeRepl", newCodeRepl)
	interaction.Register("LogicProof", newLogicProof)
	interaction.Register("GraphInput", newGraphInput)
	interaction.Register("ImageClickInput", newImageClickInput)
	interaction.Register("InteractiveMap", newInteractiveMap)
	interaction.Register("MusicNotesInput", newMusicNotesInput)
}

var (
	_ interaction.Interaction = (*CodeRepl)(nil)
	_ interaction.Interaction = (*LogicProof)(nil)
	_ interaction.Interaction = (*GraphInput)(nil)
	_ interaction.Interaction = (*ImageClickInput)(nil)
	_ interaction.Interaction = (*InteractiveMap)(nil)
	_ interaction.Interaction = (*MusicNotesInput)(nil)
)

// CodeRepl is a code editor with an in-browser interpreter.
type CodeRepl struct{ interaction.Base }

func newCodeRepl() interaction.Interaction {
	return &CodeRepl{interaction.Base{Def: interaction.Definition{
		Name:          "Code REPL",
		Category:      categoryProgramming,
		Description:   "Allows learners to enter code and get it evaluated.",
		DisplayMode:   interaction.DisplaySupplemental,
		DependencyIDs: []string{"jsrepl", "codemirror"},
	}}}
}

// LogicProof checks a proof written in first-order logic.
type LogicProof struct{ interaction.Base }

func newLogicProof() interaction.Interaction {
	return &LogicProof{interaction.Base{Def: interaction.Definition{
		Name:          "Logic Proof",
		Category:      categoryMaths,
		Description:   "Allows learners to write proofs for simple logical statements.",
		DisplayMode:   interaction.DisplaySupplemental,
		DependencyIDs: []string{"logic_proof", "codemirror"},
	}}}
}

// GraphInput lets the learner draw a graph of vertices and edges.
type GraphInput struct{ interaction.Base }

func newGraphInput() interaction.Interaction {
	return &GraphInput{interaction.Base{Def: interaction.Definition{
		Name:        "Graph Theory",
		Category:    categoryMaths,
		Description: "Allows learners to create and manipulate graphs.",
		DisplayMode: interaction.DisplaySupplemental,
	}}}
}

// ImageClickInput records which region of an image was clicked.
type ImageClickInput struct{ interaction.Base }

func newImageClickInput() interaction.Interaction {
	return &ImageClickInput{interaction.Base{Def: interaction.Definition{
		Name:        "Image Region",
		Category:    categoryGraphics,
		Description: "Allows learners to click on regions of an image.",
		DisplayMode: interaction.DisplaySupplemental,
	}}}
}

// InteractiveMap records a position clicked on a world map.
type InteractiveMap struct{ interaction.Base }

func newInteractiveMap() interaction.Interaction {
	return &InteractiveMap{interaction.Base{Def: interaction.Definition{
		Name:          "World Map",
		Category:      categoryGeography,
		Description:   "Allows learners to specify a position on a world map.",
		DisplayMode:   interaction.DisplaySupplemental,
		DependencyIDs: []string{"google_maps"},
	}}}
}

// MusicNotesInput accepts a sequence of notes on a staff.
type MusicNotesInput struct{ interaction.Base }

func newMusicNotesInput() interaction.Interaction {
	return &MusicNotesInput{interaction.Base{Def: interaction.Definition{
		Name:          "Music Notes Input",
		Category:      categoryMusic,
		Description:   "Allows learners to drag and drop notes onto the lines of a music staff.",
		DisplayMode:   interaction.DisplaySupplemental,
		DependencyIDs: []string{"midijs"},
	}}}
}
