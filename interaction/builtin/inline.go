// inline.go declares the interactions rendered inside the conversation.

package builtin

import "github.com/jpl-au/interactions/interaction"

func init() {
	interaction.Register("Continue", newContinue)
	interaction.Register("EndExploration", newEndExploration)
	interaction.Register("MultipleChoiceInput", newMultipleChoiceInput)
	interaction.Register("NumericInput", newNumericInput)
	interaction.Register("TextInput", newTextInput)
	interaction.Register("SetInput", newSetInput)
}

var (
	_ interaction.Interaction = (*Continue)(nil)
	_ interaction.Interaction = (*EndExploration)(nil)
	_ interaction.Interaction = (*MultipleChoiceInput)(nil)
	_ interaction.Interaction = (*NumericInput)(nil)
	_ interaction.Interaction = (*TextInput)(nil)
	_ interaction.Interaction = (*SetInput)(nil)
)

// Continue is a single button that moves the learner on.
type Continue struct{ interaction.Base }

func newContinue() interaction.Interaction {
	return &Continue{interaction.Base{Def: interaction.Definition{
		Name:        "Continue Button",
		Category:    categoryBasic,
		Description: "A simple 'go to next state' button.",
		DisplayMode: interaction.DisplayInline,
	}}}
}

// EndExploration ends the exploration. It is the only terminal type.
type EndExploration struct{ interaction.Base }

func newEndExploration() interaction.Interaction {
	return &EndExploration{interaction.Base{Def: interaction.Definition{
		Name:        "End Exploration",
		Category:    categoryBasic,
		Description: "Ends the exploration and suggests related explorations.",
		DisplayMode: interaction.DisplayInline,
		IsTerminal:  true,
	}}}
}

// MultipleChoiceInput lets the learner pick one of several options.
type MultipleChoiceInput struct{ interaction.Base }

func newMultipleChoiceInput() interaction.Interaction {
	return &MultipleChoiceInput{interaction.Base{Def: interaction.Definition{
		Name:        "Multiple Choice",
		Category:    categoryBasic,
		Description: "Allows learners to select one of a list of multiple-choice options.",
		DisplayMode: interaction.DisplayInline,
	}}}
}

// NumericInput accepts a real number.
type NumericInput struct{ interaction.Base }

func newNumericInput() interaction.Interaction {
	return &NumericInput{interaction.Base{Def: interaction.Definition{
		Name:        "Number Input",
		Category:    categoryMaths,
		Description: "Allows learners to enter integers and floating point numbers.",
		DisplayMode: interaction.DisplayInline,
	}}}
}

// TextInput accepts free-form text on one or more rows.
type TextInput struct{ interaction.Base }

func newTextInput() interaction.Interaction {
	return &TextInput{interaction.Base{Def: interaction.Definition{
		Name:        "Text Input",
		Category:    categoryBasic,
		Description: "Allows learners to enter arbitrary text strings.",
		DisplayMode: interaction.DisplayInline,
	}}}
}

// SetInput accepts an unordered collection of strings.
type SetInput struct{ interaction.Base }

func newSetInput() interaction.Interaction {
	return &SetInput{interaction.Base{Def: interaction.Definition{
		Name:        "Set Input",
		Category:    categoryMaths,
		Description: "Allows learners to enter an unordered set of strings.",
		DisplayMode: interaction.DisplayInline,
	}}}
}
