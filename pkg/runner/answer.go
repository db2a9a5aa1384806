package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/crossroads/pkg/madlib"
)

// ErrUnrecognizedAnswer is returned by ParseAnswer for anything but yes/no.
var ErrUnrecognizedAnswer = errors.New("unrecognized answer")

const (
	// AnswerPrompt follows every question.
	AnswerPrompt = "(yes/no):"
	// InvalidAnswerMessage is shown before re-prompting.
	InvalidAnswerMessage = "Invalid input. Please enter 'yes' or 'no'."
	// EmptyWordMessage is shown when a fill-in word is blank.
	EmptyWordMessage = "Please enter at least one character."
)

// ParseAnswer maps yes/y to true and no/n to false, ignoring case and surrounding whitespace.
func ParseAnswer(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnrecognizedAnswer, input)
	}
}

// WordPrompt builds the request for a fill-in placeholder.
func WordPrompt(p madlib.Placeholder) Prompt {
	return Prompt{
		Kind: PromptWord,
		Text: fmt.Sprintf("Please enter a %s:", p),
		Slot: string(p),
	}
}
