package pagecheck

import (
	"context"
	"strings"
)

// DefaultLanguage is the language code used when none is given.
const DefaultLanguage = "en-US"

// TypoMatch is a possible error flagged by the grammar service.
type TypoMatch struct {
	// Word is the flagged substring of the submitted text.
	Word string `json:"word"`

	// Suggestions are candidate replacements in service order.
	Suggestions []string `json:"suggestions"`

	// Message is the service's explanation, when provided.
	Message string `json:"message,omitempty"`

	// RuleID identifies the service rule that matched, when provided.
	RuleID string `json:"ruleId,omitempty"`
}

// SuggestionText returns the suggestions joined with commas.
func (m TypoMatch) SuggestionText() string {
	return strings.Join(m.Suggestions, ", ")
}

// GrammarService checks a piece of text for spelling and grammar problems.
type GrammarService interface {
	// Check submits text in the given language and returns the matches
	// in the order reported by the service.
	Check(ctx context.Context, text string, language string) ([]TypoMatch, error)
}
