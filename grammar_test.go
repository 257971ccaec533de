package pagecheck_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagecheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGrammarService verifies GrammarService interface can be implemented.
type mockGrammarService struct {
	CheckFn func(ctx context.Context, text, language string) ([]pagecheck.TypoMatch, error)
}

func (m *mockGrammarService) Check(ctx context.Context, text, language string) ([]pagecheck.TypoMatch, error) {
	return m.CheckFn(ctx, text, language)
}

// Compile-time check that mockGrammarService implements GrammarService.
var _ pagecheck.GrammarService = (*mockGrammarService)(nil)

func TestGrammarService_CanBeImplemented(t *testing.T) {
	t.Parallel()

	svc := &mockGrammarService{
		CheckFn: func(_ context.Context, text, language string) ([]pagecheck.TypoMatch, error) {
			return []pagecheck.TypoMatch{{Word: text, Suggestions: []string{language}}}, nil
		},
	}

	matches, err := svc.Check(context.Background(), "teh", pagecheck.DefaultLanguage)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "teh", matches[0].Word)
	assert.Equal(t, []string{"en-US"}, matches[0].Suggestions)
}

func TestTypoMatch_SuggestionText(t *testing.T) {
	t.Parallel()

	t.Run("joins suggestions with commas in service order", func(t *testing.T) {
		t.Parallel()

		m := pagecheck.TypoMatch{Word: "teh", Suggestions: []string{"the", "ten", "tea"}}

		assert.Equal(t, "the, ten, tea", m.SuggestionText())
	})

	t.Run("returns empty string without suggestions", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagecheck.TypoMatch{Word: "xyz"}.SuggestionText())
	})
}
