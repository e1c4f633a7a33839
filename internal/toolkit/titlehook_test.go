package toolkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTitleHook_Counts(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{"topic": "video editing", "niche": "tech"})

	require.NoError(t, err)
	assert.Len(t, result.Titles, 10)
	assert.Len(t, result.Hooks, 5)
}

func TestGenerateTitleHook_CategoryCycle(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{"topic": "video editing"})
	require.NoError(t, err)

	expected := []string{
		StyleCuriosity, StyleHowTo, StyleList, StyleChallenge, StyleComparison,
		StyleCuriosity, StyleHowTo, StyleList, StyleChallenge, StyleComparison,
	}

	for i, title := range result.Titles {
		assert.Equal(t, expected[i], title.Style, "title %d", i)
		assert.NotEmpty(t, title.Tip)
	}
}

func TestGenerateTitleHook_TwoDistinctTemplatesPerCategory(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{"topic": "video editing"})
	require.NoError(t, err)

	// titles i and i+5 share a category but use different templates
	for i := 0; i < 5; i++ {
		first := result.Titles[i]
		second := result.Titles[i+5]

		assert.Equal(t, first.Style, second.Style)
		assert.NotEqual(t, first.Title, second.Title,
			"both %s titles use the same template", first.Style)
	}
}

func TestGenerateTitleHook_TopicSubstituted(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{"topic": "drone photography"})
	require.NoError(t, err)

	found := false

	for _, title := range result.Titles {
		assert.NotContains(t, title.Title, "{", "every placeholder should be filled")

		if strings.Contains(title.Title, "drone photography") {
			found = true
		}
	}

	assert.True(t, found, "at least one title should mention the topic")
}

func TestGenerateTitleHook_BracedTopicKeptVerbatim(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{"topic": "my {cool} video"})
	require.NoError(t, err)

	found := false

	for _, title := range result.Titles {
		if strings.Contains(title.Title, "my {cool} video") {
			found = true
		}
	}

	assert.True(t, found, "braces typed by the user should survive as literal text")
}

func TestGenerateTitleHook_Defaults(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{})
	require.NoError(t, err)

	joined := ""
	for _, title := range result.Titles {
		joined += title.Title + "\n"
	}

	assert.Contains(t, joined, "this topic")
}

func TestGenerateTitleHook_HookMetadata(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateTitleHook(Input{"topic": "cooking"})
	require.NoError(t, err)

	types := make([]string, 0, len(result.Hooks))

	for _, hook := range result.Hooks {
		assert.NotEmpty(t, hook.Hook)
		assert.NotEmpty(t, hook.BestFor)
		assert.NotContains(t, hook.Hook, "{")
		types = append(types, hook.Type)
	}

	assert.Equal(t, []string{"Pattern Interrupt", "Promise", "Empathy", "Authority", "Curiosity"}, types)
}

func TestGenerateTitleHook_DeterministicWithFixedPicker(t *testing.T) {
	engine := newTestEngine()

	first, err := engine.GenerateTitleHook(Input{"topic": "gardening", "niche": "lifestyle"})
	require.NoError(t, err)

	second, err := engine.GenerateTitleHook(Input{"topic": "gardening", "niche": "lifestyle"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTitleHook_InputTrimmed(t *testing.T) {
	engine := newTestEngine()

	trimmed, err := engine.GenerateTitleHook(Input{"topic": "  cooking  "})
	require.NoError(t, err)

	plain, err := engine.GenerateTitleHook(Input{"topic": "cooking"})
	require.NoError(t, err)

	assert.Equal(t, plain.Titles, trimmed.Titles)
}
