package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ListOrder(t *testing.T) {
	registry := NewRegistry(newTestEngine())

	defs := registry.List()
	require.Len(t, defs, 6)

	slugs := make([]string, 0, len(defs))
	for _, def := range defs {
		slugs = append(slugs, def.Slug)
	}

	assert.Equal(t, []string{
		"title-hook",
		"script-outline",
		"thumbnail-brief",
		"seo-toolkit",
		"upload-checklist",
		"analytics-tracker",
	}, slugs)
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(newTestEngine())

	def, ok := registry.Get("title-hook")
	require.True(t, ok)
	assert.Equal(t, "Title & Hook Generator", def.Name)
	assert.True(t, def.CanGenerate())

	_, ok = registry.Get("no-such-tool")
	assert.False(t, ok)
}

func TestRegistry_ComingSoonCannotGenerate(t *testing.T) {
	registry := NewRegistry(newTestEngine())

	def, ok := registry.Get("analytics-tracker")
	require.True(t, ok)
	assert.True(t, def.ComingSoon)
	assert.False(t, def.CanGenerate())
}

func TestRegistry_EveryToolDeclaresRequiredTopic(t *testing.T) {
	registry := NewRegistry(newTestEngine())

	for _, def := range registry.List() {
		if def.ComingSoon {
			continue
		}

		var topic *Field

		for i := range def.Fields {
			if def.Fields[i].Name == "topic" {
				topic = &def.Fields[i]
			}
		}

		require.NotNil(t, topic, "tool %s should declare a topic field", def.Slug)
		assert.True(t, topic.Required, "tool %s topic field should be required", def.Slug)
	}
}

func TestRegistry_GenerateDispatchesToEngine(t *testing.T) {
	registry := NewRegistry(newTestEngine())

	def, ok := registry.Get("title-hook")
	require.True(t, ok)

	output, err := def.Generate(Input{"topic": "cooking"})
	require.NoError(t, err)

	result, ok := output.(*TitleHookResult)
	require.True(t, ok)
	assert.Len(t, result.Titles, 10)
}
