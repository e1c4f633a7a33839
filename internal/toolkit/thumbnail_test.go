package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateThumbnailBrief_Counts(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateThumbnailBrief(Input{"topic": "home studio"})

	require.NoError(t, err)
	assert.Len(t, result.TextOptions, 5)
	assert.Len(t, result.VisualConcepts, 4)
	assert.Len(t, result.ColorMoods, 4)
	assert.Len(t, result.CompositionTips, 6)
}

func TestGenerateThumbnailBrief_FirstOverlayUppercased(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateThumbnailBrief(Input{"topic": "home studio"})

	require.NoError(t, err)
	assert.Equal(t, "HOME STUDIO", result.TextOptions[0].Text)
	assert.Equal(t, "Bold Impact", result.TextOptions[0].Style)
}

func TestGenerateThumbnailBrief_TechnicalSpecs(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateThumbnailBrief(Input{"topic": "anything"})

	require.NoError(t, err)
	assert.Equal(t, "1280 x 720 pixels", result.TechnicalSpecs.Dimensions)
	assert.Equal(t, "16:9", result.TechnicalSpecs.AspectRatio)
	assert.Equal(t, "2MB", result.TechnicalSpecs.MaxSize)
}

func TestGenerateThumbnailBrief_Deterministic(t *testing.T) {
	engine := newTestEngine()

	first, err := engine.GenerateThumbnailBrief(Input{"topic": "home studio"})
	require.NoError(t, err)

	second, err := engine.GenerateThumbnailBrief(Input{"topic": "home studio"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
