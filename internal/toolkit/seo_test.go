package toolkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"react", "hooks"}, parseKeywords("react, hooks", "fallback"))
	assert.Equal(t, []string{"fallback"}, parseKeywords("", "fallback"))
	assert.Equal(t, []string{"fallback"}, parseKeywords(" , ", "fallback"))
}

func TestHashtag(t *testing.T) {
	assert.Equal(t, "videoediting", hashtag("video editing"))
	assert.Equal(t, "react", hashtag("react"))
}

func TestGenerateSeoToolkit_TagsCappedAtFifteen(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateSeoToolkit(Input{
		"topic":           "react",
		"target_keywords": "k1, k2, k3, k4, k5, k6, k7, k8, k9, k10",
	})

	require.NoError(t, err)
	assert.Len(t, result.Tags.List, 15)
	assert.Equal(t, "react", result.Tags.List[0])
}

func TestGenerateSeoToolkit_AdjacentDuplicateTagsDropped(t *testing.T) {
	engine := newTestEngine()

	// empty keywords default to the topic, which would otherwise repeat
	// the leading topic tag
	result, err := engine.GenerateSeoToolkit(Input{"topic": "react"})

	require.NoError(t, err)
	assert.Equal(t, "react", result.Tags.List[0])
	assert.NotEqual(t, "react", result.Tags.List[1])
	assert.Contains(t, result.Tags.List, "react tutorial")
	assert.Contains(t, result.Tags.List, "how to react")
}

func TestGenerateSeoToolkit_DescriptionMentionsTopicAndKeywords(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateSeoToolkit(Input{
		"topic":           "video editing",
		"target_keywords": "color grading, transitions",
	})

	require.NoError(t, err)
	assert.Contains(t, result.Description.Full, "video editing")
	assert.Contains(t, result.Description.Full, "• color grading")
	assert.Contains(t, result.Description.Full, "• transitions")
	assert.Contains(t, result.Description.Full, "#videoediting")
	assert.Contains(t, result.Description.Full, "0:00 - Introduction")
}

func TestGenerateSeoToolkit_ChapterTimesScaleWithLength(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateSeoToolkit(Input{
		"topic":        "react",
		"video_length": "20",
	})

	require.NoError(t, err)
	require.Len(t, result.Chapters, 7)

	assert.Equal(t, "0:00", result.Chapters[0].Time)
	assert.Equal(t, "4:00", result.Chapters[2].Time)  // 20% of 20 min
	assert.Equal(t, "12:00", result.Chapters[4].Time) // 60% of 20 min
	assert.Equal(t, "18:00", result.Chapters[6].Time) // 90% of 20 min
}

func TestGenerateSeoToolkit_TitleDefaults(t *testing.T) {
	engine := newTestEngine()

	withTitle, err := engine.GenerateSeoToolkit(Input{"topic": "react", "video_title": "My React Video"})
	require.NoError(t, err)
	assert.Equal(t, "My React Video", withTitle.TitleOptimization.Current)

	withoutTitle, err := engine.GenerateSeoToolkit(Input{"topic": "react"})
	require.NoError(t, err)
	assert.Equal(t, "react - Complete Guide", withoutTitle.TitleOptimization.Current)
}

func TestGenerateSeoToolkit_PinnedCommentMentionsTopic(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateSeoToolkit(Input{"topic": "drone footage"})

	require.NoError(t, err)
	assert.True(t, strings.Contains(result.PinnedComment.Text, "drone footage"))
	assert.NotEmpty(t, result.PinnedComment.Tips)
}
