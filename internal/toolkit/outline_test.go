package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLengthMinutes(t *testing.T) {
	assert.Equal(t, 10, parseLengthMinutes(""))
	assert.Equal(t, 10, parseLengthMinutes("abc"))
	assert.Equal(t, 10, parseLengthMinutes("0"))
	assert.Equal(t, 10, parseLengthMinutes("-5"))
	assert.Equal(t, 15, parseLengthMinutes("15"))
	assert.Equal(t, 12, parseLengthMinutes("12.5"))
	assert.Equal(t, 8, parseLengthMinutes(" 8 "))
}

func TestParseKeyPoints(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, parseKeyPoints("a, b ,c"))
	assert.Equal(t, []string{"solo"}, parseKeyPoints("solo"))
	assert.Equal(t, []string{"a", "b"}, parseKeyPoints("a,,b,"))
	assert.Equal(t, []string{"Main Point 1", "Main Point 2", "Main Point 3"}, parseKeyPoints(""))
	assert.Equal(t, []string{"Main Point 1", "Main Point 2", "Main Point 3"}, parseKeyPoints(" , ,"))
}

func TestGenerateScriptOutline_SectionPerKeyPoint(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateScriptOutline(Input{
		"topic":        "growing a channel",
		"video_length": "10",
		"key_points":   "Consistency, Thumbnails, Analytics",
	})

	require.NoError(t, err)
	require.Len(t, result.Sections, 3)

	assert.Equal(t, 1, result.Sections[0].Number)
	assert.Equal(t, "Consistency", result.Sections[0].Title)
	assert.Equal(t, "Thumbnails", result.Sections[1].Title)
	assert.Equal(t, "Analytics", result.Sections[2].Title)
	assert.Equal(t, 3, result.Metadata.SectionCount)
	assert.Equal(t, "10 minutes", result.Metadata.TotalLength)
}

func TestGenerateScriptOutline_Timestamps(t *testing.T) {
	engine := newTestEngine()

	// 10 min video: intro 60s, cta 30s, (600-60-30)/3 = 170s per section
	result, err := engine.GenerateScriptOutline(Input{
		"topic":        "topic",
		"video_length": "10",
		"key_points":   "a, b, c",
	})

	require.NoError(t, err)

	assert.Equal(t, "0:00", result.Intro.Timestamp)
	assert.Equal(t, "1:00", result.Sections[0].Timestamp)
	assert.Equal(t, "3:50", result.Sections[1].Timestamp)
	assert.Equal(t, "6:40", result.Sections[2].Timestamp)
	assert.Equal(t, "9:30", result.CTA.Timestamp)
	assert.Equal(t, "30 sec", result.CTA.Duration)
}

func TestGenerateScriptOutline_IntroCappedAtOneMinute(t *testing.T) {
	engine := newTestEngine()

	// 5 min video: intro is 5*6 = 30s, under the cap
	short, err := engine.GenerateScriptOutline(Input{"topic": "t", "video_length": "5", "key_points": "a"})
	require.NoError(t, err)
	assert.Equal(t, "0:00", short.Intro.Timestamp)
	assert.Equal(t, "0:30", short.Sections[0].Timestamp)

	// 30 min video: intro would be 180s, capped at 60s
	long, err := engine.GenerateScriptOutline(Input{"topic": "t", "video_length": "30", "key_points": "a"})
	require.NoError(t, err)
	assert.Equal(t, "1:00", long.Sections[0].Timestamp)
}

func TestGenerateScriptOutline_InvalidLengthUsesDefault(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateScriptOutline(Input{
		"topic":        "topic",
		"video_length": "not a number",
		"key_points":   "a, b, c",
	})

	require.NoError(t, err)
	assert.Equal(t, "10 minutes", result.Metadata.TotalLength)
	// same arithmetic as an explicit 10 minute video
	assert.Equal(t, "3:50", result.Sections[1].Timestamp)
}

func TestGenerateScriptOutline_Chapters(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateScriptOutline(Input{
		"topic":        "topic",
		"video_length": "10",
		"key_points":   "a, b",
	})

	require.NoError(t, err)
	require.Len(t, result.Chapters, 4) // intro + 2 sections + wrap up

	assert.Equal(t, Chapter{Time: "0:00", Title: "Introduction"}, result.Chapters[0])
	assert.Equal(t, "a", result.Chapters[1].Title)
	assert.Equal(t, "b", result.Chapters[2].Title)
	assert.Equal(t, "Wrap Up & Next Steps", result.Chapters[3].Title)
	assert.Equal(t, result.CTA.Timestamp, result.Chapters[3].Time)
}

func TestGenerateScriptOutline_CustomCallToAction(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.GenerateScriptOutline(Input{
		"topic":          "topic",
		"video_length":   "10",
		"call_to_action": "Join my newsletter",
	})

	require.NoError(t, err)

	var action string
	for _, el := range result.CTA.Elements {
		if el.Type == "Action" {
			action = el.Content
		}
	}

	assert.Equal(t, "Join my newsletter", action)
}
