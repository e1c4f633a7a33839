package toolkit

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultLengthMinutes = 10
	maxIntroSeconds      = 60
	ctaSeconds           = 30
)

// parses a video length in minutes, defaulting when the value is
// missing, non-numeric or not positive; the default is applied before
// any time-division arithmetic
func parseLengthMinutes(raw string) int {
	raw = strings.TrimSpace(raw)

	if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
		return minutes
	}

	// tolerate fractional input like "12.5" by truncating
	if f, err := strconv.ParseFloat(raw, 64); err == nil && int(f) > 0 {
		return int(f)
	}

	return defaultLengthMinutes
}

// splits comma-separated key points, trimming and dropping empties
func parseKeyPoints(raw string) []string {
	points := []string{}

	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			points = append(points, p)
		}
	}

	if len(points) == 0 {
		points = []string{"Main Point 1", "Main Point 2", "Main Point 3"}
	}

	return points
}

// builds a timestamped script outline: intro, one section per key point,
// a closing CTA, and a derived chapter list
func (e *Engine) GenerateScriptOutline(in Input) (*ScriptOutlineResult, error) {
	topic := in.Get("topic")
	callToAction := in.Get("call_to_action")

	if callToAction == "" {
		callToAction = "Subscribe for more content like this"
	}

	lengthMinutes := parseLengthMinutes(in.Get("video_length"))
	points := parseKeyPoints(in.Get("key_points"))

	totalSeconds := lengthMinutes * 60

	// intro takes ~10% of the video, capped at one minute
	introSeconds := lengthMinutes * 6
	if introSeconds > maxIntroSeconds {
		introSeconds = maxIntroSeconds
	}

	sectionSeconds := (totalSeconds - introSeconds - ctaSeconds) / len(points)

	intro := OutlineBlock{
		Timestamp: formatTimestamp(0),
		Duration:  fmt.Sprintf("%d min", introSeconds/60),
		Elements: []OutlineElement{
			{Type: "Hook", Content: fmt.Sprintf("Open with a compelling hook about %s", topic), Tips: "First 3 seconds are crucial - make them count"},
			{Type: "Credibility", Content: "Briefly establish why you can speak on this topic", Tips: "Keep it short - 1-2 sentences max"},
			{Type: "Promise", Content: fmt.Sprintf("Tell viewers exactly what they'll learn about %s", topic), Tips: "Be specific about the value they'll get"},
			{Type: "Preview", Content: "Quick overview of what's coming", Tips: "Creates anticipation and reduces drop-off"},
		},
	}

	sections := make([]OutlineSection, 0, len(points))
	currentTime := introSeconds

	for i, point := range points {
		transition := "Dive into the first point"
		if i > 0 {
			transition = fmt.Sprintf("Transition from %s", points[i-1])
		}

		sections = append(sections, OutlineSection{
			Number:    i + 1,
			Title:     point,
			Timestamp: formatTimestamp(currentTime),
			Duration:  fmt.Sprintf("%d min", sectionSeconds/60),
			Elements: []OutlineElement{
				{Type: "Transition", Content: transition, Tips: "Smooth transitions keep viewers engaged"},
				{Type: "Main Content", Content: fmt.Sprintf("Deep dive into: %s", point), Tips: "Use examples, stories, or demonstrations"},
				{Type: "Key Insight", Content: fmt.Sprintf("Share your unique perspective on %s", point), Tips: "This is where you add unique value"},
				{Type: "Mini CTA", Content: "Engagement prompt (comment, like)", Tips: "Mid-roll engagement boosts algorithm favor"},
			},
		})

		currentTime += sectionSeconds
	}

	cta := OutlineBlock{
		Timestamp: formatTimestamp(totalSeconds - ctaSeconds),
		Duration:  "30 sec",
		Elements: []OutlineElement{
			{Type: "Recap", Content: "Quick summary of key takeaways", Tips: "Reinforces value delivered"},
			{Type: "Action", Content: callToAction, Tips: "Be specific about what you want them to do"},
			{Type: "Next Video", Content: "Tease related content to watch next", Tips: "Increases watch time and session duration"},
		},
	}

	chapters := make([]Chapter, 0, len(sections)+2)
	chapters = append(chapters, Chapter{Time: "0:00", Title: "Introduction"})

	for _, s := range sections {
		chapters = append(chapters, Chapter{Time: s.Timestamp, Title: s.Title})
	}

	chapters = append(chapters, Chapter{Time: cta.Timestamp, Title: "Wrap Up & Next Steps"})

	return &ScriptOutlineResult{
		Intro:    intro,
		Sections: sections,
		CTA:      cta,
		Chapters: chapters,
		Metadata: OutlineMetadata{
			TotalLength:  fmt.Sprintf("%d minutes", lengthMinutes),
			SectionCount: len(points),
			GeneratedAt:  e.now().UTC(),
		},
	}, nil
}
