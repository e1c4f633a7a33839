package toolkit

import (
	"fmt"
	"strings"
)

const maxTags = 15

// collapses whitespace so terms can be used as hashtags
func hashtag(term string) string {
	return strings.ReplaceAll(term, " ", "")
}

// splits comma-separated keywords, defaulting to the topic alone
func parseKeywords(raw, topic string) []string {
	keywords := []string{}

	for _, part := range strings.Split(raw, ",") {
		if k := strings.TrimSpace(part); k != "" {
			keywords = append(keywords, k)
		}
	}

	if len(keywords) == 0 {
		keywords = []string{topic}
	}

	return keywords
}

// builds the SEO toolkit: description block, tag list, chapter markers,
// pinned comment template and title optimization advice
func (e *Engine) GenerateSeoToolkit(in Input) (*SeoToolkitResult, error) {
	topic := in.Get("topic")
	videoTitle := in.Get("video_title")
	keywords := parseKeywords(in.Get("target_keywords"), topic)
	lengthMinutes := parseLengthMinutes(in.Get("video_length"))

	var learnings strings.Builder
	for _, k := range keywords {
		fmt.Fprintf(&learnings, "• %s\n", k)
	}

	descriptionFull := fmt.Sprintf(`In this video, I'm diving deep into %s. Whether you're a beginner or looking to level up your skills, this comprehensive guide covers everything you need to know.

🔥 What you'll learn:
%s
⏰ Timestamps:
0:00 - Introduction
%d:00 - Getting Started
%d:00 - Deep Dive
%d:00 - Advanced Tips
%d:00 - Wrap Up

📌 Resources mentioned:
[Add your links here]

🔔 Don't forget to subscribe and hit the bell for more %s content!

#%s #%s`,
		topic,
		learnings.String(),
		lengthMinutes*10/100,
		lengthMinutes*30/100,
		lengthMinutes*60/100,
		lengthMinutes*90/100,
		topic,
		hashtag(topic),
		hashtag(keywords[0]),
	)

	// base terms plus fixed suffix patterns, adjacent duplicates removed,
	// capped at 15 entries
	expanded := append([]string{topic}, keywords...)
	expanded = append(expanded,
		fmt.Sprintf("%s tutorial", topic),
		fmt.Sprintf("%s for beginners", topic),
		fmt.Sprintf("how to %s", topic),
		fmt.Sprintf("%s tips", topic),
		fmt.Sprintf("%s guide", topic),
		fmt.Sprintf("%s 2025", topic),
		fmt.Sprintf("learn %s", topic),
		fmt.Sprintf("%s explained", topic),
		fmt.Sprintf("best %s", topic),
		fmt.Sprintf("%s review", topic),
	)

	tags := make([]string, 0, maxTags)

	for _, tag := range expanded {
		if len(tags) > 0 && tags[len(tags)-1] == tag {
			continue
		}

		tags = append(tags, tag)

		if len(tags) == maxTags {
			break
		}
	}

	chapters := []SeoChapter{
		{Time: "0:00", Title: "Introduction", Tip: "Must start at 0:00"},
		{Time: fmt.Sprintf("%d:00", lengthMinutes*8/100), Title: fmt.Sprintf("What is %s?", topic), Tip: "Define the topic early"},
		{Time: fmt.Sprintf("%d:00", lengthMinutes*20/100), Title: "Getting Started", Tip: "Beginner-friendly section"},
		{Time: fmt.Sprintf("%d:00", lengthMinutes*40/100), Title: "Core Concepts", Tip: "Main content delivery"},
		{Time: fmt.Sprintf("%d:00", lengthMinutes*60/100), Title: "Pro Tips & Tricks", Tip: "Advanced value"},
		{Time: fmt.Sprintf("%d:00", lengthMinutes*80/100), Title: "Common Mistakes", Tip: "Helps with retention"},
		{Time: fmt.Sprintf("%d:00", lengthMinutes*90/100), Title: "Summary & Next Steps", Tip: "Strong close"},
	}

	pinnedText := fmt.Sprintf(`Thanks for watching! 🙏 Quick question for you: What's your biggest challenge with %s? Drop it in the comments and I'll try to help!

📌 Key takeaways from this video:
1. [First main point]
2. [Second main point]
3. [Third main point]

👉 Want more %s content? Let me know what you'd like to see next!`, topic, topic)

	currentTitle := videoTitle
	if currentTitle == "" {
		currentTitle = fmt.Sprintf("%s - Complete Guide", topic)
	}

	return &SeoToolkitResult{
		Description: SeoDescription{
			Full: descriptionFull,
			Tips: []string{
				"First 200 characters are most important - include main keyword",
				"Add timestamps (chapters) for better user experience and SEO",
				"Include relevant hashtags (3-5 max)",
				"Add links to resources, social media, related videos",
			},
		},
		Tags: SeoTags{
			List: tags,
			Tips: []string{
				"Use a mix of broad and specific tags",
				"Include your brand/channel name",
				"Add trending related terms",
				"Don't exceed 500 characters total",
			},
		},
		Chapters: chapters,
		PinnedComment: PinnedComment{
			Text: pinnedText,
			Tips: []string{
				"Pin a comment to boost engagement",
				"Ask a question to encourage responses",
				"Summarize key points for value",
				"Include a soft CTA",
			},
		},
		TitleOptimization: TitleOptimization{
			Current: currentTitle,
			Tips: []string{
				"Keep under 60 characters for full visibility",
				"Front-load main keyword",
				"Include power words (Ultimate, Complete, Easy)",
				"Add year for evergreen content",
			},
		},
		GeneratedAt: e.now().UTC(),
	}, nil
}
