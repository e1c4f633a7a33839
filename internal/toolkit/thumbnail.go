package toolkit

import (
	"fmt"
	"strings"
)

// builds a thumbnail brief: text overlay options, visual concepts, color
// moods, composition tips and fixed technical specs. No randomness -
// everything is input-interpolated or static.
func (e *Engine) GenerateThumbnailBrief(in Input) (*ThumbnailBriefResult, error) {
	topic := in.Get("topic")

	textOptions := []TextOverlay{
		{Text: strings.ToUpper(topic), Style: "Bold Impact", Placement: "Center or Right Third"},
		{Text: fmt.Sprintf("The %s Secret", topic), Style: "Mystery/Intrigue", Placement: "Top Third"},
		{Text: fmt.Sprintf("%s 101", topic), Style: "Educational", Placement: "Bottom Third"},
		{Text: fmt.Sprintf("I Tried %s", topic), Style: "Personal Story", Placement: "Center"},
		{Text: fmt.Sprintf("%s?!", topic), Style: "Curiosity/Shock", Placement: "Large, Center"},
	}

	visualConcepts := []VisualConcept{
		{
			Concept:     "Before/After Split",
			Description: "Show transformation or comparison visually",
			Elements:    []string{"Split screen effect", "Contrasting colors", "Clear visual difference"},
			BestFor:     "Tutorial, transformation, or comparison content",
		},
		{
			Concept:     "Face + Emotion",
			Description: "Your face with strong emotion related to content",
			Elements:    []string{"High contrast lighting", "Expressive face", "Minimal background"},
			BestFor:     "Personal stories, reactions, vlogs",
		},
		{
			Concept:     "Object Focus",
			Description: fmt.Sprintf("Clean shot of key %s-related object or symbol", topic),
			Elements:    []string{"Shallow depth of field", "Dramatic lighting", "Bold text overlay"},
			BestFor:     "Product reviews, how-to content",
		},
		{
			Concept:     "Text-Dominant",
			Description: "Large, readable text as the main element",
			Elements:    []string{"High contrast text", "Simple background", "Maybe small supporting image"},
			BestFor:     "Educational content, lists, news",
		},
	}

	colorMoods := []ColorMood{
		{Mood: "High Energy", Colors: []string{"Red", "Orange", "Yellow"}, Effect: "Excitement, urgency, attention"},
		{Mood: "Trust & Calm", Colors: []string{"Blue", "Green", "White"}, Effect: "Credibility, relaxation, clarity"},
		{Mood: "Premium", Colors: []string{"Black", "Gold", "Deep Purple"}, Effect: "Luxury, exclusivity, authority"},
		{Mood: "Fresh & Fun", Colors: []string{"Teal", "Pink", "Bright Green"}, Effect: "Youth, creativity, energy"},
	}

	compositionTips := []string{
		"Follow the rule of thirds - place key elements on intersection points",
		"Leave space for YouTube's timestamp overlay (bottom right corner)",
		"Ensure text is readable at small sizes (mobile viewing)",
		"Use 3 or fewer colors for maximum impact",
		"Face looking towards the text guides viewer's eye",
		"High contrast between text and background is essential",
	}

	return &ThumbnailBriefResult{
		TextOptions:     textOptions,
		VisualConcepts:  visualConcepts,
		ColorMoods:      colorMoods,
		CompositionTips: compositionTips,
		TechnicalSpecs: TechnicalSpecs{
			Dimensions:  "1280 x 720 pixels",
			AspectRatio: "16:9",
			Format:      "JPG or PNG",
			MaxSize:     "2MB",
			SafeZone:    "Keep key elements away from edges (10% margin)",
		},
		GeneratedAt: e.now().UTC(),
	}, nil
}
