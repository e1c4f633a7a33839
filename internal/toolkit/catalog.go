package toolkit

import (
	"errors"
	"fmt"
)

// returned when a lookup references a tool or category the catalog does
// not carry; callers are expected to pass catalog-valid keys, so hitting
// this indicates an authoring bug rather than bad user input
var ErrNotFound = errors.New("catalog entry not found")

// title style categories, in the fixed order titles cycle through
const (
	StyleCuriosity  = "curiosity"
	StyleHowTo      = "how_to"
	StyleList       = "list"
	StyleChallenge  = "challenge"
	StyleComparison = "comparison"
)

// holds the static phrase templates, synonym pools and advisory metadata
// shared by all generators
type Catalog struct {
	titleTemplates map[string][]string
	titleOrder     []string
	categoryTips   map[string]string
	hookTemplates  []string
	hookTypes      []string
	hookBestFor    []string
	synonyms       map[string][]string
}

// returns the built-in catalog
func DefaultCatalog() *Catalog {
	return &Catalog{
		titleTemplates: map[string][]string{
			StyleCuriosity: {
				"What Happens When You {action} {topic}?",
				"The Truth About {topic} Nobody Tells You",
				"Why {topic} Changed Everything I Knew About {niche}",
				"I Discovered Something Shocking About {topic}",
				"{topic}: The Secret {niche} Experts Don't Share",
			},
			StyleHowTo: {
				"How to {action} {topic} (Step-by-Step Guide)",
				"The Ultimate Guide to {action} {topic}",
				"Master {topic} in {time} - Complete Tutorial",
				"How I {action} {topic} (And How You Can Too)",
				"{action} {topic} Like a Pro - Beginner to Expert",
			},
			StyleList: {
				"{number} {topic} Tips That Will Change Your {niche}",
				"Top {number} Mistakes When {action} {topic}",
				"{number} Things I Wish I Knew Before {action} {topic}",
				"{number} {topic} Hacks That Actually Work",
				"The {number} Best {topic} Strategies for {year}",
			},
			StyleChallenge: {
				"I Tried {topic} for {time} - Here's What Happened",
				"{time} {topic} Challenge: My Honest Results",
				"Can You Really {action} {topic} in {time}?",
				"Testing {topic} for {time}: Worth It?",
				"I Spent {time} Mastering {topic} - The Results",
			},
			StyleComparison: {
				"{topic} vs {alternative}: Which is Better?",
				"Why I Switched from {alternative} to {topic}",
				"{topic} vs {alternative}: The Ultimate Comparison",
				"I Tested {topic} and {alternative} - Clear Winner",
				"The Real Difference Between {topic} and {alternative}",
			},
		},
		titleOrder: []string{
			StyleCuriosity,
			StyleHowTo,
			StyleList,
			StyleChallenge,
			StyleComparison,
		},
		categoryTips: map[string]string{
			StyleCuriosity:  "Great for driving clicks with intrigue",
			StyleHowTo:      "Perfect for tutorial content, ranks well in search",
			StyleList:       "High CTR format, easy to consume",
			StyleChallenge:  "Builds anticipation and storytelling",
			StyleComparison: "Captures search intent for buyers",
		},
		hookTemplates: []string{
			"Stop everything you're doing because {hook_reason}...",
			"In the next {time}, I'm going to show you exactly how to {promise}...",
			"If you've ever struggled with {pain_point}, this video is for you...",
			"Here's something that took me {time} to figure out about {topic}...",
			"Most people get this completely wrong about {topic}, and here's why...",
		},
		hookTypes: []string{
			"Pattern Interrupt",
			"Promise",
			"Empathy",
			"Authority",
			"Curiosity",
		},
		hookBestFor: []string{
			"Grabbing attention fast",
			"Educational content",
			"Relatable content",
			"Tutorial/guide videos",
			"Controversial takes",
		},
		synonyms: map[string][]string{
			"action": {"master", "learn", "understand", "improve", "optimize", "transform", "level up", "dominate", "crush"},
			"time":   {"30 days", "7 days", "24 hours", "one week", "one month", "100 days"},
			"number": {"5", "7", "10", "3", "12", "15", "8"},
			"year":   {"2025", "2024", "this year"},
		},
	}
}

// returns the ordered title templates for a style category
func (c *Catalog) TemplatesFor(category string) ([]string, error) {
	templates, ok := c.titleTemplates[category]
	if !ok {
		return nil, fmt.Errorf("title category %q: %w", category, ErrNotFound)
	}

	return templates, nil
}

// returns the fixed category cycling order
func (c *Catalog) TitleOrder() []string {
	return c.titleOrder
}

// returns the advisory tip for a title style category
func (c *Catalog) CategoryTip(category string) (string, error) {
	tip, ok := c.categoryTips[category]
	if !ok {
		return "", fmt.Errorf("category tip %q: %w", category, ErrNotFound)
	}

	return tip, nil
}

// returns the ordered hook template slots
func (c *Catalog) HookTemplates() []string {
	return c.hookTemplates
}

// returns the hook type label for a template slot
func (c *Catalog) HookType(index int) string {
	if index < 0 || index >= len(c.hookTypes) {
		return "General"
	}

	return c.hookTypes[index]
}

// returns the best-for label for a hook template slot
func (c *Catalog) HookBestFor(index int) string {
	if index < 0 || index >= len(c.hookBestFor) {
		return "General content"
	}

	return c.hookBestFor[index]
}

// returns the synonym pool for a placeholder name
func (c *Catalog) SynonymsFor(name string) ([]string, bool) {
	pool, ok := c.synonyms[name]
	return pool, ok
}
