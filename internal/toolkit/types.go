package toolkit

import (
	"strings"
	"time"
)

// validated field values for one generation request, keyed by field name
type Input map[string]string

// returns the trimmed value for a field, or "" when absent
func (in Input) Get(name string) string {
	return strings.TrimSpace(in[name])
}

// field input types understood by form renderers
const (
	FieldText     = "text"
	FieldNumber   = "number"
	FieldSelect   = "select"
	FieldTextarea = "textarea"
)

// describes one input field of a tool's schema
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// a suggested video title with its style category and advisory tip
type TitleSuggestion struct {
	Title string `json:"title"`
	Style string `json:"style"`
	Tip   string `json:"tip"`
}

// a suggested opening hook with its type and recommended use
type HookSuggestion struct {
	Hook    string `json:"hook"`
	Type    string `json:"type"`
	BestFor string `json:"best_for"`
}

type TitleHookResult struct {
	Titles      []TitleSuggestion `json:"titles"`
	Hooks       []HookSuggestion  `json:"hooks"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// one scripted beat inside an outline block
type OutlineElement struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Tips    string `json:"tips"`
}

// intro or CTA block with its start timestamp and duration
type OutlineBlock struct {
	Timestamp string           `json:"timestamp"`
	Duration  string           `json:"duration"`
	Elements  []OutlineElement `json:"elements"`
}

// one key-point section of the script
type OutlineSection struct {
	Number    int              `json:"number"`
	Title     string           `json:"title"`
	Timestamp string           `json:"timestamp"`
	Duration  string           `json:"duration"`
	Elements  []OutlineElement `json:"elements"`
}

// a chapter marker suitable for direct publishing
type Chapter struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

type OutlineMetadata struct {
	TotalLength  string    `json:"total_length"`
	SectionCount int       `json:"section_count"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type ScriptOutlineResult struct {
	Intro    OutlineBlock     `json:"intro"`
	Sections []OutlineSection `json:"sections"`
	CTA      OutlineBlock     `json:"cta"`
	Chapters []Chapter        `json:"chapters"`
	Metadata OutlineMetadata  `json:"metadata"`
}

// one text-overlay option for a thumbnail
type TextOverlay struct {
	Text      string `json:"text"`
	Style     string `json:"style"`
	Placement string `json:"placement"`
}

type VisualConcept struct {
	Concept     string   `json:"concept"`
	Description string   `json:"description"`
	Elements    []string `json:"elements"`
	BestFor     string   `json:"best_for"`
}

type ColorMood struct {
	Mood   string   `json:"mood"`
	Colors []string `json:"colors"`
	Effect string   `json:"effect"`
}

type TechnicalSpecs struct {
	Dimensions  string `json:"dimensions"`
	AspectRatio string `json:"aspect_ratio"`
	Format      string `json:"format"`
	MaxSize     string `json:"max_size"`
	SafeZone    string `json:"safe_zone"`
}

type ThumbnailBriefResult struct {
	TextOptions     []TextOverlay   `json:"text_options"`
	VisualConcepts  []VisualConcept `json:"visual_concepts"`
	ColorMoods      []ColorMood     `json:"color_moods"`
	CompositionTips []string        `json:"composition_tips"`
	TechnicalSpecs  TechnicalSpecs  `json:"technical_specs"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

type SeoDescription struct {
	Full string   `json:"full"`
	Tips []string `json:"tips"`
}

type SeoTags struct {
	List []string `json:"list"`
	Tips []string `json:"tips"`
}

type SeoChapter struct {
	Time  string `json:"time"`
	Title string `json:"title"`
	Tip   string `json:"tip"`
}

type PinnedComment struct {
	Text string   `json:"text"`
	Tips []string `json:"tips"`
}

type TitleOptimization struct {
	Current string   `json:"current"`
	Tips    []string `json:"tips"`
}

type SeoToolkitResult struct {
	Description       SeoDescription    `json:"description"`
	Tags              SeoTags           `json:"tags"`
	Chapters          []SeoChapter      `json:"chapters"`
	PinnedComment     PinnedComment     `json:"pinned_comment"`
	TitleOptimization TitleOptimization `json:"title_optimization"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

// one checklist entry; Checked is always false on generation
type ChecklistItem struct {
	Task     string `json:"task"`
	Details  string `json:"details"`
	Critical bool   `json:"critical"`
	Checked  bool   `json:"checked"`
	Timing   string `json:"timing,omitempty"`
}

// input-derived header for the upload checklist
type VideoDetails struct {
	Topic          string `json:"topic"`
	ScheduledDate  string `json:"scheduled_date"`
	IsPartOfSeries bool   `json:"is_part_of_series"`
}

type UploadChecklistResult struct {
	PrePublish    []ChecklistItem `json:"pre_publish"`
	PublishDay    []ChecklistItem `json:"publish_day"`
	PostPublish   []ChecklistItem `json:"post_publish"`
	BestPractices []string        `json:"best_practices"`
	VideoDetails  VideoDetails    `json:"video_details"`
}
