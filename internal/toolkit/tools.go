package toolkit

// a generator bound to a tool definition
type GeneratorFunc func(Input) (any, error)

// static schema and generator binding for one content-generation tool;
// immutable at runtime
type Definition struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	ComingSoon  bool    `json:"coming_soon,omitempty"`
	Fields      []Field `json:"fields"`

	generate GeneratorFunc
}

// reports whether the definition can produce output
func (d Definition) CanGenerate() bool {
	return !d.ComingSoon && d.generate != nil
}

// runs the bound generator with validated input
func (d Definition) Generate(in Input) (any, error) {
	return d.generate(in)
}

// the full set of tool definitions; the source of truth for which tools
// exist
type Registry struct {
	defs  map[string]Definition
	order []string
}

// looks up a definition by slug
func (r *Registry) Get(slug string) (Definition, bool) {
	def, ok := r.defs[slug]
	return def, ok
}

// returns all definitions in display order
func (r *Registry) List() []Definition {
	defs := make([]Definition, 0, len(r.order))

	for _, slug := range r.order {
		defs = append(defs, r.defs[slug])
	}

	return defs
}

// builds the tool registry, binding each definition to the engine's
// generator for that tool
func NewRegistry(engine *Engine) *Registry {
	defs := []Definition{
		{
			Slug:        "title-hook",
			Name:        "Title & Hook Generator",
			Description: "Generate compelling video titles and opening hooks that grab attention",
			Icon:        "Sparkles",
			Fields: []Field{
				{Name: "topic", Label: "Video Topic", Type: FieldText, Required: true, Placeholder: `e.g., "Video editing for beginners"`},
				{Name: "niche", Label: "Your Niche", Type: FieldText, Placeholder: `e.g., "Tech tutorials"`},
				{Name: "target_audience", Label: "Target Audience", Type: FieldText, Placeholder: `e.g., "Beginner content creators"`},
				{Name: "video_style", Label: "Video Style", Type: FieldSelect, Options: []string{"Tutorial", "Vlog", "Review", "Story", "List"}},
			},
			generate: func(in Input) (any, error) { return engine.GenerateTitleHook(in) },
		},
		{
			Slug:        "script-outline",
			Name:        "Script Outline Builder",
			Description: "Create structured video scripts with timestamps and sections",
			Icon:        "FileText",
			Fields: []Field{
				{Name: "topic", Label: "Video Topic", Type: FieldText, Required: true, Placeholder: `e.g., "How to grow on YouTube"`},
				{Name: "video_length", Label: "Video Length (minutes)", Type: FieldNumber, Required: true, Placeholder: "10"},
				{Name: "key_points", Label: "Key Points (comma-separated)", Type: FieldTextarea, Placeholder: "Point 1, Point 2, Point 3"},
				{Name: "target_audience", Label: "Target Audience", Type: FieldText, Placeholder: `e.g., "New YouTubers"`},
				{Name: "call_to_action", Label: "Call to Action", Type: FieldText, Placeholder: `e.g., "Subscribe for weekly tips"`},
			},
			generate: func(in Input) (any, error) { return engine.GenerateScriptOutline(in) },
		},
		{
			Slug:        "thumbnail-brief",
			Name:        "Thumbnail Brief Creator",
			Description: "Generate thumbnail concepts with text, visuals, and composition tips",
			Icon:        "Image",
			Fields: []Field{
				{Name: "topic", Label: "Video Topic", Type: FieldText, Required: true, Placeholder: `e.g., "iPhone vs Android"`},
				{Name: "emotion", Label: "Desired Emotion", Type: FieldSelect, Options: []string{"Curiosity", "Excitement", "Shock", "Trust", "Fun"}},
				{Name: "target_audience", Label: "Target Audience", Type: FieldText, Placeholder: `e.g., "Tech enthusiasts"`},
				{Name: "competitor_style", Label: "Competitor Reference", Type: FieldText, Placeholder: `e.g., "MKBHD style"`},
			},
			generate: func(in Input) (any, error) { return engine.GenerateThumbnailBrief(in) },
		},
		{
			Slug:        "seo-toolkit",
			Name:        "SEO Toolkit",
			Description: "Generate optimized descriptions, tags, chapters, and pinned comments",
			Icon:        "Search",
			Fields: []Field{
				{Name: "topic", Label: "Video Topic", Type: FieldText, Required: true, Placeholder: `e.g., "React tutorial"`},
				{Name: "video_title", Label: "Video Title", Type: FieldText, Placeholder: "Your planned title"},
				{Name: "target_keywords", Label: "Target Keywords (comma-separated)", Type: FieldTextarea, Placeholder: "react, javascript, web development"},
				{Name: "video_length", Label: "Video Length (minutes)", Type: FieldNumber, Placeholder: "15"},
			},
			generate: func(in Input) (any, error) { return engine.GenerateSeoToolkit(in) },
		},
		{
			Slug:        "upload-checklist",
			Name:        "Upload Checklist",
			Description: "Complete pre-publish, publish day, and post-publish checklists",
			Icon:        "CheckSquare",
			Fields: []Field{
				{Name: "topic", Label: "Video Topic", Type: FieldText, Required: true, Placeholder: `e.g., "My new video"`},
				{Name: "scheduled_date", Label: "Scheduled Date", Type: FieldText, Placeholder: `e.g., "June 15, 2025"`},
				{Name: "is_part_of_series", Label: "Part of a Series?", Type: FieldSelect, Options: []string{"Yes", "No"}},
			},
			generate: func(in Input) (any, error) { return engine.GenerateUploadChecklist(in) },
		},
		{
			Slug:        "analytics-tracker",
			Name:        "Analytics Tracker",
			Description: "Track and analyze your video performance metrics",
			Icon:        "BarChart3",
			ComingSoon:  true,
			Fields:      []Field{},
		},
	}

	r := &Registry{defs: make(map[string]Definition, len(defs))}

	for _, def := range defs {
		r.defs[def.Slug] = def
		r.order = append(r.order, def.Slug)
	}

	return r
}
