package toolkit

import "fmt"

const (
	titleCount = 10
	hookCount  = 5
)

// generates 10 titles cycling through the 5 style categories plus 5
// opening hooks, one per hook template slot
func (e *Engine) GenerateTitleHook(in Input) (*TitleHookResult, error) {
	topic := in.Get("topic")
	niche := in.Get("niche")

	if topic == "" {
		topic = "this topic"
	}

	if niche == "" {
		niche = "your field"
	}

	data := map[string]string{
		"topic":                 topic,
		"niche":                 niche,
		"alternative":           niche,
		"hook_reason":           fmt.Sprintf("this will change how you think about %s", topic),
		"promise":               fmt.Sprintf("master %s faster than you thought possible", topic),
		"pain_point":            topic,
		"contrarian_statement":  fmt.Sprintf("everything you know about %s is wrong", topic),
		"method":                "strategy",
		"result":                fmt.Sprintf("achieve amazing results with %s", topic),
		"thing":                 "insight",
		"mistake":               "not understanding the fundamentals",
	}

	order := e.catalog.TitleOrder()
	titles := make([]TitleSuggestion, 0, titleCount)

	for i := 0; i < titleCount; i++ {
		category := order[i%len(order)]

		templates, err := e.catalog.TemplatesFor(category)
		if err != nil {
			return nil, err
		}

		// first pass through the categories uses template 0, second pass
		// template 1, so the two titles per category differ structurally
		template := templates[(i/len(order))%len(templates)]

		title, err := e.fill(template, data)
		if err != nil {
			return nil, err
		}

		tip, err := e.catalog.CategoryTip(category)
		if err != nil {
			return nil, err
		}

		titles = append(titles, TitleSuggestion{
			Title: title,
			Style: category,
			Tip:   tip,
		})
	}

	hookTemplates := e.catalog.HookTemplates()
	hooks := make([]HookSuggestion, 0, hookCount)

	for i := 0; i < hookCount && i < len(hookTemplates); i++ {
		hook, err := e.fill(hookTemplates[i], data)
		if err != nil {
			return nil, err
		}

		hooks = append(hooks, HookSuggestion{
			Hook:    hook,
			Type:    e.catalog.HookType(i),
			BestFor: e.catalog.HookBestFor(i),
		})
	}

	return &TitleHookResult{
		Titles:      titles,
		Hooks:       hooks,
		GeneratedAt: e.now().UTC(),
	}, nil
}
