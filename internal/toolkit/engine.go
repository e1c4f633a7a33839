package toolkit

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// placeholder tokens look like {topic}, {action}, {hook_reason}
var placeholderRegex = regexp.MustCompile(`\{([a-z_]+)\}`)

// picks a uniform-random index in [0, n)
type PickFunc func(n int) int

// Engine produces structured tool output from validated input and the
// template catalog. Generation is pure computation apart from two injected
// capabilities: the synonym picker and the clock. Production uses the
// shared math/rand source; tests inject deterministic replacements so the
// substitution algorithm can be asserted exactly.
type Engine struct {
	catalog *Catalog
	pick    PickFunc
	now     func() time.Time
}

// returns an engine with the built-in catalog and a random picker
func New() *Engine {
	return &Engine{
		catalog: DefaultCatalog(),
		pick:    rand.Intn,
		now:     time.Now,
	}
}

// returns an engine with injected picker and clock for deterministic tests
func NewWithOptions(catalog *Catalog, pick PickFunc, now func() time.Time) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	if pick == nil {
		pick = rand.Intn
	}

	if now == nil {
		now = time.Now
	}

	return &Engine{catalog: catalog, pick: pick, now: now}
}

// fills a template: each placeholder the template itself declares takes
// the caller-supplied value when one exists, otherwise one pick from its
// synonym pool (one pick per distinct placeholder, applied to every
// occurrence). Only template-declared placeholders are filled - brace
// tokens arriving inside supplied values are user text and pass through
// untouched. A template placeholder with neither a supplied value nor a
// pool entry is a catalog authoring bug and fails loudly.
func (e *Engine) fill(template string, data map[string]string) (string, error) {
	picked := map[string]string{}

	var fillErr error

	result := placeholderRegex.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]

		if value, ok := data[name]; ok {
			return value
		}

		if value, ok := picked[name]; ok {
			return value
		}

		pool, ok := e.catalog.SynonymsFor(name)
		if !ok || len(pool) == 0 {
			fillErr = fmt.Errorf("template %q: placeholder {%s} has no supplied value and no synonym pool", template, name)
			return token
		}

		picked[name] = pool[e.pick(len(pool))]

		return picked[name]
	})

	if fillErr != nil {
		return "", fillErr
	}

	return result, nil
}

// formats a second offset as M:SS with zero-padded seconds
func formatTimestamp(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
