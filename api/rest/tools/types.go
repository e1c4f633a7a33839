package tools

import (
	"codeberg.org/creatorkit/server/internal/toolkit"
)

// successful generation response; RemainingUses is omitted for
// anonymous callers and -1 for unlimited plans
type GenerateResponse struct {
	Output        any  `json:"output"`
	RemainingUses *int `json:"remaining_uses,omitempty"`
	Saved         bool `json:"saved"`
}

// ListResponse wraps the tool catalog
type ListResponse struct {
	Tools []toolkit.Definition `json:"tools"`
}
