package runs

import (
	"codeberg.org/creatorkit/server/api/rest/pagination"
	"codeberg.org/creatorkit/server/creatorkit/runs"
)

// ListResponse wraps run history with pagination metadata
type ListResponse struct {
	Runs       []runs.Run      `json:"runs"`
	Pagination pagination.Meta `json:"pagination"`
}
