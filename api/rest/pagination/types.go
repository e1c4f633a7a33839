package pagination

// listing bounds for history endpoints
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params are the sanitized limit and offset for one listing query.
type Params struct {
	Limit  int
	Offset int
}

// Meta describes the page a listing response covers.
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Parse clamps raw query values to the listing bounds: a missing or
// non-positive limit falls back to the default, an oversized limit is
// capped, a negative offset becomes zero.
func Parse(limit, offset int) Params {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// NewMeta derives page metadata from the sanitized params and the total
// row count.
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}
