package model

// Page is the uniform envelope returned by every paginated list endpoint.
// Data may arrive absent or null; consumers default it to an empty slice.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// Items returns the page data, never nil.
func (p *Page[T]) Items() []T {
	if p == nil || p.Data == nil {
		return []T{}
	}
	return p.Data
}
