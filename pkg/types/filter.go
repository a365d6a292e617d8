package types

// Filter represents the list query the console sends to the backend:
// page, limit, filter text and an optional selected id.
//
// /equipments?page=2&limit=5&filter=bomba&id=0
type Filter struct {
	Search string `json:"search,omitempty"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	ID     uint64 `json:"id,omitempty"`
}

func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
