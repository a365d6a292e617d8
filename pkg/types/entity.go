package types

// Identifiable is implemented by every backend record, so generic helpers
// can find rows by id.
type Identifiable interface {
	GetID() uint64
}

// Option is one choice of an autocomplete widget.
type Option struct {
	ID       uint64 `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}
