package model

import "time"

// Note is the only entity. Collection invariants (non-empty, sorted by
// UpdatedAt descending) are maintained by the store, not here.
type Note struct {
	ID string `json:"id"`

	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
	Content string   `json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
