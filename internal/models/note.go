package models

import "time"

// Note is a free-text interaction log entry on a client.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	ClientID  string    `json:"client_id" yaml:"client_id"`
	Content   string    `json:"content" yaml:"content"`
	CreatedBy string    `json:"created_by" yaml:"created_by"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// NotePatch lists the note fields an update may change.
type NotePatch struct {
	Content *string `json:"content,omitempty"`
}

// Apply merges the set fields of p over n.
func (p NotePatch) Apply(n *Note) {
	if p.Content != nil {
		n.Content = *p.Content
	}
}
