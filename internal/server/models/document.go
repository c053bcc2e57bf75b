package models

import "time"

// Document is a text document owned by a single user. CreatedBy is set
// server-side on creation and never changes afterwards.
type Document struct {
	ID        string
	Title     string
	Content   string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentPatch carries a partial update. Nil fields are left unchanged.
type DocumentPatch struct {
	Title   *string
	Content *string
}
