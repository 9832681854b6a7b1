package entity

import "time"

type DocumentKind string

const (
	DocumentKindMenu       DocumentKind = "menu"
	DocumentKindGuidelines DocumentKind = "guidelines"
)

func (k DocumentKind) Valid() bool {
	return k == DocumentKindMenu || k == DocumentKindGuidelines
}

type Document struct {
	ID        string       `db:"id"`
	Kind      DocumentKind `db:"kind"`
	Filename  string       `db:"filename"`
	Location  string       `db:"location"`
	CreatedAt time.Time    `db:"created_at"`
}

// DocumentChunk is one retrievable slice of an uploaded document.
type DocumentChunk struct {
	ID         int64        `db:"id"`
	DocumentID string       `db:"document_id"`
	Kind       DocumentKind `db:"kind"`
	Position   int          `db:"position"`
	Content    string       `db:"content"`
}
