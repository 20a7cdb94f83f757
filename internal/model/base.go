package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

type BaseModel struct {
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Document returns doc, or an empty JSON object when doc is absent.
func Document(doc types.JSONText) types.JSONText {
	if len(doc) == 0 || string(doc) == "null" {
		return types.JSONText("{}")
	}
	return doc
}

// DocumentOrNil is the bind value for an optional document: nil when doc
// is absent so the column keeps its value.
func DocumentOrNil(doc types.JSONText) any {
	if len(doc) == 0 || string(doc) == "null" {
		return nil
	}
	return doc
}

// Touch sets UpdatedAt to at, but never earlier than CreatedAt.
func (b *BaseModel) Touch(at time.Time) {
	if at.Before(b.CreatedAt) {
		at = b.CreatedAt
	}
	b.UpdatedAt = at
}
