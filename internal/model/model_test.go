package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
)

func TestDocumentDefaultsToEmptyObject(t *testing.T) {
	for _, in := range []types.JSONText{nil, types.JSONText(""), types.JSONText("null")} {
		if got := string(Document(in)); got != "{}" {
			t.Errorf("Document(%q) = %s", in, got)
		}
	}
	if got := string(Document(types.JSONText(`{"color":"red"}`))); got != `{"color":"red"}` {
		t.Errorf("Document kept %s", got)
	}
}

func TestLocationWireShape(t *testing.T) {
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	loc := Location{
		LocationID:   "l-1",
		Code:         "WH-01",
		Name:         "Main",
		LocationType: "WAREHOUSE",
		IsActive:     true,
		Address:      types.JSONText(`{"city":"Jakarta"}`),
		BaseModel:    BaseModel{CreatedAt: at, UpdatedAt: at},
	}
	buf, err := json.Marshal(loc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"locationId":"l-1","code":"WH-01","name":"Main","locationType":"WAREHOUSE","isActive":true,` +
		`"address":{"city":"Jakarta"},"createdAt":"2026-03-01T08:00:00Z","updatedAt":"2026-03-01T08:00:00Z"}`
	if string(buf) != want {
		t.Fatalf("got  %s\nwant %s", buf, want)
	}
}

func TestTouch(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := BaseModel{CreatedAt: created, UpdatedAt: created}
	b.Touch(created.Add(-time.Minute))
	if !b.UpdatedAt.Equal(created) {
		t.Fatalf("updated_at moved before created_at: %v", b.UpdatedAt)
	}
	b.Touch(created.Add(time.Minute))
	if !b.UpdatedAt.Equal(created.Add(time.Minute)) {
		t.Fatalf("updated_at = %v", b.UpdatedAt)
	}
}
