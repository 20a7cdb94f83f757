// Package schema embeds the catalog DDL. It is not a migration tool: the
// statements are idempotent and meant for provisioning and tests.
package schema

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var DDL string

var Tables = []string{"product", "product_variant", "unit_of_measure", "location"}

func Apply(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, DDL)
	return err
}

// Truncate empties every catalog table.
func Truncate(ctx context.Context, db *sqlx.DB) error {
	for _, t := range Tables {
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE "+t); err != nil {
			return err
		}
	}
	return nil
}
