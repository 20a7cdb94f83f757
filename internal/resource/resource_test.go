package resource

import (
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/query"
)

var variants = Table{
	Name:     "product_variant",
	ID:       "variant_id",
	Key:      "sku",
	KeyLabel: "Variant SKU",
	Active:   "active",
	Columns:  []string{"variant_id", "product_id", "sku", "name"},
	Sort:     query.SortColumns{Default: "sku"},
	Delete:   SoftDelete,
}

var uoms = Table{
	Name:     "unit_of_measure",
	ID:       "uom_id",
	Key:      "code",
	KeyLabel: "UoM code",
	Active:   "active",
	Columns:  []string{"uom_id", "code", "name"},
	Sort:     query.SortColumns{Default: "code"},
	Delete:   HardDelete,
}

func TestDeleteSQLFollowsPolicy(t *testing.T) {
	soft := "UPDATE product_variant SET active = false, updated_at = GREATEST($2, created_at) WHERE variant_id = $1 AND active = true"
	if got := variants.deleteSQL(); got != soft {
		t.Fatalf("soft delete:\n got %s\nwant %s", got, soft)
	}
	if got := uoms.deleteSQL(); got != "DELETE FROM unit_of_measure WHERE uom_id = $1" {
		t.Fatalf("hard delete: %s", got)
	}
}

func TestKeyExistsIgnoresLiveness(t *testing.T) {
	if got := variants.keyExistsSQL(); got != "SELECT COUNT(*) FROM product_variant WHERE sku = $1" {
		t.Fatalf("key check: %s", got)
	}
}

func TestReadsExcludeSoftDeletedRows(t *testing.T) {
	got := variants.selectSQL("variant_id = $1 AND product_id = $2")
	want := "SELECT variant_id, product_id, sku, name FROM product_variant WHERE variant_id = $1 AND product_id = $2 AND active = true LIMIT 1"
	if got != want {
		t.Fatalf("select:\n got %s\nwant %s", got, want)
	}

	if got := uoms.selectSQL("uom_id = $1"); got != "SELECT uom_id, code, name FROM unit_of_measure WHERE uom_id = $1 LIMIT 1" {
		t.Fatalf("hard-delete tables read every row: %s", got)
	}

	q := variants.Builder().Build(query.Params{Size: 20})
	if q.Count.SQL != "SELECT COUNT(*) FROM product_variant WHERE active = true" {
		t.Fatalf("count: %s", q.Count.SQL)
	}
}

func TestInsertSQL(t *testing.T) {
	got := uoms.insertSQL([]string{"uom_id", "code", "name"})
	want := "INSERT INTO unit_of_measure (uom_id, code, name) VALUES ($1, $2, $3) RETURNING uom_id, code, name"
	if got != want {
		t.Fatalf("insert:\n got %s\nwant %s", got, want)
	}
}

func TestUpdateSQL(t *testing.T) {
	got := variants.updateSQL([]Assign{Set("name", "Blue"), SetIfPresent("attributes", nil)})
	want := "UPDATE product_variant SET name = $1, attributes = COALESCE($2, attributes), updated_at = GREATEST($3, created_at)" +
		" WHERE variant_id = $4 AND active = true RETURNING variant_id, product_id, sku, name"
	if got != want {
		t.Fatalf("update:\n got %s\nwant %s", got, want)
	}
}

func TestDeletePolicyString(t *testing.T) {
	if SoftDelete.String() != "soft" || HardDelete.String() != "hard" {
		t.Fatal("unexpected policy names")
	}
}
