package model

import "github.com/jmoiron/sqlx/types"

type Product struct {
	ProductID   string         `db:"product_id" json:"productId"`
	SKU         string         `db:"sku" json:"sku"`
	Name        string         `db:"name" json:"name"`
	ProductType string         `db:"product_type" json:"productType"`
	BaseUOM     string         `db:"base_uom" json:"baseUom"` // UnitOfMeasure code, not enforced
	Active      bool           `db:"active" json:"active"`
	Metadata    types.JSONText `db:"metadata" json:"metadata"`
	BaseModel
}

type ProductVariant struct {
	VariantID  string         `db:"variant_id" json:"variantId"`
	ProductID  string         `db:"product_id" json:"productId"`
	SKU        string         `db:"sku" json:"sku"`
	Name       string         `db:"name" json:"name"`
	Attributes types.JSONText `db:"attributes" json:"attributes"`
	Active     bool           `db:"active" json:"active"`
	BaseModel
}
