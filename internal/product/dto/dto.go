package dto

import (
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/jmoiron/sqlx/types"
)

type ProductFilters struct {
	query.Params
	Name        string `json:"name,omitempty"`        // contains
	ProductType string `json:"productType,omitempty"` // exact
}

type ProductID struct {
	ProductID string `json:"productId"`
}

type CreateProductInput struct {
	SKU         string         `json:"sku" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	ProductType string         `json:"productType" validate:"required"`
	BaseUOM     string         `json:"baseUom" validate:"required"`
	Metadata    types.JSONText `json:"metadata,omitempty" validate:"jsonobject"`
}

// UpdateProductInput never carries the SKU; it is immutable.
type UpdateProductInput struct {
	ProductID   string         `json:"productId"`
	Name        string         `json:"name" validate:"required"`
	ProductType string         `json:"productType" validate:"required"`
	Metadata    types.JSONText `json:"metadata,omitempty" validate:"jsonobject"`
}
