package dto

import (
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/jmoiron/sqlx/types"
)

type VariantFilters struct {
	query.Params
	ProductID string `json:"productId"`
	Name      string `json:"name,omitempty"` // contains
}

type VariantRef struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
}

type CreateVariantInput struct {
	ProductID  string         `json:"productId"`
	SKU        string         `json:"sku" validate:"required"`
	Name       string         `json:"name" validate:"required"`
	Attributes types.JSONText `json:"attributes,omitempty" validate:"jsonobject"`
}

type UpdateVariantInput struct {
	ProductID  string         `json:"productId"`
	VariantID  string         `json:"variantId"`
	Name       string         `json:"name" validate:"required"`
	Attributes types.JSONText `json:"attributes,omitempty" validate:"jsonobject"`
}
