package dto

import (
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/jmoiron/sqlx/types"
)

type LocationFilters struct {
	query.Params
	Code         string `json:"code,omitempty"` // contains
	Name         string `json:"name,omitempty"` // contains
	LocationType string `json:"locationType,omitempty"`
	ActiveOnly   bool   `json:"activeOnly"`
}

type LocationID struct {
	LocationID string `json:"locationId"`
}

type LocationCode struct {
	Code string `json:"code"`
}

type CreateLocationInput struct {
	Code         string         `json:"code" validate:"required"`
	Name         string         `json:"name" validate:"required"`
	LocationType string         `json:"locationType" validate:"required"`
	Address      types.JSONText `json:"address,omitempty" validate:"jsonobject"`
}

type UpdateLocationInput struct {
	LocationID   string         `json:"locationId"`
	Name         string         `json:"name" validate:"required"`
	LocationType string         `json:"locationType" validate:"required"`
	Address      types.JSONText `json:"address,omitempty" validate:"jsonobject"`
	IsActive     *bool          `json:"isActive,omitempty"`
}
