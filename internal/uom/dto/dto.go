package dto

import "github.com/fekuna/omnipos-catalog-service/internal/query"

type UOMFilters struct {
	query.Params
	Code string `json:"code,omitempty"` // contains
	Name string `json:"name,omitempty"` // contains
}

type UOMID struct {
	UOMID string `json:"uomId"`
}

type CreateUOMInput struct {
	Code     string  `json:"code" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	BaseUnit *string `json:"baseUnit,omitempty"`
}

type UpdateUOMInput struct {
	UOMID string `json:"uomId"`
	Name  string `json:"name" validate:"required"`
	// BaseUnit keeps its current value when nil.
	BaseUnit *string `json:"baseUnit,omitempty"`
}
