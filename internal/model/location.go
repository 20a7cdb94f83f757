package model

import "github.com/jmoiron/sqlx/types"

type Location struct {
	LocationID   string         `db:"location_id" json:"locationId"`
	Code         string         `db:"code" json:"code"`
	Name         string         `db:"name" json:"name"`
	LocationType string         `db:"location_type" json:"locationType"`
	IsActive     bool           `db:"is_active" json:"isActive"`
	Address      types.JSONText `db:"address" json:"address"`
	BaseModel
}
