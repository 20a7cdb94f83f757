package model

type UnitOfMeasure struct {
	UOMID    string  `db:"uom_id" json:"uomId"`
	Code     string  `db:"code" json:"code"`
	Name     string  `db:"name" json:"name"`
	BaseUnit *string `db:"base_unit" json:"baseUnit"`
	Active   bool    `db:"active" json:"active"`
	BaseModel
}
