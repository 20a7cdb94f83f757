package repository

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
)

// Table rows are removed on delete, which frees the code for reuse.
var Table = resource.Table{
	Name:     "unit_of_measure",
	ID:       "uom_id",
	Key:      "code",
	KeyLabel: "UOM code",
	Active:   "active",
	Columns: []string{
		"uom_id", "code", "name", "base_unit",
		"active", "created_at", "updated_at",
	},
	Sort:   query.NewSortColumns("code", "code", "name", "base_unit", "created_at", "updated_at"),
	Delete: resource.HardDelete,
}

type PGRepository struct {
	store *resource.Store[model.UnitOfMeasure]
}

func NewPGRepository(pool *postgres.Pool) *PGRepository {
	return &PGRepository{store: resource.NewStore[model.UnitOfMeasure](pool, Table)}
}

func (r *PGRepository) Create(ctx context.Context, u *model.UnitOfMeasure) (*model.UnitOfMeasure, error) {
	return r.store.Insert(ctx, Table.Columns,
		u.UOMID, u.Code, u.Name, u.BaseUnit,
		u.Active, u.CreatedAt, u.UpdatedAt,
	)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.UnitOfMeasure, error) {
	return r.store.FindByID(ctx, id)
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.UOMFilters) ([]model.UnitOfMeasure, int, error) {
	return r.store.List(ctx, f.Params, func(b *query.Builder) {
		b.Contains("code", f.Code).Contains("name", f.Name)
	})
}

func (r *PGRepository) Update(ctx context.Context, in *dto.UpdateUOMInput, at time.Time) (*model.UnitOfMeasure, error) {
	var baseUnit any
	if in.BaseUnit != nil {
		baseUnit = *in.BaseUnit
	}
	return r.store.Update(ctx, in.UOMID, at,
		resource.Set("name", in.Name),
		resource.SetIfPresent("base_unit", baseUnit),
	)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id, time.Time{})
}

func (r *PGRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.store.KeyExists(ctx, code)
}
