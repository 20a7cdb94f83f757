package repository

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
)

// Table is hard delete. is_active is a plain attribute and reads do not
// filter on it unless asked to.
var Table = resource.Table{
	Name:     "location",
	ID:       "location_id",
	Key:      "code",
	KeyLabel: "Location code",
	Columns: []string{
		"location_id", "code", "name", "location_type",
		"is_active", "address", "created_at", "updated_at",
	},
	Sort:   query.NewSortColumns("code", "code", "name", "location_type", "created_at", "updated_at"),
	Delete: resource.HardDelete,
}

type PGRepository struct {
	store *resource.Store[model.Location]
}

func NewPGRepository(pool *postgres.Pool) *PGRepository {
	return &PGRepository{store: resource.NewStore[model.Location](pool, Table)}
}

func (r *PGRepository) Create(ctx context.Context, l *model.Location) (*model.Location, error) {
	return r.store.Insert(ctx, Table.Columns,
		l.LocationID, l.Code, l.Name, l.LocationType,
		l.IsActive, l.Address, l.CreatedAt, l.UpdatedAt,
	)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Location, error) {
	return r.store.FindByID(ctx, id)
}

func (r *PGRepository) FindByCode(ctx context.Context, code string) (*model.Location, error) {
	return r.store.FindOne(ctx, "code = $1", code)
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.LocationFilters) ([]model.Location, int, error) {
	return r.store.List(ctx, f.Params, func(b *query.Builder) {
		b.Contains("code", f.Code).
			Contains("name", f.Name).
			Eq("location_type", f.LocationType)
		if f.ActiveOnly {
			active := true
			b.Flag("is_active", &active)
		}
	})
}

func (r *PGRepository) Update(ctx context.Context, in *dto.UpdateLocationInput, at time.Time) (*model.Location, error) {
	var isActive any
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	return r.store.Update(ctx, in.LocationID, at,
		resource.Set("name", in.Name),
		resource.Set("location_type", in.LocationType),
		resource.SetIfPresent("address", model.DocumentOrNil(in.Address)),
		resource.SetIfPresent("is_active", isActive),
	)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id, time.Time{})
}

func (r *PGRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.store.KeyExists(ctx, code)
}
