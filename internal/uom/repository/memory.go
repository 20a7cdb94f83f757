package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
)

type MemoryRepository struct {
	store *resource.MemoryStore[model.UnitOfMeasure]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: resource.NewMemoryStore(resource.MemoryTable[model.UnitOfMeasure]{
		Table: Table,
		ID:    func(u *model.UnitOfMeasure) string { return u.UOMID },
		Key:   func(u *model.UnitOfMeasure) string { return u.Code },
		Touch: func(u *model.UnitOfMeasure, at time.Time) { u.Touch(at) },
		Order: map[string]func(a, b *model.UnitOfMeasure) int{
			"code":       func(a, b *model.UnitOfMeasure) int { return strings.Compare(a.Code, b.Code) },
			"name":       func(a, b *model.UnitOfMeasure) int { return strings.Compare(a.Name, b.Name) },
			"base_unit":  compareBaseUnit,
			"created_at": func(a, b *model.UnitOfMeasure) int { return resource.CompareTime(a.CreatedAt, b.CreatedAt) },
			"updated_at": func(a, b *model.UnitOfMeasure) int { return resource.CompareTime(a.UpdatedAt, b.UpdatedAt) },
		},
	})}
}

// compareBaseUnit sorts NULL last, as Postgres does for ascending order.
func compareBaseUnit(a, b *model.UnitOfMeasure) int {
	switch {
	case a.BaseUnit == nil && b.BaseUnit == nil:
		return 0
	case a.BaseUnit == nil:
		return 1
	case b.BaseUnit == nil:
		return -1
	}
	return strings.Compare(*a.BaseUnit, *b.BaseUnit)
}

func (r *MemoryRepository) Create(ctx context.Context, u *model.UnitOfMeasure) (*model.UnitOfMeasure, error) {
	return r.store.Insert(ctx, u)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.UnitOfMeasure, error) {
	return r.store.FindByID(ctx, id)
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.UOMFilters) ([]model.UnitOfMeasure, int, error) {
	return r.store.List(ctx, f.Params, func(u *model.UnitOfMeasure) bool {
		return resource.ContainsFold(u.Code, f.Code) && resource.ContainsFold(u.Name, f.Name)
	})
}

func (r *MemoryRepository) Update(ctx context.Context, in *dto.UpdateUOMInput, at time.Time) (*model.UnitOfMeasure, error) {
	return r.store.Update(ctx, in.UOMID, at, func(u *model.UnitOfMeasure) {
		u.Name = in.Name
		if in.BaseUnit != nil {
			unit := *in.BaseUnit
			u.BaseUnit = &unit
		}
	})
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id, time.Time{})
}

func (r *MemoryRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.store.KeyExists(ctx, code)
}
