package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
)

type MemoryRepository struct {
	store *resource.MemoryStore[model.Location]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: resource.NewMemoryStore(resource.MemoryTable[model.Location]{
		Table: Table,
		ID:    func(l *model.Location) string { return l.LocationID },
		Key:   func(l *model.Location) string { return l.Code },
		Touch: func(l *model.Location, at time.Time) { l.Touch(at) },
		Order: map[string]func(a, b *model.Location) int{
			"code":          func(a, b *model.Location) int { return strings.Compare(a.Code, b.Code) },
			"name":          func(a, b *model.Location) int { return strings.Compare(a.Name, b.Name) },
			"location_type": func(a, b *model.Location) int { return strings.Compare(a.LocationType, b.LocationType) },
			"created_at":    func(a, b *model.Location) int { return resource.CompareTime(a.CreatedAt, b.CreatedAt) },
			"updated_at":    func(a, b *model.Location) int { return resource.CompareTime(a.UpdatedAt, b.UpdatedAt) },
		},
	})}
}

func (r *MemoryRepository) Create(ctx context.Context, l *model.Location) (*model.Location, error) {
	return r.store.Insert(ctx, l)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Location, error) {
	return r.store.FindByID(ctx, id)
}

func (r *MemoryRepository) FindByCode(ctx context.Context, code string) (*model.Location, error) {
	return r.store.Find(ctx, func(l *model.Location) bool { return l.Code == code })
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.LocationFilters) ([]model.Location, int, error) {
	return r.store.List(ctx, f.Params, func(l *model.Location) bool {
		return resource.ContainsFold(l.Code, f.Code) &&
			resource.ContainsFold(l.Name, f.Name) &&
			(f.LocationType == "" || l.LocationType == f.LocationType) &&
			(!f.ActiveOnly || l.IsActive)
	})
}

func (r *MemoryRepository) Update(ctx context.Context, in *dto.UpdateLocationInput, at time.Time) (*model.Location, error) {
	return r.store.Update(ctx, in.LocationID, at, func(l *model.Location) {
		l.Name = in.Name
		l.LocationType = in.LocationType
		if model.DocumentOrNil(in.Address) != nil {
			l.Address = in.Address
		}
		if in.IsActive != nil {
			l.IsActive = *in.IsActive
		}
	})
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id, time.Time{})
}

func (r *MemoryRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.store.KeyExists(ctx, code)
}
