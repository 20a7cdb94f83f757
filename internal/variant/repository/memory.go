package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

type MemoryRepository struct {
	store *resource.MemoryStore[model.ProductVariant]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: resource.NewMemoryStore(resource.MemoryTable[model.ProductVariant]{
		Table:  Table,
		ID:     func(v *model.ProductVariant) string { return v.VariantID },
		Key:    func(v *model.ProductVariant) string { return v.SKU },
		Active: func(v *model.ProductVariant) bool { return v.Active },
		Retire: func(v *model.ProductVariant) { v.Active = false },
		Touch:  func(v *model.ProductVariant, at time.Time) { v.Touch(at) },
		Order: map[string]func(a, b *model.ProductVariant) int{
			"sku":        func(a, b *model.ProductVariant) int { return strings.Compare(a.SKU, b.SKU) },
			"name":       func(a, b *model.ProductVariant) int { return strings.Compare(a.Name, b.Name) },
			"created_at": func(a, b *model.ProductVariant) int { return resource.CompareTime(a.CreatedAt, b.CreatedAt) },
			"updated_at": func(a, b *model.ProductVariant) int { return resource.CompareTime(a.UpdatedAt, b.UpdatedAt) },
		},
	})}
}

func (r *MemoryRepository) Create(ctx context.Context, v *model.ProductVariant) (*model.ProductVariant, error) {
	return r.store.Insert(ctx, v)
}

func (r *MemoryRepository) FindByID(ctx context.Context, productID, variantID string) (*model.ProductVariant, error) {
	return r.store.Find(ctx, func(v *model.ProductVariant) bool {
		return v.VariantID == variantID && v.ProductID == productID
	})
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.VariantFilters) ([]model.ProductVariant, int, error) {
	return r.store.List(ctx, f.Params, func(v *model.ProductVariant) bool {
		return v.ProductID == f.ProductID && resource.ContainsFold(v.Name, f.Name)
	})
}

func (r *MemoryRepository) Update(ctx context.Context, in *dto.UpdateVariantInput, at time.Time) (*model.ProductVariant, error) {
	return r.store.Update(ctx, in.VariantID, at, func(v *model.ProductVariant) {
		v.Name = in.Name
		if model.DocumentOrNil(in.Attributes) != nil {
			v.Attributes = in.Attributes
		}
	})
}

func (r *MemoryRepository) Delete(ctx context.Context, variantID string, at time.Time) error {
	return r.store.Delete(ctx, variantID, at)
}

func (r *MemoryRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	return r.store.KeyExists(ctx, sku)
}
