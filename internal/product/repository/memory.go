package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
)

// MemoryRepository keeps products in process, with the same soft delete
// and SKU reservation as the Postgres table.
type MemoryRepository struct {
	store *resource.MemoryStore[model.Product]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: resource.NewMemoryStore(resource.MemoryTable[model.Product]{
		Table:  Table,
		ID:     func(p *model.Product) string { return p.ProductID },
		Key:    func(p *model.Product) string { return p.SKU },
		Active: func(p *model.Product) bool { return p.Active },
		Retire: func(p *model.Product) { p.Active = false },
		Touch:  func(p *model.Product, at time.Time) { p.Touch(at) },
		Order: map[string]func(a, b *model.Product) int{
			"sku":          func(a, b *model.Product) int { return strings.Compare(a.SKU, b.SKU) },
			"name":         func(a, b *model.Product) int { return strings.Compare(a.Name, b.Name) },
			"product_type": func(a, b *model.Product) int { return strings.Compare(a.ProductType, b.ProductType) },
			"base_uom":     func(a, b *model.Product) int { return strings.Compare(a.BaseUOM, b.BaseUOM) },
			"created_at":   func(a, b *model.Product) int { return resource.CompareTime(a.CreatedAt, b.CreatedAt) },
			"updated_at":   func(a, b *model.Product) int { return resource.CompareTime(a.UpdatedAt, b.UpdatedAt) },
		},
	})}
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	return r.store.Insert(ctx, p)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.store.FindByID(ctx, id)
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	return r.store.List(ctx, f.Params, func(p *model.Product) bool {
		return resource.ContainsFold(p.Name, f.Name) && (f.ProductType == "" || p.ProductType == f.ProductType)
	})
}

func (r *MemoryRepository) Update(ctx context.Context, in *dto.UpdateProductInput, at time.Time) (*model.Product, error) {
	return r.store.Update(ctx, in.ProductID, at, func(p *model.Product) {
		p.Name = in.Name
		p.ProductType = in.ProductType
		if model.DocumentOrNil(in.Metadata) != nil {
			p.Metadata = in.Metadata
		}
	})
}

func (r *MemoryRepository) Delete(ctx context.Context, id string, at time.Time) error {
	return r.store.Delete(ctx, id, at)
}

func (r *MemoryRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	return r.store.KeyExists(ctx, sku)
}
