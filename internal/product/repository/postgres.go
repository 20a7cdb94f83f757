package repository

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
)

var Table = resource.Table{
	Name:     "product",
	ID:       "product_id",
	Key:      "sku",
	KeyLabel: "Product SKU",
	Active:   "active",
	Columns: []string{
		"product_id", "sku", "name", "product_type", "base_uom",
		"active", "metadata", "created_at", "updated_at",
	},
	Sort:   query.NewSortColumns("sku", "sku", "name", "product_type", "base_uom", "created_at", "updated_at"),
	Delete: resource.SoftDelete,
}

type PGRepository struct {
	store *resource.Store[model.Product]
}

func NewPGRepository(pool *postgres.Pool) *PGRepository {
	return &PGRepository{store: resource.NewStore[model.Product](pool, Table)}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	return r.store.Insert(ctx, Table.Columns,
		p.ProductID, p.SKU, p.Name, p.ProductType, p.BaseUOM,
		p.Active, p.Metadata, p.CreatedAt, p.UpdatedAt,
	)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.store.FindByID(ctx, id)
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	return r.store.List(ctx, f.Params, func(b *query.Builder) {
		b.Contains("name", f.Name).Eq("product_type", f.ProductType)
	})
}

func (r *PGRepository) Update(ctx context.Context, in *dto.UpdateProductInput, at time.Time) (*model.Product, error) {
	return r.store.Update(ctx, in.ProductID, at,
		resource.Set("name", in.Name),
		resource.Set("product_type", in.ProductType),
		resource.SetIfPresent("metadata", model.DocumentOrNil(in.Metadata)),
	)
}

func (r *PGRepository) Delete(ctx context.Context, id string, at time.Time) error {
	return r.store.Delete(ctx, id, at)
}

func (r *PGRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	return r.store.KeyExists(ctx, sku)
}
