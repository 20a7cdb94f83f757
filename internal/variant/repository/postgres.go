package repository

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/resource"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

var Table = resource.Table{
	Name:     "product_variant",
	ID:       "variant_id",
	Key:      "sku",
	KeyLabel: "Variant SKU",
	Active:   "active",
	Columns: []string{
		"variant_id", "product_id", "sku", "name", "attributes",
		"active", "created_at", "updated_at",
	},
	Sort:   query.NewSortColumns("sku", "sku", "name", "created_at", "updated_at"),
	Delete: resource.SoftDelete,
}

type PGRepository struct {
	store *resource.Store[model.ProductVariant]
}

func NewPGRepository(pool *postgres.Pool) *PGRepository {
	return &PGRepository{store: resource.NewStore[model.ProductVariant](pool, Table)}
}

func (r *PGRepository) Create(ctx context.Context, v *model.ProductVariant) (*model.ProductVariant, error) {
	return r.store.Insert(ctx, Table.Columns,
		v.VariantID, v.ProductID, v.SKU, v.Name, v.Attributes,
		v.Active, v.CreatedAt, v.UpdatedAt,
	)
}

func (r *PGRepository) FindByID(ctx context.Context, productID, variantID string) (*model.ProductVariant, error) {
	return r.store.FindOne(ctx, "variant_id = $1 AND product_id = $2", variantID, productID)
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.VariantFilters) ([]model.ProductVariant, int, error) {
	return r.store.List(ctx, f.Params, func(b *query.Builder) {
		b.Where("product_id = ?", f.ProductID).Contains("name", f.Name)
	})
}

func (r *PGRepository) Update(ctx context.Context, in *dto.UpdateVariantInput, at time.Time) (*model.ProductVariant, error) {
	return r.store.Update(ctx, in.VariantID, at,
		resource.Set("name", in.Name),
		resource.SetIfPresent("attributes", model.DocumentOrNil(in.Attributes)),
	)
}

func (r *PGRepository) Delete(ctx context.Context, variantID string, at time.Time) error {
	return r.store.Delete(ctx, variantID, at)
}

func (r *PGRepository) SKUExists(ctx context.Context, sku string) (bool, error) {
	return r.store.KeyExists(ctx, sku)
}
