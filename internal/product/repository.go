package product

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	// Update returns nil when no active product has the id.
	Update(ctx context.Context, input *dto.UpdateProductInput, at time.Time) (*model.Product, error)
	// Delete deactivates the product. Its SKU stays taken.
	Delete(ctx context.Context, id string, at time.Time) error

	SKUExists(ctx context.Context, sku string) (bool, error)
}
