package variant

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

type Repository interface {
	Create(ctx context.Context, v *model.ProductVariant) (*model.ProductVariant, error)
	// FindByID only returns an active variant that belongs to productID.
	FindByID(ctx context.Context, productID, variantID string) (*model.ProductVariant, error)
	FindAll(ctx context.Context, filters *dto.VariantFilters) ([]model.ProductVariant, int, error)
	Update(ctx context.Context, input *dto.UpdateVariantInput, at time.Time) (*model.ProductVariant, error)
	Delete(ctx context.Context, variantID string, at time.Time) error

	SKUExists(ctx context.Context, sku string) (bool, error)
}
