package variant

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
)

type UseCase interface {
	CreateVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error)
	GetVariant(ctx context.Context, ref dto.VariantRef) (*model.ProductVariant, error)
	ListVariants(ctx context.Context, filters *dto.VariantFilters) (query.Page[model.ProductVariant], error)
	UpdateVariant(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, ref dto.VariantRef) error
}
