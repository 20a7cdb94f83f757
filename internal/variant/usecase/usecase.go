package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/guard"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/variant"
	"github.com/fekuna/omnipos-catalog-service/internal/variant/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type variantUseCase struct {
	repo   variant.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

// NewVariantUseCase never checks that the parent product exists; productId
// is a logical reference.
func NewVariantUseCase(repo variant.Repository, log logger.ZapLogger) variant.UseCase {
	return &variantUseCase{
		repo:   repo,
		logger: log,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (uc *variantUseCase) CreateVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error) {
	v, err := guard.CreateUnique(ctx, uc.repo.SKUExists, input.SKU, "Variant SKU",
		func(ctx context.Context) (*model.ProductVariant, error) {
			at := uc.now()
			return uc.repo.Create(ctx, &model.ProductVariant{
				VariantID:  uuid.New().String(),
				ProductID:  input.ProductID,
				SKU:        input.SKU,
				Name:       input.Name,
				Attributes: model.Document(input.Attributes),
				Active:     true,
				BaseModel:  model.BaseModel{CreatedAt: at, UpdatedAt: at},
			})
		})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Variant created",
		zap.String("variant_id", v.VariantID),
		zap.String("product_id", v.ProductID),
		zap.String("sku", v.SKU),
	)
	return v, nil
}

func (uc *variantUseCase) GetVariant(ctx context.Context, ref dto.VariantRef) (*model.ProductVariant, error) {
	v, err := uc.repo.FindByID(ctx, ref.ProductID, ref.VariantID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("Product variant not found")
	}
	return v, nil
}

func (uc *variantUseCase) ListVariants(ctx context.Context, filters *dto.VariantFilters) (query.Page[model.ProductVariant], error) {
	variants, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return query.Page[model.ProductVariant]{}, err
	}
	return query.NewPage(variants, filters.Params, count), nil
}

func (uc *variantUseCase) UpdateVariant(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error) {
	v, err := uc.repo.Update(ctx, input, uc.now())
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("Product variant not found")
	}
	return v, nil
}

func (uc *variantUseCase) DeleteVariant(ctx context.Context, ref dto.VariantRef) error {
	if err := uc.repo.Delete(ctx, ref.VariantID, uc.now()); err != nil {
		return err
	}
	uc.logger.Info("Variant deactivated", zap.String("variant_id", ref.VariantID))
	return nil
}
