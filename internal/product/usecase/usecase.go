package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/guard"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
		now:    now,
	}
}

// now is microsecond precision, the resolution the store keeps.
func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	p, err := guard.CreateUnique(ctx, uc.repo.SKUExists, input.SKU, "Product SKU",
		func(ctx context.Context) (*model.Product, error) {
			at := uc.now()
			return uc.repo.Create(ctx, &model.Product{
				ProductID:   uuid.New().String(),
				SKU:         input.SKU,
				Name:        input.Name,
				ProductType: input.ProductType,
				BaseUOM:     input.BaseUOM,
				Active:      true,
				Metadata:    model.Document(input.Metadata),
				BaseModel:   model.BaseModel{CreatedAt: at, UpdatedAt: at},
			})
		})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Product created", zap.String("product_id", p.ProductID), zap.String("sku", p.SKU))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) (query.Page[model.Product], error) {
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return query.Page[model.Product]{}, err
	}
	return query.NewPage(products, filters.Params, count), nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.Update(ctx, input, uc.now())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

// DeleteProduct deactivates the product; an unknown id is not an error.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id, uc.now()); err != nil {
		return err
	}
	uc.logger.Info("Product deactivated", zap.String("product_id", id))
	return nil
}
