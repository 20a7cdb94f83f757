package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/guard"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/uom"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type uomUseCase struct {
	repo   uom.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewUOMUseCase(repo uom.Repository, log logger.ZapLogger) uom.UseCase {
	return &uomUseCase{
		repo:   repo,
		logger: log,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (uc *uomUseCase) CreateUOM(ctx context.Context, input *dto.CreateUOMInput) (*model.UnitOfMeasure, error) {
	u, err := guard.CreateUnique(ctx, uc.repo.CodeExists, input.Code, "UOM code",
		func(ctx context.Context) (*model.UnitOfMeasure, error) {
			at := uc.now()
			return uc.repo.Create(ctx, &model.UnitOfMeasure{
				UOMID:     uuid.New().String(),
				Code:      input.Code,
				Name:      input.Name,
				BaseUnit:  input.BaseUnit,
				Active:    true,
				BaseModel: model.BaseModel{CreatedAt: at, UpdatedAt: at},
			})
		})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Unit of measure created", zap.String("uom_id", u.UOMID), zap.String("code", u.Code))
	return u, nil
}

func (uc *uomUseCase) GetUOM(ctx context.Context, id string) (*model.UnitOfMeasure, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("Unit of measure not found")
	}
	return u, nil
}

func (uc *uomUseCase) ListUOMs(ctx context.Context, filters *dto.UOMFilters) (query.Page[model.UnitOfMeasure], error) {
	units, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return query.Page[model.UnitOfMeasure]{}, err
	}
	return query.NewPage(units, filters.Params, count), nil
}

func (uc *uomUseCase) UpdateUOM(ctx context.Context, input *dto.UpdateUOMInput) (*model.UnitOfMeasure, error) {
	u, err := uc.repo.Update(ctx, input, uc.now())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("Unit of measure not found")
	}
	return u, nil
}

func (uc *uomUseCase) DeleteUOM(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Unit of measure deleted", zap.String("uom_id", id))
	return nil
}
