package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/guard"
	"github.com/fekuna/omnipos-catalog-service/internal/location"
	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type locationUseCase struct {
	repo   location.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewLocationUseCase(repo location.Repository, log logger.ZapLogger) location.UseCase {
	return &locationUseCase{
		repo:   repo,
		logger: log,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (uc *locationUseCase) CreateLocation(ctx context.Context, input *dto.CreateLocationInput) (*model.Location, error) {
	l, err := guard.CreateUnique(ctx, uc.repo.CodeExists, input.Code, "Location code",
		func(ctx context.Context) (*model.Location, error) {
			at := uc.now()
			return uc.repo.Create(ctx, &model.Location{
				LocationID:   uuid.New().String(),
				Code:         input.Code,
				Name:         input.Name,
				LocationType: input.LocationType,
				IsActive:     true,
				Address:      model.Document(input.Address),
				BaseModel:    model.BaseModel{CreatedAt: at, UpdatedAt: at},
			})
		})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Location created",
		zap.String("location_id", l.LocationID),
		zap.String("code", l.Code),
		zap.String("location_type", l.LocationType),
	)
	return l, nil
}

func (uc *locationUseCase) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	return found(uc.repo.FindByID(ctx, id))
}

func (uc *locationUseCase) GetLocationByCode(ctx context.Context, code string) (*model.Location, error) {
	return found(uc.repo.FindByCode(ctx, code))
}

func (uc *locationUseCase) ListLocations(ctx context.Context, filters *dto.LocationFilters) (query.Page[model.Location], error) {
	locations, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return query.Page[model.Location]{}, err
	}
	return query.NewPage(locations, filters.Params, count), nil
}

func (uc *locationUseCase) UpdateLocation(ctx context.Context, input *dto.UpdateLocationInput) (*model.Location, error) {
	return found(uc.repo.Update(ctx, input, uc.now()))
}

func (uc *locationUseCase) DeleteLocation(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Location deleted", zap.String("location_id", id))
	return nil
}

func found(l *model.Location, err error) (*model.Location, error) {
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperr.NotFound("Location not found")
	}
	return l, nil
}
