package location

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, l *model.Location) (*model.Location, error)
	FindByID(ctx context.Context, id string) (*model.Location, error)
	FindByCode(ctx context.Context, code string) (*model.Location, error)
	FindAll(ctx context.Context, filters *dto.LocationFilters) ([]model.Location, int, error)
	Update(ctx context.Context, input *dto.UpdateLocationInput, at time.Time) (*model.Location, error)
	Delete(ctx context.Context, id string) error

	CodeExists(ctx context.Context, code string) (bool, error)
}
