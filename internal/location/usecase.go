package location

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/location/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
)

type UseCase interface {
	CreateLocation(ctx context.Context, input *dto.CreateLocationInput) (*model.Location, error)
	GetLocation(ctx context.Context, id string) (*model.Location, error)
	GetLocationByCode(ctx context.Context, code string) (*model.Location, error)
	ListLocations(ctx context.Context, filters *dto.LocationFilters) (query.Page[model.Location], error)
	UpdateLocation(ctx context.Context, input *dto.UpdateLocationInput) (*model.Location, error)
	DeleteLocation(ctx context.Context, id string) error
}
