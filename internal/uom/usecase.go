package uom

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
)

type UseCase interface {
	CreateUOM(ctx context.Context, input *dto.CreateUOMInput) (*model.UnitOfMeasure, error)
	GetUOM(ctx context.Context, id string) (*model.UnitOfMeasure, error)
	ListUOMs(ctx context.Context, filters *dto.UOMFilters) (query.Page[model.UnitOfMeasure], error)
	UpdateUOM(ctx context.Context, input *dto.UpdateUOMInput) (*model.UnitOfMeasure, error)
	DeleteUOM(ctx context.Context, id string) error
}
