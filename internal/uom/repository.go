package uom

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/uom/dto"
)

type Repository interface {
	Create(ctx context.Context, u *model.UnitOfMeasure) (*model.UnitOfMeasure, error)
	FindByID(ctx context.Context, id string) (*model.UnitOfMeasure, error)
	FindAll(ctx context.Context, filters *dto.UOMFilters) ([]model.UnitOfMeasure, int, error)
	Update(ctx context.Context, input *dto.UpdateUOMInput, at time.Time) (*model.UnitOfMeasure, error)
	Delete(ctx context.Context, id string) error

	CodeExists(ctx context.Context, code string) (bool, error)
}
