// Package guard runs the check-then-insert sequence behind every create.
//
// The existence check only fails fast. Two callers racing on one key can
// both pass it; the store's UNIQUE constraint decides, and its violation is
// reported as the same conflict.
package guard

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
)

type ExistsFunc func(ctx context.Context, key string) (bool, error)

func CreateUnique[T any](
	ctx context.Context,
	exists ExistsFunc,
	key, label string,
	insert func(ctx context.Context) (*T, error),
) (*T, error) {
	taken, err := exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict(label)
	}

	item, err := insert(ctx)
	if err != nil {
		if postgres.IsUniqueViolation(err) || apperr.KindOf(err) == apperr.KindConflict {
			return nil, conflict(label)
		}
		return nil, err
	}
	return item, nil
}

func conflict(label string) *apperr.Error {
	return apperr.Conflict("%s already exists", label)
}
