package resource

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/jmoiron/sqlx"
)

// Store runs Table's statements on connections taken from the shared pool.
// Each call holds exactly one connection and releases it on every path.
type Store[T any] struct {
	pool  *postgres.Pool
	table Table
}

func NewStore[T any](pool *postgres.Pool, table Table) *Store[T] {
	return &Store[T]{pool: pool, table: table}
}

func (s *Store[T]) Table() Table { return s.table }

func (s *Store[T]) withConn(ctx context.Context, fn func(*sqlx.Conn) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// List counts matching rows first, then fetches the requested page.
func (s *Store[T]) List(ctx context.Context, p query.Params, filter func(*query.Builder)) ([]T, int, error) {
	b := s.table.Builder()
	if filter != nil {
		filter(b)
	}
	q := b.Build(p)

	var (
		total int
		items []T
	)
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		if err := conn.GetContext(ctx, &total, q.Count.SQL, q.Count.Args...); err != nil {
			return apperr.Internal("count "+s.table.Name, err)
		}
		if err := conn.SelectContext(ctx, &items, q.Data.SQL, q.Data.Args...); err != nil {
			return apperr.Internal("list "+s.table.Name, err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindOne returns the live row matching cond, or nil when there is none.
func (s *Store[T]) FindOne(ctx context.Context, cond string, args ...any) (*T, error) {
	var item T
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &item, s.table.selectSQL(cond), args...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if apperr.KindOf(err) == apperr.KindTransient {
			return nil, err
		}
		return nil, apperr.Internal("get "+s.table.Name, err)
	}
	return &item, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return s.FindOne(ctx, s.table.ID+" = $1", id)
}

// KeyExists counts every row with the key, live or not.
func (s *Store[T]) KeyExists(ctx context.Context, key string) (bool, error) {
	var count int
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, s.table.keyExistsSQL(), key)
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindTransient {
			return false, err
		}
		return false, apperr.Internal("check "+s.table.KeyLabel, err)
	}
	return count > 0, nil
}

// Insert writes one row and returns it as stored. A natural-key collision
// reported by the store surfaces as a conflict.
func (s *Store[T]) Insert(ctx context.Context, columns []string, values ...any) (*T, error) {
	var item T
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &item, s.table.insertSQL(columns), values...)
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, apperr.Conflict("%s already exists", s.table.KeyLabel)
		}
		if apperr.KindOf(err) == apperr.KindTransient {
			return nil, err
		}
		return nil, apperr.Internal("insert "+s.table.Name, err)
	}
	return &item, nil
}

// Update applies set to the live row with id and returns the new row, or
// nil when no such row exists.
func (s *Store[T]) Update(ctx context.Context, id string, at time.Time, set ...Assign) (*T, error) {
	args := make([]any, 0, len(set)+2)
	for _, a := range set {
		args = append(args, a.Value)
	}
	args = append(args, at, id)

	var item T
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &item, s.table.updateSQL(set), args...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if apperr.KindOf(err) == apperr.KindTransient {
			return nil, err
		}
		return nil, apperr.Internal("update "+s.table.Name, err)
	}
	return &item, nil
}

// Delete applies the table's delete policy. Deleting an id that matches
// nothing succeeds.
func (s *Store[T]) Delete(ctx context.Context, id string, at time.Time) error {
	args := []any{id}
	if s.table.Delete == SoftDelete {
		args = append(args, at)
	}
	err := s.withConn(ctx, func(conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, s.table.deleteSQL(), args...)
		return err
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindTransient {
			return err
		}
		return apperr.Internal("delete "+s.table.Name, err)
	}
	return nil
}
