package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/jmoiron/sqlx"
)

// Pool hands out exclusive connections from the shared *sqlx.DB. A caller
// that cannot get one within the acquisition timeout fails instead of
// queueing forever.
type Pool struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
}

func NewPool(db *sqlx.DB, acquireTimeout time.Duration) *Pool {
	return &Pool{db: db, acquireTimeout: acquireTimeout}
}

// Acquire returns a connection the caller must Close on every path.
func (p *Pool) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	conn, err := p.db.Connx(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Transient("connection pool exhausted", err)
		}
		return nil, apperr.Transient("acquire connection", err)
	}
	return conn, nil
}

func (p *Pool) DB() *sqlx.DB { return p.db }

func (p *Pool) Close() error { return p.db.Close() }
