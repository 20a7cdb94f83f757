package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestid"
	"go.uber.org/zap"
)

// Operation names one dispatchable call, e.g. "product.create".
type Operation string

// Endpoint executes an operation on its JSON-encoded request.
type Endpoint func(ctx context.Context, payload json.RawMessage) (any, error)

type Route struct {
	Op       Operation
	Endpoint Endpoint
}

// Empty is the request or response of operations that carry nothing.
type Empty struct{}

// Handle adapts a typed function into a Route.
func Handle[Req, Resp any](op Operation, fn func(context.Context, Req) (Resp, error)) Route {
	return Route{
		Op: op,
		Endpoint: func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req Req
			if len(payload) > 0 {
				if err := json.Unmarshal(payload, &req); err != nil {
					return nil, apperr.Internal("decode "+string(op)+" request", err)
				}
			}
			resp, err := fn(ctx, req)
			if err != nil {
				return nil, err
			}
			return resp, nil
		},
	}
}

// Registry is the dispatch table, fixed once built.
type Registry struct {
	routes map[Operation]Endpoint
	log    logger.ZapLogger
}

func NewRegistry(log logger.ZapLogger, groups ...[]Route) (*Registry, error) {
	routes := make(map[Operation]Endpoint)
	for _, group := range groups {
		for _, r := range group {
			if r.Op == "" || r.Endpoint == nil {
				return nil, fmt.Errorf("proxy: incomplete route %q", r.Op)
			}
			if _, dup := routes[r.Op]; dup {
				return nil, fmt.Errorf("proxy: duplicate operation %q", r.Op)
			}
			routes[r.Op] = r.Endpoint
		}
	}
	return &Registry{routes: routes, log: log}, nil
}

func (r *Registry) Operations() []Operation {
	ops := make([]Operation, 0, len(r.routes))
	for op := range r.routes {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Dispatch runs op exactly once. Every outcome, including a panic, comes
// back as a payload or a detached failure.
func (r *Registry) Dispatch(ctx context.Context, op Operation, payload json.RawMessage) (out json.RawMessage, failure *apperr.Error) {
	log := r.log.With(
		zap.String("operation", string(op)),
		zap.String("requestId", requestid.FromContext(ctx)),
	)

	endpoint, ok := r.routes[op]
	if !ok {
		log.Error("Unknown operation")
		return nil, apperr.New(apperr.KindInternal, "unknown operation "+string(op))
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("Operation panicked",
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			out, failure = nil, apperr.New(apperr.KindInternal, "internal error")
		}
	}()

	result, err := endpoint(ctx, payload)
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindInternal, apperr.KindTransient:
			log.Error("Operation failed", zap.Error(err))
		default:
			log.Debug("Operation rejected", zap.Error(err))
		}
		return nil, apperr.Detach(err)
	}

	buf, err := json.Marshal(result)
	if err != nil {
		log.Error("Failed to encode result", zap.Error(err))
		return nil, apperr.New(apperr.KindInternal, "encode "+string(op)+" result")
	}
	return buf, nil
}
