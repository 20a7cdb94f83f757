// Package proxy is the asynchronous boundary between request handling and
// data access. Callers name an operation and get back a Future; whether the
// operation runs in this process or on a remote worker is decided by the
// Transport and is invisible at the call site.
package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Transport carries one encoded invocation. Failures are returned as
// *apperr.Error so both transports look the same to the caller.
type Transport interface {
	Call(ctx context.Context, op Operation, payload json.RawMessage) (json.RawMessage, error)
}

type LocalTransport struct {
	registry *Registry
}

func NewLocalTransport(r *Registry) *LocalTransport {
	return &LocalTransport{registry: r}
}

func (t *LocalTransport) Call(ctx context.Context, op Operation, payload json.RawMessage) (json.RawMessage, error) {
	out, failure := t.registry.Dispatch(ctx, op, payload)
	if failure != nil {
		return nil, failure
	}
	return out, nil
}

type Proxy struct {
	transport Transport
	sem       *semaphore.Weighted
	log       logger.ZapLogger
	metrics   *Metrics
	tracer    trace.Tracer
}

type Option func(*Proxy)

// WithWorkers bounds the number of invocations in flight.
func WithWorkers(n int64) Option {
	return func(p *Proxy) {
		if n > 0 {
			p.sem = semaphore.NewWeighted(n)
		}
	}
}

func WithLogger(l logger.ZapLogger) Option {
	return func(p *Proxy) { p.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(p *Proxy) { p.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(p *Proxy) { p.tracer = t }
}

func New(t Transport, opts ...Option) *Proxy {
	p := &Proxy{
		transport: t,
		log:       logger.NewNop(),
		tracer:    otel.Tracer("github.com/fekuna/omnipos-catalog-service/internal/proxy"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Invoke starts op and returns immediately. The operation runs detached
// from ctx cancellation and is never retried.
func Invoke[Resp any](ctx context.Context, p *Proxy, op Operation, req any) *Future[Resp] {
	f := newFuture[Resp]()
	ctx = context.WithoutCancel(ctx)

	go func() {
		var (
			resp Resp
			err  error
		)
		defer func() {
			if rec := recover(); rec != nil {
				p.log.Error("Invocation panicked", zap.String("operation", string(op)), zap.Any("panic", rec))
				var zero Resp
				resp, err = zero, apperr.New(apperr.KindInternal, "internal error")
			}
			f.resolve(resp, err)
		}()
		resp, err = call[Resp](ctx, p, op, req)
	}()

	return f
}

func call[Resp any](ctx context.Context, p *Proxy, op Operation, req any) (Resp, error) {
	var resp Resp

	if p.sem != nil {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			return resp, apperr.Transient("dispatch capacity", err)
		}
		defer p.sem.Release(1)
	}

	ctx, span := p.tracer.Start(ctx, "proxy "+string(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("catalog.operation", string(op))),
	)
	defer span.End()

	start := time.Now()
	p.metrics.started()

	err := func() error {
		payload, err := json.Marshal(req)
		if err != nil {
			return apperr.Internal(fmt.Sprintf("encode %s request", op), err)
		}
		raw, err := p.transport.Call(ctx, op, payload)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, &resp); err != nil {
			return apperr.Internal(fmt.Sprintf("decode %s result", op), err)
		}
		return nil
	}()

	outcome := "ok"
	if err != nil {
		outcome = apperr.KindOf(err).String()
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("catalog.failure", outcome))
	}
	p.metrics.finished(op, outcome, time.Since(start))
	return resp, err
}
