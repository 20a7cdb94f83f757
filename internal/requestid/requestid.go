// Package requestid carries the HTTP request id through dispatch, in process
// or across the gRPC hop to a worker.
package requestid

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// MetadataKey is the gRPC metadata key holding the id.
const MetadataKey = "x-request-id"

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored by WithID, falling back to incoming
// gRPC metadata. It returns "" when neither carries one.
func FromContext(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKey{}).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(MetadataKey); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// Outgoing copies the id into outgoing gRPC metadata.
func Outgoing(ctx context.Context) context.Context {
	if id := FromContext(ctx); id != "" {
		return metadata.AppendToOutgoingContext(ctx, MetadataKey, id)
	}
	return ctx
}
