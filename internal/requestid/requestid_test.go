package requestid

import (
	"context"
	"testing"

	"google.golang.org/grpc/metadata"
)

func TestFromContext(t *testing.T) {
	ctx := context.Background()
	if got := FromContext(ctx); got != "" {
		t.Fatalf("empty context = %q", got)
	}
	if got := FromContext(WithID(ctx, "abc")); got != "abc" {
		t.Fatalf("value = %q", got)
	}
	if WithID(ctx, "") != ctx {
		t.Fatal("empty id should leave ctx alone")
	}

	in := metadata.NewIncomingContext(ctx, metadata.Pairs(MetadataKey, "from-md"))
	if got := FromContext(in); got != "from-md" {
		t.Fatalf("metadata = %q", got)
	}
}

func TestOutgoing(t *testing.T) {
	md, ok := metadata.FromOutgoingContext(Outgoing(WithID(context.Background(), "r-1")))
	if !ok || len(md.Get(MetadataKey)) != 1 || md.Get(MetadataKey)[0] != "r-1" {
		t.Fatalf("outgoing metadata = %v", md)
	}
	if _, ok := metadata.FromOutgoingContext(Outgoing(context.Background())); ok {
		t.Fatal("no id should add no metadata")
	}
}
