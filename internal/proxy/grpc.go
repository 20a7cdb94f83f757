package proxy

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/requestid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
)

const (
	ServiceName  = "catalog.proxy.v1.Dispatcher"
	invokeMethod = "/" + ServiceName + "/Invoke"
	codecName    = "json"
)

// Envelope is the request message of the remote dispatcher.
type Envelope struct {
	Operation Operation       `json:"operation"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Reply carries either a payload or a failure, never both.
type Reply struct {
	Payload json.RawMessage `json:"payload,omitempty"`
	Failure *apperr.Error   `json:"failure,omitempty"`
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return codecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type DispatcherServer interface {
	Invoke(context.Context, *Envelope) (*Reply, error)
}

var dispatcherDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DispatcherServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Invoke", Handler: invokeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/proxy/v1/dispatcher",
}

func invokeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Envelope)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DispatcherServer).Invoke(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: invokeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DispatcherServer).Invoke(ctx, req.(*Envelope))
	}
	return interceptor(ctx, in, info, handler)
}

// Dispatcher serves a Registry to remote proxies.
type Dispatcher struct {
	registry *Registry
}

var _ DispatcherServer = (*Dispatcher)(nil)

func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{registry: r}
}

// Invoke always answers with a Reply; operation failures are data, not
// gRPC errors.
func (d *Dispatcher) Invoke(ctx context.Context, in *Envelope) (*Reply, error) {
	out, failure := d.registry.Dispatch(context.WithoutCancel(ctx), in.Operation, in.Payload)
	if failure != nil {
		return &Reply{Failure: failure}, nil
	}
	return &Reply{Payload: out}, nil
}

func RegisterDispatcher(s grpc.ServiceRegistrar, d DispatcherServer) {
	s.RegisterService(&dispatcherDesc, d)
}

type GRPCTransport struct {
	conn grpc.ClientConnInterface
}

func NewGRPCTransport(conn grpc.ClientConnInterface) *GRPCTransport {
	return &GRPCTransport{conn: conn}
}

// Dial opens a plaintext client connection to a dispatch worker.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	return grpc.NewClient(target, opts...)
}

func (t *GRPCTransport) Call(ctx context.Context, op Operation, payload json.RawMessage) (json.RawMessage, error) {
	var reply Reply
	err := t.conn.Invoke(requestid.Outgoing(ctx), invokeMethod, &Envelope{Operation: op, Payload: payload}, &reply,
		grpc.CallContentSubtype(codecName))
	if err != nil {
		return nil, apperr.Transient("remote dispatch "+string(op), err)
	}
	if reply.Failure != nil {
		return nil, reply.Failure
	}
	return reply.Payload, nil
}
