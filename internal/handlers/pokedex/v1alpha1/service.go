package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pokedex.api.v1alpha1.PokedexService"

// Full method names, as seen by interceptors
const (
	ListEntriesFullMethod      = "/" + ServiceName + "/ListEntries"
	GetEntryFullMethod         = "/" + ServiceName + "/GetEntry"
	GetEvolutionTreeFullMethod = "/" + ServiceName + "/GetEvolutionTree"
)

// PokedexServiceServer is the server API for the pokedex service.
// Requests and responses are well-known protobuf types; the Struct
// payloads follow the JSON shapes in views.go.
type PokedexServiceServer interface {
	// ListEntries takes {limit, offset, locales} and returns a ListEntriesView
	ListEntries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	// GetEntry takes an entry id and returns an EntryDetailView
	GetEntry(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
	// GetEvolutionTree takes an evolution chain id and returns an EvolutionTreeResponseView
	GetEvolutionTree(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
}

// RegisterPokedexServiceServer registers srv with the gRPC server
func RegisterPokedexServiceServer(s grpc.ServiceRegistrar, srv PokedexServiceServer) {
	s.RegisterService(&PokedexServiceDesc, srv)
}

// PokedexServiceDesc describes the service for grpc.ServiceRegistrar
var PokedexServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PokedexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListEntries", Handler: listEntriesHandler},
		{MethodName: "GetEntry", Handler: getEntryHandler},
		{MethodName: "GetEvolutionTree", Handler: getEvolutionTreeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokedex/api/v1alpha1/pokedex.proto",
}

func listEntriesHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).ListEntries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListEntriesFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PokedexServiceServer).ListEntries(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getEntryHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).GetEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetEntryFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PokedexServiceServer).GetEntry(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func getEvolutionTreeHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).GetEvolutionTree(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetEvolutionTreeFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PokedexServiceServer).GetEvolutionTree(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// PokedexServiceClient is the client API for the pokedex service
type PokedexServiceClient interface {
	ListEntries(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEntry(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEvolutionTree(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type pokedexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPokedexServiceClient creates a client over an established connection
func NewPokedexServiceClient(cc grpc.ClientConnInterface) PokedexServiceClient {
	return &pokedexServiceClient{cc: cc}
}

func (c *pokedexServiceClient) ListEntries(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListEntriesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) GetEntry(
	ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetEntryFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) GetEvolutionTree(
	ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetEvolutionTreeFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
