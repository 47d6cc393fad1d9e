package handler

import (
	"context"

	"github.com/go-viper/mapstructure/v2"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"EspDiag/internal/lookup/app"
	"EspDiag/modules/kit/errx"
	"EspDiag/modules/kit/logx"
	"EspDiag/modules/kit/tracex"
)

// ServiceName 是查询服务的 grpc 全名。消息体使用 protobuf 内置的 well-known types，
// 不需要额外的 .proto 生成代码。
const ServiceName = "espdiag.lookup.v1.Lookup"

const (
	ResolveMethod  = "/" + ServiceName + "/Resolve"
	ListMethod     = "/" + ServiceName + "/List"
	FeaturesMethod = "/" + ServiceName + "/Features"
)

// LookupServer 是查询服务的 grpc 服务端接口。
type LookupServer interface {
	Resolve(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	List(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error)
	Features(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
}

var LookupServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LookupServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "Resolve", Handler: resolveHandler},
		{MethodName: "List", Handler: listHandler},
		{MethodName: "Features", Handler: featuresHandler},
	},
	Streams:  []gogrpc.StreamDesc{},
	Metadata: "espdiag/lookup/v1/lookup.proto",
}

// GRPC 实现 LookupServer。
type GRPC struct {
	service *app.Service
	log     logx.Logger
}

var _ LookupServer = (*GRPC)(nil)

func NewGRPC(service *app.Service, log logx.Logger) *GRPC {
	return &GRPC{service: service, log: log}
}

func (g *GRPC) Register(s gogrpc.ServiceRegistrar) {
	s.RegisterService(&LookupServiceDesc, g)
}

func (g *GRPC) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	ctx = tracex.WithSpanID(ctx, "lookup")

	res, err := g.service.Resolve(ctx, req.GetValue())
	if err != nil {
		reportError(ctx, g.log, "lookup resolve", err)
		return nil, toRPCError(err)
	}
	out, err := toStruct(res)
	if err != nil {
		return nil, g.internal(ctx, "lookup resolve encode", err)
	}
	return out, nil
}

func (g *GRPC) List(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	ctx = tracex.WithSpanID(ctx, "lookup")

	res, err := g.service.List(ctx, req.GetValue())
	if err != nil {
		reportError(ctx, g.log, "lookup list", err)
		return nil, toRPCError(err)
	}
	out, err := toList(res)
	if err != nil {
		return nil, g.internal(ctx, "lookup list encode", err)
	}
	return out, nil
}

func (g *GRPC) Features(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	ctx = tracex.WithSpanID(ctx, "lookup")

	out, err := toList(g.service.Features(ctx))
	if err != nil {
		return nil, g.internal(ctx, "lookup features encode", err)
	}
	return out, nil
}

func (g *GRPC) internal(ctx context.Context, action string, cause error) error {
	err := errx.ErrInternal.WithCause(cause)
	reportError(ctx, g.log, action, err)
	return toRPCError(err)
}

// toStruct 按 mapstructure tag 把结果展开成 map，再转成 structpb。
func toStruct(v any) (*structpb.Struct, error) {
	var m map[string]any
	if err := mapstructure.Decode(v, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func toList[T any](items []T) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(items))
	for _, item := range items {
		s, err := toStruct(item)
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(s))
	}
	return &structpb.ListValue{Values: values}, nil
}

func resolveHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LookupServer).Resolve(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: ResolveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LookupServer).Resolve(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LookupServer).List(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: ListMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LookupServer).List(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func featuresHandler(srv any, ctx context.Context, dec func(any) error, interceptor gogrpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LookupServer).Features(ctx, in)
	}
	info := &gogrpc.UnaryServerInfo{Server: srv, FullMethod: FeaturesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LookupServer).Features(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}
