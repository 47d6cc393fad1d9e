package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"EspDiag/internal/shared/transport"
	"EspDiag/modules/kit/logx"
	"EspDiag/modules/kit/tracex"
)

const (
	traceIDHeader = "x-trace-id"
	spanIDHeader  = "x-span-id"
)

// UnaryClientTraceInterceptor 为客户端 unary 请求自动注入 trace/span。
func UnaryClientTraceInterceptor() gogrpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *gogrpc.ClientConn,
		invoker gogrpc.UnaryInvoker,
		opts ...gogrpc.CallOption,
	) error {
		return invoker(injectTraceToOutgoing(ctx), method, req, reply, cc, opts...)
	}
}

// UnaryServerTraceInterceptor 为服务端 unary 请求提取 trace/span（缺失时生成），并写访问日志。
func UnaryServerTraceInterceptor(log logx.Logger) gogrpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *gogrpc.UnaryServerInfo,
		handler gogrpc.UnaryHandler,
	) (any, error) {
		ctx = transport.NewContextWithParent(extractTraceFromIncoming(ctx), info.FullMethod, "grpc")
		defer transport.WriteAccessLog(ctx, log)

		resp, err := handler(ctx, req)
		transport.SetBizCode(ctx, bizCodeOf(err))
		if err != nil {
			transport.SetErrorReason(ctx, status.Convert(err).Message())
		}
		return resp, err
	}
}

// bizCodeOf 按 grpc 状态码还原业务码，与 HTTP 侧的响应体 code 保持一致。
func bizCodeOf(err error) transport.BizCode {
	switch status.Code(err) {
	case codes.OK:
		return transport.OK
	case codes.InvalidArgument:
		return transport.ReqParamError
	case codes.NotFound:
		return transport.NotFound
	case codes.Unavailable:
		return transport.Unavailable
	default:
		return transport.SystemError
	}
}

func injectTraceToOutgoing(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if traceID, ok := tracex.TraceIDFrom(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, traceIDHeader, traceID)
	}
	if spanID, ok := tracex.SpanIDFrom(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, spanIDHeader, spanID)
	}
	return ctx
}

func extractTraceFromIncoming(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	if values := md.Get(traceIDHeader); len(values) > 0 && values[0] != "" {
		ctx = tracex.WithTraceID(ctx, values[0])
	}
	if values := md.Get(spanIDHeader); len(values) > 0 && values[0] != "" {
		ctx = tracex.WithSpanID(ctx, values[0])
	}
	return ctx
}
