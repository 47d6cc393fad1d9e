// Package client 是查询服务的 grpc 客户端。
package client

import (
	"context"

	"github.com/go-viper/mapstructure/v2"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"EspDiag/internal/lookup/app"
	"EspDiag/internal/lookup/interfaces/handler"
	rpc "EspDiag/internal/shared/transport/grpc"
	"EspDiag/modules/kit/errx"
)

type Client struct {
	conn *gogrpc.ClientConn
}

// Dial 连接查询服务。opts 追加在默认拨号选项之后。
func Dial(target string, opts ...gogrpc.DialOption) (*Client, error) {
	conn, err := rpc.Dial(target, opts...)
	if err != nil {
		return nil, errx.ErrUnavailable.WithCause(err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Resolve(ctx context.Context, query string) (app.Result, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, handler.ResolveMethod, wrapperspb.String(query), out); err != nil {
		return app.Result{}, fromRPCError(err)
	}
	var res app.Result
	if err := decode(out.AsMap(), &res); err != nil {
		return app.Result{}, errx.ErrInternal.WithCause(err)
	}
	return res, nil
}

func (c *Client) List(ctx context.Context, feature string) ([]app.Result, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, handler.ListMethod, wrapperspb.String(feature), out); err != nil {
		return nil, fromRPCError(err)
	}
	var res []app.Result
	if err := decode(out.AsSlice(), &res); err != nil {
		return nil, errx.ErrInternal.WithCause(err)
	}
	return res, nil
}

func (c *Client) Features(ctx context.Context) ([]app.FeatureInfo, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, handler.FeaturesMethod, &emptypb.Empty{}, out); err != nil {
		return nil, fromRPCError(err)
	}
	var res []app.FeatureInfo
	if err := decode(out.AsSlice(), &res); err != nil {
		return nil, errx.ErrInternal.WithCause(err)
	}
	return res, nil
}

// decode 把 structpb 还原出的 map/slice 解回结构体；structpb 的数字都是 float64，需要弱类型转换。
func decode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// fromRPCError 把 grpc 状态还原成 errx 错误，调用方可以继续用 errors.Is 判断。
func fromRPCError(err error) error {
	st := status.Convert(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return errx.ErrReqParam.WithMsg(st.Message())
	case codes.NotFound:
		return errx.ErrNotFound.WithMsg(st.Message())
	case codes.Unavailable:
		return errx.ErrUnavailable.WithCause(err)
	default:
		return errx.ErrInternal.WithCause(err)
	}
}
