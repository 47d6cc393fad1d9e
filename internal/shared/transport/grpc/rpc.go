package grpc

import (
	"fmt"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"EspDiag/modules/kit/logx"
)

// NewServer 创建挂好 trace/访问日志拦截器的 grpc 服务。服务只有 unary 方法。
func NewServer(log logx.Logger, opts ...gogrpc.ServerOption) *gogrpc.Server {
	opts = append([]gogrpc.ServerOption{
		gogrpc.ChainUnaryInterceptor(UnaryServerTraceInterceptor(log)),
	}, opts...)
	return gogrpc.NewServer(opts...)
}

// Dial 建立到 target 的 grpc 连接（明文），unary 调用自动注入 trace/span。
// extra 追加在默认选项之后，测试中用来替换 dialer（bufconn）。
func Dial(target string, extra ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	opts := []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithChainUnaryInterceptor(UnaryClientTraceInterceptor()),
	}
	opts = append(opts, extra...)
	// grpc.NewClient 不会立即建连：解析 target、初始化 balancer 都是异步的，第一次调用时才真正连接。
	conn, err := gogrpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial grpc %s failed: %w", target, err)
	}
	return conn, nil
}
