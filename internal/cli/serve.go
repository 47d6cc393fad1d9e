package cli

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	lookup "EspDiag/internal/lookup/interfaces"
	rpc "EspDiag/internal/shared/transport/grpc"
	shttp "EspDiag/internal/shared/transport/http"
)

const shutdownTimeout = 10 * time.Second

func (r *root) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API over HTTP and gRPC",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.app()
			if err != nil {
				return err
			}
			defer a.Close()
			a.WatchConfig()

			cfg := a.Loader.Config()
			if !cfg.Log.Dev {
				gin.SetMode(gin.ReleaseMode)
			}

			module := lookup.New(a.Catalog, a.Log)
			httpServer := shttp.NewHttpServer(cfg.HTTPServer, a.Log)
			module.RegisterHTTP(httpServer.Group())
			grpcServer := rpc.NewServer(a.Log)
			module.RegisterGRPC(grpcServer)

			httpLis, err := net.Listen("tcp", cfg.HTTPServer.Addr())
			if err != nil {
				return fmt.Errorf("listen http failed: %w", err)
			}
			grpcLis, err := net.Listen("tcp", cfg.GRPCServer.Addr())
			if err != nil {
				_ = httpLis.Close()
				return fmt.Errorf("listen grpc failed: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 2)
			go func() {
				a.Log.Info("http server started", zap.String("addr", httpLis.Addr().String()))
				if err := httpServer.Serve(httpLis); err != nil {
					errCh <- fmt.Errorf("http serve failed: %w", err)
				}
			}()
			go func() {
				a.Log.Info("grpc server started", zap.String("addr", grpcLis.Addr().String()))
				if err := grpcServer.Serve(grpcLis); err != nil {
					errCh <- fmt.Errorf("grpc serve failed: %w", err)
				}
			}()

			var serveErr error
			select {
			case <-ctx.Done():
				a.Log.Info("收到退出信号，准备优雅退出")
			case serveErr = <-errCh:
				a.Log.Error("服务异常退出", zap.Error(serveErr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				a.Log.Warn("http shutdown failed", zap.Error(err))
			}

			stopCh := make(chan struct{})
			go func() {
				grpcServer.GracefulStop()
				close(stopCh)
			}()
			select {
			case <-stopCh:
			case <-shutdownCtx.Done():
				grpcServer.Stop()
			}
			return serveErr
		},
	}
}
