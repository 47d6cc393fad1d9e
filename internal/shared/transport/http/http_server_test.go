package http

import (
	"context"
	"encoding/json"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"EspDiag/internal/shared/config"
	"EspDiag/internal/shared/transport/http/middleware"
	"EspDiag/modules/kit/logx"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	return NewHttpServer(config.HTTPServerConfig{Host: "127.0.0.1", Port: 0}, logx.NewZapLogger(zap.New(core))), logs
}

func TestNewHttpServer_Healthz(t *testing.T) {
	s, logs := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(w, req)

	if w.Code != nethttp.StatusOK {
		t.Fatalf("unexpected status code: got=%d want=%d", w.Code, nethttp.StatusOK)
	}
	if w.Header().Get(middleware.TraceIDHeader) == "" {
		t.Fatalf("期望响应头带 trace_id")
	}
	if logs.Len() != 1 {
		t.Fatalf("期望一条访问日志, got=%d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["action"]; got != "GET /healthz" {
		t.Fatalf("期望 action=GET /healthz, got=%v", got)
	}
}

func TestAccessLog_按响应体业务码分级(t *testing.T) {
	s, logs := newTestServer(t)
	s.Group().GET("/missing", func(c *gin.Context) {
		c.JSON(nethttp.StatusNotFound, gin.H{"code": 404, "msg": "未找到"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/missing", nil)
	req.Header.Set(middleware.TraceIDHeader, "trace-from-client")
	s.Handler().ServeHTTP(w, req)

	if got := w.Header().Get(middleware.TraceIDHeader); got != "trace-from-client" {
		t.Fatalf("期望透传上游 trace_id, got=%q", got)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望一条访问日志, got=%d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("期望 4xx 业务码记为 warn, got=%v", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["biz_code"] != int64(404) || fields["trace_id"] != "trace-from-client" {
		t.Fatalf("访问日志字段不符合预期: %+v", fields)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	resp, err := nethttp.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	_ = resp.Body.Close()
	if body["status"] != "ok" {
		t.Fatalf("期望 status=ok, got=%v", body)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("期望正常关闭返回 nil, got=%v", err)
	}
}
