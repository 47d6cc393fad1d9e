package interfaces

import (
	"github.com/gin-gonic/gin"
	gogrpc "google.golang.org/grpc"

	"EspDiag/internal/lookup/app"
	"EspDiag/internal/lookup/interfaces/handler"
	"EspDiag/modules/kit/logx"
)

// Module 把查询服务同时挂到 HTTP 和 grpc 上。
type Module struct {
	http *handler.HTTP
	grpc *handler.GRPC
}

func New(catalog app.Catalog, log logx.Logger) *Module {
	svc := app.NewService(catalog)
	return &Module{
		http: handler.NewHTTP(svc, log),
		grpc: handler.NewGRPC(svc, log),
	}
}

func (m *Module) RegisterHTTP(r gin.IRouter) {
	m.http.RegisterRoutes(r)
}

func (m *Module) RegisterGRPC(s gogrpc.ServiceRegistrar) {
	m.grpc.Register(s)
}
