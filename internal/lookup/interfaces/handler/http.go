package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"EspDiag/internal/lookup/app"
	"EspDiag/internal/shared/transport"
	"EspDiag/modules/kit/errx"
	"EspDiag/modules/kit/logx"
)

// Response 是 HTTP 接口统一的响应体，code 为业务码（0 成功）。
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

type HTTP struct {
	service *app.Service
	log     logx.Logger
}

func NewHTTP(service *app.Service, log logx.Logger) *HTTP {
	return &HTTP{service: service, log: log}
}

func (h *HTTP) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1")
	g.GET("/codes/:query", h.resolve)
	g.GET("/codes", h.list)
	g.GET("/features", h.features)
}

func (h *HTTP) resolve(c *gin.Context) {
	res, err := h.service.Resolve(c.Request.Context(), c.Param("query"))
	h.write(c, "lookup resolve", res, err)
}

func (h *HTTP) list(c *gin.Context) {
	res, err := h.service.List(c.Request.Context(), c.Query("feature"))
	h.write(c, "lookup list", res, err)
}

func (h *HTTP) features(c *gin.Context) {
	h.write(c, "lookup features", h.service.Features(c.Request.Context()), nil)
}

func (h *HTTP) write(c *gin.Context, action string, data any, err error) {
	if err == nil {
		c.JSON(toHTTPStatus(transport.OK), Response{Code: int(transport.OK), Msg: "ok", Data: data})
		return
	}

	ctx := c.Request.Context()
	reportError(ctx, h.log, action, err)
	transport.SetErrorReason(ctx, err.Error())

	code := transport.BizCodeOf(err)
	// 技术错误不把内部细节暴露给调用方。
	msg := errx.ErrInternal.Msg()
	var e *errx.Error
	if errx.IsBiz(err) && errors.As(err, &e) {
		msg = e.Msg()
	}
	c.JSON(toHTTPStatus(code), Response{Code: int(code), Msg: msg})
}
