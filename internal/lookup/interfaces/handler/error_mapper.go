package handler

import (
	"context"
	"errors"
	nethttp "net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"EspDiag/internal/shared/transport"
	"EspDiag/modules/kit/errx"
	"EspDiag/modules/kit/logx"
)

func toRPCError(err error) error {
	var e *errx.Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.Msg()
	}
	switch {
	case errors.Is(err, errx.ErrReqParam):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, errx.ErrNotFound):
		return status.Error(codes.NotFound, msg)
	case errors.Is(err, errx.ErrUnavailable):
		return status.Error(codes.Unavailable, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}

func toHTTPStatus(code transport.BizCode) int {
	switch code {
	case transport.OK:
		return nethttp.StatusOK
	case transport.ReqParamError:
		return nethttp.StatusBadRequest
	case transport.NotFound:
		return nethttp.StatusNotFound
	case transport.Unavailable:
		return nethttp.StatusServiceUnavailable
	default:
		return nethttp.StatusInternalServerError
	}
}

// reportError 在接口层打印一次错误日志：业务拒绝记 info，技术错误记 error 并带栈。
func reportError(ctx context.Context, log logx.Logger, action string, err error) {
	if errx.IsBiz(err) {
		var e *errx.Error
		_ = errors.As(err, &e)
		logx.ReportBizReject(ctx, log, logx.NewBizLog(action, e.CodeText(), e.Msg()))
		return
	}
	logx.ReportSysError(ctx, log, logx.NewSysLog(action, err))
}
