package logx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"EspDiag/modules/kit/errx"
	"EspDiag/modules/kit/tracex"
)

func newObserved() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestReportSysError_附带状态码与traceID(t *testing.T) {
	l, logs := newObserved()
	ctx := tracex.WithTraceID(context.Background(), "t-1")

	ReportSysError(ctx, l, NewSysLog("resolve", errx.NewStatus("ESP_ERR_TIMEOUT", 0x107, "Operation timed out")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "ESP_ERR_TIMEOUT", fields["error_code"])
	assert.EqualValues(t, 0x107, fields["status_code"])
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Contains(t, entry.Message, "resolve, error:ESP_ERR_TIMEOUT(263)")
}

func TestReportSysError_nil错误不输出(t *testing.T) {
	l, logs := newObserved()
	ReportSysError(context.Background(), l, NewSysLog("x", nil))
	ReportSysError(context.Background(), nil, NewSysLog("x", errors.New("boom")))
	assert.Equal(t, 0, logs.Len())
}

func TestReportBizReject(t *testing.T) {
	l, logs := newObserved()

	ReportBizReject(context.Background(), l, NewBizLog("GET /v1/codes/:query", "NOT_FOUND", "unknown name"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "GET /v1/codes/:query, code:NOT_FOUND, msg:unknown name", entry.Message)
	assert.Equal(t, "biz", entry.ContextMap()["err_type"])
}

func TestReportAccess_按业务码分级(t *testing.T) {
	l, logs := newObserved()
	ctx := context.Background()

	ReportAccess(ctx, l, "a", 0)
	ReportAccess(ctx, l, "b", 404)
	ReportAccess(ctx, l, "c", 500)

	all := logs.All()
	require.Len(t, all, 3)
	assert.Equal(t, zapcore.InfoLevel, all[0].Level)
	assert.Equal(t, zapcore.WarnLevel, all[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, all[2].Level)
}
