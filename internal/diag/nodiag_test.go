//go:build nodiag

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"EspDiag/internal/errcatalog"
	"EspDiag/modules/kit/logx"
)

func TestNodiag_编译期关闭只执行操作(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	exited := false
	a := New(nil, logx.NewZapLogger(zap.New(core)), WithExit(func(int) { exited = true }))
	assert.False(t, a.Enabled())

	calls := 0
	op := func() errcatalog.Code { calls++; return 258 }
	a.Call(0, "op()", op)
	assert.Equal(t, errcatalog.Code(258), a.CallNoAbort(0, "op()", op))
	a.Assert(-1, 0, "x")

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, logs.Len())
	assert.False(t, exited)
}
