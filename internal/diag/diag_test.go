//go:build !nodiag

package diag

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"EspDiag/internal/errcatalog"
	"EspDiag/modules/kit/logx"
)

func exampleCatalog() *errcatalog.Catalog {
	return errcatalog.New([]errcatalog.Group{{
		Feature: errcatalog.FeatureCore,
		Entries: []errcatalog.Entry{
			{Code: 0, Name: "OK"},
			{Code: -1, Name: "FAIL"},
			{Code: 258, Name: "INVALID_ARG"},
		},
	}})
}

func newObserved(t *testing.T, opts ...Option) (*Asserter, *observer.ObservedLogs, *[]int) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var exits []int
	opts = append([]Option{WithExit(func(code int) { exits = append(exits, code) })}, opts...)
	return New(exampleCatalog(), logx.NewZapLogger(zap.New(core)), opts...), logs, &exits
}

func TestAssert_一致时无输出(t *testing.T) {
	a, logs, exits := newObserved(t)

	a.Assert(0, 0, "init()")
	a.Call(0, "init()", func() errcatalog.Code { return 0 })

	assert.Equal(t, 0, logs.Len())
	assert.Empty(t, *exits)
}

// capturePanic 执行 fn 并返回其 panic 值。
func capturePanic(fn func()) (r any) {
	defer func() { r = recover() }()
	fn()
	return nil
}

func TestAssert_不一致时输出一行并终止(t *testing.T) {
	a, logs, exits := newObserved(t)

	var reached bool
	r := capturePanic(func() {
		a.Assert(258, 0, "cam.Init()")
		reached = true
	})
	ae, ok := r.(*AssertionError)
	require.True(t, ok, "期望 panic *AssertionError, got %T", r)
	assert.False(t, reached, "终止后调用方后续语句不应执行")
	assert.Equal(t, []int{DefaultExitCode}, *exits)
	assert.Equal(t, errcatalog.Code(258), ae.Context.Observed)
	assert.Equal(t, "INVALID_ARG", ae.Context.Name)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Message, "INVALID_ARG")
	assert.Contains(t, entry.Message, "cam.Init()")
	assert.Contains(t, entry.Message, "diag/diag_test.go:")
	assert.Contains(t, entry.Message, "TestAssert_")

	fields := entry.ContextMap()
	assert.Equal(t, int32(258), fields["code"])
	assert.Equal(t, "0x102", fields["hex"])
	assert.Equal(t, "INVALID_ARG", fields["name"])
	assert.Equal(t, "cam.Init()", fields["expr"])
	assert.Equal(t, int32(0), fields["expected"])
}

func TestAssert_记录守卫调用点(t *testing.T) {
	a, _, _ := newObserved(t)

	_, wantFile, _, _ := runtime.Caller(0)
	r := capturePanic(func() { a.Assert(-1, 0, "x") })
	ae := r.(*AssertionError)

	assert.Equal(t, wantFile, ae.Context.Location.File)
	assert.Greater(t, ae.Context.Location.Line, 0)
	assert.True(t, strings.HasPrefix(ae.Context.Location.Function, "EspDiag/internal/diag.TestAssert_记录守卫调用点"),
		"got %s", ae.Context.Location.Function)
	assert.Equal(t, "FAIL", ae.Context.Name)
}

func TestCall_op只执行一次(t *testing.T) {
	a, logs, _ := newObserved(t)

	calls := 0
	capturePanic(func() {
		a.Call(0, "op()", func() errcatalog.Code { calls++; return 258 })
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "op()")
}

func TestWithExitCode(t *testing.T) {
	a, _, exits := newObserved(t, WithExitCode(3))
	capturePanic(func() { a.Assert(1, 0, "x") })
	assert.Equal(t, []int{3}, *exits)
	assert.Equal(t, 3, a.ExitCode())
}

func TestAssertNoAbort_返回观测值且继续执行(t *testing.T) {
	a, logs, exits := newObserved(t)

	got := a.AssertNoAbort(258, 0, "sd.Mount()")
	assert.Equal(t, errcatalog.Code(258), got)
	assert.Empty(t, *exits)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "INVALID_ARG")
	assert.Contains(t, logs.All()[0].Message, "sd.Mount()")

	assert.Equal(t, errcatalog.OK, a.AssertNoAbort(0, 0, "sd.Mount()"))
	assert.Equal(t, 1, logs.Len(), "一致时不应输出")
}

func TestCallNoAbort_未注册状态码走兜底(t *testing.T) {
	a, logs, _ := newObserved(t)

	calls := 0
	got := a.CallNoAbort(0, "wifi.Start()", func() errcatalog.Code { calls++; return 999 })
	assert.Equal(t, errcatalog.Code(999), got)
	assert.Equal(t, 1, calls)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "999")
	assert.Contains(t, logs.All()[0].Message, errcatalog.Unknown(999))
}

func TestWithEnabled_关闭后只执行操作(t *testing.T) {
	a, logs, exits := newObserved(t, WithEnabled(false))
	require.False(t, a.Enabled())

	calls := 0
	op := func() errcatalog.Code { calls++; return 258 }

	a.Assert(258, 0, "x")
	a.Call(0, "x", op)
	assert.Equal(t, errcatalog.Code(258), a.AssertNoAbort(258, 0, "x"))
	assert.Equal(t, errcatalog.Code(258), a.CallNoAbort(0, "x", op))

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, logs.Len())
	assert.Empty(t, *exits)
}

func TestNew_默认值(t *testing.T) {
	a := New(nil, nil, WithExit(func(int) {}))
	assert.True(t, a.Enabled())
	assert.Equal(t, DefaultExitCode, a.ExitCode())
	assert.Equal(t, errcatalog.Code(0x101), a.AssertNoAbort(0x101, 0, "malloc()"))
}

// 停机守卫必须真正结束进程：在子进程里触发断言，检查退出码和输出。
func TestAssert_子进程退出码(t *testing.T) {
	if os.Getenv("ESPDIAG_DIAG_HELPER") == "1" {
		ws := zapcore.Lock(os.Stdout)
		l := logx.NewZapLogger(zap.New(logx.NewConsoleCore(ws, zapcore.DebugLevel, time.Now())))
		a := New(exampleCatalog(), l)
		a.Assert(258, 0, "cam.Init()")
		_, _ = os.Stdout.WriteString("UNREACHABLE\n")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestAssert_子进程退出码$")
	cmd.Env = append(os.Environ(), "ESPDIAG_DIAG_HELPER=1")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "期望子进程异常退出, err=%v out=%s", err, stdout.String())
	assert.Equal(t, DefaultExitCode, exitErr.ExitCode())

	out := stdout.String()
	assert.NotContains(t, out, "UNREACHABLE")
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "E | ") {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, 1, "期望恰好一行诊断, out=%s", out)
	assert.Contains(t, lines[0], "INVALID_ARG")
	assert.Contains(t, lines[0], "cam.Init()")
	assert.Contains(t, lines[0], "diag_test.go:")
}

