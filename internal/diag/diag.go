// Package diag 提供状态码断言：观测值与期望值不一致时，通过注册表解析符号名并输出一行诊断。
//
// 两种守卫：
//   - Assert / Call：不一致时输出诊断、刷新日志并终止进程
//   - AssertNoAbort / CallNoAbort：不一致时输出诊断后把观测值原样返回，由调用方决定如何恢复
//
// Asserter 自身不加锁，日志串行化由注入的 logx.Logger 底层 WriteSyncer 保证。
package diag

import (
	"os"

	"go.uber.org/zap"

	"EspDiag/internal/errcatalog"
	"EspDiag/internal/exitcode"
	"EspDiag/modules/kit/logx"
)

// DefaultExitCode 是断言失败时的进程退出码（EX_SOFTWARE）。
const DefaultExitCode = exitcode.ExitSoftware

type Asserter struct {
	catalog  *errcatalog.Catalog
	log      logx.Logger
	exit     func(int)
	exitCode int
	enabled  bool
}

type Option func(*Asserter)

// WithExit 替换终止进程的函数，默认 os.Exit。
// 注入的函数如果返回，Assert 会以 *AssertionError panic，保证调用方后续语句不再执行。
func WithExit(fn func(int)) Option {
	return func(a *Asserter) {
		if fn != nil {
			a.exit = fn
		}
	}
}

func WithExitCode(code int) Option {
	return func(a *Asserter) {
		if code > 0 {
			a.exitCode = code
		}
	}
}

// WithEnabled 运行期关闭检查；关闭后只执行被包裹的操作并原样返回结果。
func WithEnabled(enabled bool) Option {
	return func(a *Asserter) {
		a.enabled = enabled
	}
}

// New 创建 Asserter。catalog 为 nil 时使用 errcatalog.Default()，log 为 nil 时丢弃诊断输出。
func New(catalog *errcatalog.Catalog, log logx.Logger, opts ...Option) *Asserter {
	if catalog == nil {
		catalog = errcatalog.Default()
	}
	if log == nil {
		log = logx.Nop()
	}
	a := &Asserter{
		catalog:  catalog,
		log:      log,
		exit:     os.Exit,
		exitCode: DefaultExitCode,
		enabled:  true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Enabled 报告检查是否生效（编译期与运行期开关同时打开）。
func (a *Asserter) Enabled() bool {
	return CompiledIn && a.enabled
}

func (a *Asserter) ExitCode() int {
	return a.exitCode
}

// Assert 是停机守卫：rc 与 expected 不一致时输出一行诊断并终止进程。
// expr 是被检查调用的源码文本，只用于展示。
func (a *Asserter) Assert(rc, expected errcatalog.Code, expr string) {
	if !a.Enabled() || rc == expected {
		return
	}
	a.halt(a.newContext(rc, expected, expr))
}

// Call 执行 op 一次，再按 Assert 的语义检查结果。
func (a *Asserter) Call(expected errcatalog.Code, expr string, op func() errcatalog.Code) {
	rc := op()
	if !a.Enabled() || rc == expected {
		return
	}
	a.halt(a.newContext(rc, expected, expr))
}

// AssertNoAbort 是非停机守卫：不一致时输出一行诊断，总是原样返回 rc。
func (a *Asserter) AssertNoAbort(rc, expected errcatalog.Code, expr string) errcatalog.Code {
	if !a.Enabled() || rc == expected {
		return rc
	}
	a.report(a.newContext(rc, expected, expr))
	return rc
}

// CallNoAbort 执行 op 一次，再按 AssertNoAbort 的语义检查结果。
func (a *Asserter) CallNoAbort(expected errcatalog.Code, expr string, op func() errcatalog.Code) errcatalog.Code {
	rc := op()
	if !a.Enabled() || rc == expected {
		return rc
	}
	a.report(a.newContext(rc, expected, expr))
	return rc
}

// newContext 只能由导出的守卫方法直接调用，调用点固定在往上两层。
func (a *Asserter) newContext(rc, expected errcatalog.Code, expr string) Context {
	return Context{
		Observed: rc,
		Expected: expected,
		Name:     a.catalog.Lookup(rc),
		Location: callerLocation(2),
		Expr:     expr,
	}
}

func (a *Asserter) report(c Context) {
	a.log.Error(c.String(),
		zap.String("caller", c.Location.String()),
		zap.String("func", c.Location.Function),
		zap.String("expr", c.Expr),
		zap.Int32("code", int32(c.Observed)),
		zap.String("hex", c.Observed.Hex()),
		zap.String("name", c.Name),
		zap.Int32("expected", int32(c.Expected)),
	)
}

func (a *Asserter) halt(c Context) {
	a.report(c)
	_ = a.log.Sync()
	a.exit(a.exitCode)
	panic(&AssertionError{Context: c})
}
