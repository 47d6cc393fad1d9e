// Package cli 实现 errcat 命令行：查询状态码、在脚本里做断言、启动查询服务。
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"EspDiag/internal/bootstrap"
	"EspDiag/internal/diag"
	"EspDiag/internal/shared/logs"
)

const appName = "errcat"

type options struct {
	out      io.Writer
	console  zapcore.WriteSyncer
	diagExit func(int)
}

type Option func(*options)

// WithOutput 指定查询结果的输出位置，默认 os.Stdout。
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogConsole 指定日志（包括诊断行）的输出，默认 stderr。
func WithLogConsole(ws zapcore.WriteSyncer) Option {
	return func(o *options) { o.console = ws }
}

// WithDiagExit 替换断言失败时的退出函数。
func WithDiagExit(fn func(int)) Option {
	return func(o *options) { o.diagExit = fn }
}

type root struct {
	opts       options
	configPath string
}

// Execute 运行 errcat 并返回进程退出码。
func Execute(args []string, opts ...Option) int {
	cmd := NewRootCmd(opts...)
	cmd.SetArgs(escapeNegativeCodes(cmd, args))
	err := cmd.Execute()
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		err = usageError(err)
	}
	if err != nil {
		cmd.PrintErrln(appName+":", err)
	}
	return ExitCode(err)
}

// NewRootCmd creates the root command.
func NewRootCmd(opts ...Option) *cobra.Command {
	r := &root{opts: options{out: os.Stdout}}
	for _, opt := range opts {
		opt(&r.opts)
	}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Resolve ESP-IDF status codes and check them in scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(r.opts.out)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	cmd.PersistentFlags().StringVar(&r.configPath, "config", "", "config file (default: search configs/conf.yml upward)")

	cmd.AddCommand(
		r.newLookupCmd(),
		r.newListCmd(),
		r.newFeaturesCmd(),
		r.newExpectCmd(),
		r.newServeCmd(),
	)
	return cmd
}

// app 按 --config 装配依赖；配置错误映射为 EX_CONFIG。
func (r *root) app() (*bootstrap.App, error) {
	var logOpts []logs.Option
	if r.opts.console != nil {
		logOpts = append(logOpts, logs.WithConsole(r.opts.console))
	}
	a, err := bootstrap.New(appName, r.configPath, logOpts...)
	if err != nil {
		return nil, configError(err)
	}
	if r.opts.diagExit != nil {
		a.Asserter = diag.New(a.Catalog, a.Log,
			diag.WithEnabled(a.Loader.Config().Diag.Enabled),
			diag.WithExitCode(a.Loader.Config().Diag.ExitCode),
			diag.WithExit(r.opts.diagExit),
		)
	}
	return a, nil
}
