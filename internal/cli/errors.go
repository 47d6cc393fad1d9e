package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"EspDiag/internal/exitcode"
	"EspDiag/modules/kit/errx"
)

// exitError 给错误附加进程退出码。
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitcode.ExitUsage, err: err}
}

func dataError(err error) error {
	return &exitError{code: exitcode.ExitDataErr, err: err}
}

func configError(err error) error {
	return &exitError{code: exitcode.ExitConfig, err: err}
}

// ExitCode 把命令返回的错误映射成 sysexits 退出码。
func ExitCode(err error) int {
	if err == nil {
		return exitcode.ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	switch {
	case errors.Is(err, errx.ErrReqParam), errors.Is(err, errx.ErrNotFound):
		return exitcode.ExitDataErr
	case errors.Is(err, errx.ErrUnavailable):
		return exitcode.ExitUnavailable
	default:
		return exitcode.ExitSoftware
	}
}

// args 包装 cobra 的参数校验，校验失败记为用法错误。
func args(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := fn(cmd, a); err != nil {
			return usageError(err)
		}
		return nil
	}
}
