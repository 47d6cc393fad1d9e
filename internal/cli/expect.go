package cli

import (
	"github.com/spf13/cobra"

	"EspDiag/internal/diag"
	"EspDiag/internal/errcatalog"
)

func (r *root) newExpectCmd() *cobra.Command {
	var (
		expected string
		expr     string
		noAbort  bool
	)

	cmd := &cobra.Command{
		Use:   "expect <rc>",
		Short: "Check a status code returned by a device or script",
		Long: `Compare <rc> against --expected. On mismatch a single diagnostic line is logged.
By default the process then exits with the configured diag.exit_code (70);
with --no-abort it exits 0 after logging.

Negative codes are accepted as-is: errcat expect -1 --expected 0.
The location in the diagnostic ("at ... func: ...") is errcat's own call site;
use --expr to name the check that produced <rc>.`,
		Args: args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, a []string) (err error) {
			rc, err := errcatalog.ParseCode(a[0])
			if err != nil {
				return dataError(err)
			}
			want, err := errcatalog.ParseCode(expected)
			if err != nil {
				return usageError(err)
			}
			if expr == "" {
				expr = a[0]
			}

			app, err := r.app()
			if err != nil {
				return err
			}
			defer app.Close()
			// 退出函数被替换且返回时，停机守卫以 *diag.AssertionError panic。
			defer func() {
				if rec := recover(); rec != nil {
					ae, ok := rec.(*diag.AssertionError)
					if !ok {
						panic(rec)
					}
					err = &exitError{code: app.Asserter.ExitCode(), err: ae}
				}
			}()

			if noAbort {
				app.Asserter.AssertNoAbort(rc, want, expr)
				return nil
			}
			app.Asserter.Assert(rc, want, expr)
			return nil
		},
	}
	cmd.Flags().StringVar(&expected, "expected", "0", "expected status code")
	cmd.Flags().StringVar(&expr, "expr", "", "expression text shown in the diagnostic (default: <rc>)")
	cmd.Flags().BoolVar(&noAbort, "no-abort", false, "log the mismatch and exit 0")
	return cmd
}
