package cli

import (
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var negativeCode = regexp.MustCompile(`^-(0[xX][0-9a-fA-F]+|[0-9]+)$`)

func isNegativeCode(s string) bool {
	return negativeCode.MatchString(s)
}

// escapeNegativeCodes 让 "-1"、"-0x1" 这类负状态码作为位置参数传入，而不是被当成短 flag。
//
// 子命令之后的位置参数按原顺序移到 "--" 之后；flag 及其取值（例如 --expected -1）保持原位。
func escapeNegativeCodes(root *cobra.Command, in []string) []string {
	if !slices.ContainsFunc(in, isNegativeCode) || slices.Contains(in, "--") {
		return in
	}
	cmd, _, err := root.Find(in)
	if err != nil || cmd == root {
		return in
	}
	depth := 0
	for p := cmd; p.HasParent(); p = p.Parent() {
		depth++
	}

	var head, tail []string
	for i := 0; i < len(in); i++ {
		a := in[i]
		switch {
		case isNegativeCode(a):
			tail = append(tail, a)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			head = append(head, a)
			if takesValue(cmd, a) && i+1 < len(in) {
				i++
				head = append(head, in[i])
			}
		case depth > 0:
			head = append(head, a)
			depth--
		default:
			tail = append(tail, a)
		}
	}
	return append(append(head, "--"), tail...)
}

// takesValue 判断 "--name" / "-n" 形式的 flag 是否会消费下一个参数。
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = lookupFlag(cmd, name)
	} else if len(arg) == 2 {
		f = cmd.Flags().ShorthandLookup(arg[1:])
		if f == nil {
			f = cmd.InheritedFlags().ShorthandLookup(arg[1:])
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}
