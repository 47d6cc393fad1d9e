// catalogen 把状态码注册列表（YAML）生成为 errcatalog 的内置表。
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"EspDiag/internal/errcatalog"
	"EspDiag/internal/exitcode"
)

var builtinTemplate = template.Must(template.New("builtin").Parse(`// Code generated by catalogen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

var builtinGroups = []Group{
{{- range .Groups}}
	{
		Feature: {{printf "%q" .Feature}},
		Header: {{printf "%q" .Header}},
		Entries: []Entry{
		{{- range .Entries}}
			{Code: {{.Code}}, Name: {{printf "%q" .Name}}{{if .Description}}, Description: {{printf "%q" .Description}}{{end}}},
		{{- end}}
		},
	},
{{- end}}
}
`))

type templateData struct {
	Source  string
	Package string
	Groups  []errcatalog.Group
}

func newRootCmd() *cobra.Command {
	var in, out, pkg string

	cmd := &cobra.Command{
		Use:           "catalogen",
		Short:         "Generate the builtin status-code table from a YAML registration list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			groups, err := errcatalog.LoadGroupsFile(in)
			if err != nil {
				return err
			}
			src, err := render(templateData{
				Source:  filepath.ToSlash(in),
				Package: pkg,
				Groups:  groups,
			})
			if err != nil {
				return err
			}
			return os.WriteFile(out, src, 0o644)
		},
	}

	cmd.Flags().StringVar(&in, "in", "data/esp_idf.yaml", "YAML registration list")
	cmd.Flags().StringVar(&out, "out", "zz_builtin.go", "generated Go file")
	cmd.Flags().StringVar(&pkg, "package", "errcatalog", "package name of the generated file")

	return cmd
}

func render(data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := builtinTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render builtin table: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format builtin table: %w", err)
	}
	return src, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "catalogen:", err)
		os.Exit(exitcode.ExitDataErr)
	}
}
