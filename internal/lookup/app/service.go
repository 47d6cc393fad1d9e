package app

import (
	"context"
	"strings"

	"EspDiag/internal/errcatalog"
)

// Result 是一次查询的结果。Known 为 false 时 Name 是兜底字符串。
type Result struct {
	Code        int32  `json:"code" mapstructure:"code"`
	Hex         string `json:"hex" mapstructure:"hex"`
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Feature     string `json:"feature,omitempty" mapstructure:"feature"`
	Known       bool   `json:"known" mapstructure:"known"`
}

type FeatureInfo struct {
	Name  string `json:"name" mapstructure:"name"`
	Count int    `json:"count" mapstructure:"count"`
}

type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Resolve 按数值（十进制或 0x 十六进制）或符号名查询。
//
// 数值未注册不算错误，返回 Known=false 的兜底结果；符号名未注册返回 ErrUnknownName。
func (s *Service) Resolve(ctx context.Context, query string) (Result, error) {
	_ = ctx
	q := strings.TrimSpace(query)
	if q == "" {
		return Result{}, ErrEmptyQuery
	}

	if code, err := errcatalog.ParseCode(q); err == nil {
		return s.resolveCode(code), nil
	}

	code, ok := s.catalog.Code(q)
	if !ok {
		code, ok = s.catalog.Code(strings.ToUpper(q))
	}
	if !ok {
		return Result{}, ErrUnknownName.WithData("query", q)
	}
	return s.resolveCode(code), nil
}

// List 返回注册表中的项；feature 为空时返回全部。
func (s *Service) List(ctx context.Context, feature string) ([]Result, error) {
	_ = ctx
	var entries []errcatalog.Entry
	if f := strings.TrimSpace(feature); f != "" {
		var ok bool
		entries, ok = s.catalog.FeatureEntries(errcatalog.Feature(f))
		if !ok {
			return nil, ErrUnknownFeature.WithData("feature", f)
		}
	} else {
		entries = s.catalog.Entries()
	}

	out := make([]Result, 0, len(entries))
	for _, e := range entries {
		out = append(out, toResult(e))
	}
	return out, nil
}

// Features 按注册顺序返回启用的特性及其生效项数。
func (s *Service) Features(ctx context.Context) []FeatureInfo {
	_ = ctx
	features := s.catalog.Features()
	out := make([]FeatureInfo, 0, len(features))
	for _, f := range features {
		entries, _ := s.catalog.FeatureEntries(f)
		out = append(out, FeatureInfo{Name: string(f), Count: len(entries)})
	}
	return out
}

func (s *Service) resolveCode(code errcatalog.Code) Result {
	if e, ok := s.catalog.Entry(code); ok {
		return toResult(e)
	}
	return Result{
		Code: int32(code),
		Hex:  code.Hex(),
		Name: errcatalog.Unknown(code),
	}
}

func toResult(e errcatalog.Entry) Result {
	return Result{
		Code:        int32(e.Code),
		Hex:         e.Code.Hex(),
		Name:        e.Name,
		Description: e.Description,
		Feature:     string(e.Feature),
		Known:       true,
	}
}
