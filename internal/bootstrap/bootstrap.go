// Package bootstrap 按配置装配进程级依赖：日志、状态码注册表、断言器。
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"EspDiag/internal/diag"
	"EspDiag/internal/errcatalog"
	"EspDiag/internal/shared/config"
	"EspDiag/internal/shared/logs"
)

// SourceCatalog 是注册表相关日志的来源标签。
const SourceCatalog = "CATALOG"

type App struct {
	Loader   *config.Loader
	Log      *logs.Logger
	Catalog  *errcatalog.Catalog
	Asserter *diag.Asserter
}

// New 读取配置并装配 App。cfgPath 为空时按 config.Load 的约定查找。
func New(app, cfgPath string, opts ...logs.Option) (*App, error) {
	loader, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg := loader.Config()

	log, err := logs.New(app, cfg.Log, opts...)
	if err != nil {
		return nil, err
	}

	catalog, err := BuildCatalog(cfg.Catalog)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	catalogLog := log.Named(SourceCatalog)
	for _, c := range catalog.Conflicts() {
		catalogLog.Warn("duplicate status code shadowed",
			zap.Int32("code", int32(c.Code)),
			zap.String("hex", c.Code.Hex()),
			zap.String("kept", c.Kept.Name),
			zap.String("kept_feature", string(c.Kept.Feature)),
			zap.String("shadowed", c.Shadowed.Name),
			zap.String("shadowed_feature", string(c.Shadowed.Feature)),
		)
	}
	catalogLog.Debug("catalog ready",
		zap.Int("entries", catalog.Len()),
		zap.Any("features", catalog.Features()),
	)

	return &App{
		Loader:  loader,
		Log:     log,
		Catalog: catalog,
		Asserter: diag.New(catalog, log,
			diag.WithEnabled(cfg.Diag.Enabled),
			diag.WithExitCode(cfg.Diag.ExitCode),
		),
	}, nil
}

// BuildCatalog 用内置表加上 overlay 文件构建注册表。内置表先注册，数值冲突时内置项生效。
func BuildCatalog(cfg config.CatalogConfig) (*errcatalog.Catalog, error) {
	groups := errcatalog.Builtin()
	if cfg.Overlay != "" {
		overlay, err := errcatalog.LoadGroupsFile(cfg.Overlay)
		if err != nil {
			return nil, err
		}
		groups = append(groups, overlay...)
	}

	features := cfg.FeatureSet()
	known := make(map[errcatalog.Feature]bool)
	for _, g := range groups {
		known[g.Feature] = true
	}
	for _, f := range features {
		if !known[f] {
			return nil, fmt.Errorf("catalog.features: unknown feature %q", f)
		}
	}
	if cfg.Overlay == "" && len(features) == 0 {
		return errcatalog.Default(), nil
	}
	return errcatalog.New(groups, features...), nil
}

// WatchConfig 监听配置文件变更并热更新日志级别；其它配置项需要重启生效。
func (a *App) WatchConfig() {
	a.Loader.Watch(func(cfg *config.Config, err error) {
		if err != nil {
			a.Log.Warn("config reload rejected", zap.Error(err))
			return
		}
		if err := a.Log.SetLevel(cfg.Log.Level); err != nil {
			a.Log.Warn("log level reload failed", zap.Error(err))
			return
		}
		a.Log.Info("config reloaded", zap.String("log_level", a.Log.Level().String()))
	})
}

func (a *App) Close() error {
	return a.Log.Close()
}
