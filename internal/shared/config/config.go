package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"EspDiag/internal/errcatalog"
)

type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Catalog    CatalogConfig    `yaml:"catalog" mapstructure:"catalog"`
	Diag       DiagConfig       `yaml:"diag" mapstructure:"diag"`
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	GRPCServer GRPCServerConfig `yaml:"grpcserver" mapstructure:"grpcserver"`
}

type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	// Enabled 为 false 时关闭全部日志输出（对应固件关闭调试串口）。
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// CatalogConfig 决定注册表启用哪些特性，以及额外加载的自定义状态码文件。
type CatalogConfig struct {
	Features []string `yaml:"features" mapstructure:"features"`
	Overlay  string   `yaml:"overlay" mapstructure:"overlay"`
}

type DiagConfig struct {
	Enabled  bool `yaml:"enabled" mapstructure:"enabled"`
	ExitCode int  `yaml:"exit_code" mapstructure:"exit_code"`
}

type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

func (c HTTPServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type GRPCServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

func (c GRPCServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// defaults 同时决定 viper 认识哪些 key，环境变量覆盖只对这里出现的 key 生效。
var defaults = map[string]any{
	"log.level":                "info",
	"log.dev":                  false,
	"log.file_dir":             "",
	"log.max_size":             10,
	"log.max_backups":          3,
	"log.max_age":              7,
	"log.compress":             false,
	"log.enabled":              true,
	"catalog.features":         []string{},
	"catalog.overlay":          "",
	"diag.enabled":             true,
	"diag.exit_code":           defaultExitCode,
	"httpserver.host":          "127.0.0.1",
	"httpserver.port":          8080,
	"httpserver.read_timeout":  "5s",
	"httpserver.write_timeout": "10s",
	"grpcserver.host":          "127.0.0.1",
	"grpcserver.port":          9090,
}

// 与 diag.DefaultExitCode 一致（EX_SOFTWARE）；config 不依赖 diag。
const defaultExitCode = 70

// Validate 检查配置取值。配置了 overlay 时特性可能来自 overlay 文件，这里只检查内置特性。
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Catalog.Overlay == "" {
		if err := validateFeatures(c.Catalog.Features); err != nil {
			return err
		}
	}
	if c.Diag.ExitCode < 1 || c.Diag.ExitCode > 125 {
		return fmt.Errorf("diag.exit_code must be in 1..125, got %d", c.Diag.ExitCode)
	}
	if err := validatePort("httpserver.port", c.HTTPServer.Port); err != nil {
		return err
	}
	if err := validatePort("grpcserver.port", c.GRPCServer.Port); err != nil {
		return err
	}
	if c.HTTPServer.ReadTimeout < 0 || c.HTTPServer.WriteTimeout < 0 {
		return fmt.Errorf("httpserver timeouts must not be negative")
	}
	return nil
}

// FeatureSet 把配置的特性名转换成 errcatalog.Feature，空列表表示全部启用。
func (c CatalogConfig) FeatureSet() []errcatalog.Feature {
	out := make([]errcatalog.Feature, 0, len(c.Features))
	for _, f := range c.Features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, errcatalog.Feature(f))
	}
	return out
}

func validateFeatures(features []string) error {
	known := make(map[errcatalog.Feature]bool)
	for _, f := range errcatalog.BuiltinFeatures() {
		known[f] = true
	}
	for _, f := range (CatalogConfig{Features: features}).FeatureSet() {
		if !known[f] {
			return fmt.Errorf("catalog.features: unknown feature %q", f)
		}
	}
	return nil
}

func validatePort(key string, port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("%s must be in 0..65535, got %d", key, port)
	}
	return nil
}

// ParseLevel 解析日志级别（大小写不敏感），空串视为 info。
// 断言诊断以 error 级别输出，高于 error 的级别会把诊断行过滤掉，因此不接受。
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	if lvl > zapcore.ErrorLevel {
		return zapcore.InfoLevel, fmt.Errorf("log.level: %q would hide diagnostics, use error or lower", s)
	}
	return lvl, nil
}
