package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	defaultConfigRelPath = "configs/conf.yml"
	envPrefix            = "ESPDIAG"
)

// Loader 持有一份 viper 实例；Watch 之后配置文件变更会重新解码并回调。
type Loader struct {
	v    *viper.Viper
	path string

	mu  sync.RWMutex
	cur *Config
}

// Load 读取配置并校验。
//
// 约定：
// 1) 传入 path（相对/绝对路径）则必须存在；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`，找不到时只使用默认值和环境变量。
//
// 环境变量以 ESPDIAG_ 为前缀，层级用下划线连接，例如 ESPDIAG_LOG_LEVEL、ESPDIAG_CATALOG_FEATURES=nvs,wifi。
func Load(path string) (*Loader, error) {
	if path == "" {
		curDir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = findConfigUpward(curDir)
	} else if !fileExist(path) {
		return nil, fmt.Errorf("config file not exist, configPath=%v: %w", path, os.ErrNotExist)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	l := &Loader{v: v, path: path}
	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	l.cur = cfg
	return l, nil
}

// Config 返回最近一次成功解码的配置。
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cur
}

// Path 返回实际使用的配置文件路径；未使用配置文件时为空。
func (l *Loader) Path() string {
	return l.path
}

// Watch 监听配置文件变更。新配置解码或校验失败时 fn 收到 err，当前配置保持不变。
// 未使用配置文件时什么都不做。
func (l *Loader) Watch(fn func(*Config, error)) {
	if l.path == "" || fn == nil {
		return
	}
	l.v.OnConfigChange(func(fsnotify.Event) {
		cfg, err := l.decode()
		if err != nil {
			fn(nil, err)
			return
		}
		l.mu.Lock()
		l.cur = cfg
		l.mu.Unlock()
		fn(cfg, nil)
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := l.v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("viper unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
