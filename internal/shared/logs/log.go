// Package logs 按配置装配进程使用的 logx.Logger。
//
// 不再持有全局 logger：调用方通过 New 拿到实例并显式向下传递，
// 控制台输出的串行化句柄（zapcore.WriteSyncer）也由调用方注入。
package logs

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"EspDiag/internal/shared/config"
	"EspDiag/modules/kit/logx"
)

type options struct {
	console zapcore.WriteSyncer
	start   time.Time
}

type Option func(*options)

// WithConsole 指定控制台输出。ws 必须自行保证并发写安全，例如 zapcore.Lock(f)。
func WithConsole(ws zapcore.WriteSyncer) Option {
	return func(o *options) {
		if ws != nil {
			o.console = ws
		}
	}
}

// WithStart 指定运行时长的起点，默认取 New 被调用的时刻。
func WithStart(t time.Time) Option {
	return func(o *options) {
		o.start = t
	}
}

// Logger 在 logx.ZapLogger 之上保留 AtomicLevel，供配置热更新调整级别。
type Logger struct {
	*logx.ZapLogger
	level zap.AtomicLevel
	file  *lumberjack.Logger
}

// New 创建 logger：
//   - 控制台：固件串口格式（见 logx.ConsoleEncoderConfig）
//   - 文件：cfg.FileDir 非空时追加一路 JSON 输出，由 lumberjack 切割
//   - cfg.Enabled 为 false 时返回丢弃全部输出的 logger
func New(app string, cfg config.LogConfig, opts ...Option) (*Logger, error) {
	o := options{
		console: zapcore.Lock(os.Stderr),
		start:   time.Now(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	lvl, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	if !cfg.Enabled {
		return &Logger{ZapLogger: logx.NewZapLogger(zap.NewNop()), level: atomicLevel}, nil
	}

	core := logx.NewConsoleCore(o.console, atomicLevel, o.start)

	var file *lumberjack.Logger
	if cfg.FileDir != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.FileDir,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig()), zapcore.AddSync(file), atomicLevel).
			With([]zap.Field{zap.String("app", app)})
		core = zapcore.NewTee(core, fileCore)
	}

	// 控制台编码器不输出 caller，开发模式下 caller 只出现在文件里；
	// 也不加 stacktrace，保证每条诊断只占一行。
	var zopts []zap.Option
	if cfg.Dev {
		zopts = append(zopts, zap.Development(), zap.AddCaller())
	}

	return &Logger{
		ZapLogger: logx.NewZapLogger(zap.New(core, zopts...)),
		level:     atomicLevel,
		file:      file,
	}, nil
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "source",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}

// SetLevel 动态调整级别，配置热更新时调用。
func (l *Logger) SetLevel(level string) error {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

// Close 刷新缓冲并关闭日志文件。
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
