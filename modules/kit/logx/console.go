package logx

import (
	"fmt"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const consoleSeparator = " | "

var consolePool = buffer.NewPool()

// ConsoleEncoderConfig 复刻固件串口日志中时间之后的各列：
//
//	E | 00:00:01.234 | WIFI | message | {"k": "v"}
//
// 级别列由 NewConsoleEncoder 写在行首，这里不配置 LevelKey。
// 时间是相对 start 的运行时长，超过一天时带天数前缀；来源为空时整列省略。
func ConsoleEncoderConfig(start time.Time) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		NameKey:          "source",
		MessageKey:       "msg",
		StacktraceKey:    "stack",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       UptimeEncoder(start),
		EncodeDuration:   zapcore.MillisDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: consoleSeparator,
	}
}

// consoleEncoder 在 zap console encoder 的输出前补上级别列。
// zap 的 console encoder 固定先写时间再写级别，无法靠配置调换。
type consoleEncoder struct {
	zapcore.Encoder
}

// NewConsoleEncoder 创建固件格式（SEV | time | SOURCE | message）的 encoder。
func NewConsoleEncoder(start time.Time) zapcore.Encoder {
	return consoleEncoder{Encoder: zapcore.NewConsoleEncoder(ConsoleEncoderConfig(start))}
}

func (e consoleEncoder) Clone() zapcore.Encoder {
	return consoleEncoder{Encoder: e.Encoder.Clone()}
}

func (e consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	rest, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	defer rest.Free()

	line := consolePool.Get()
	line.AppendString(severity(ent.Level))
	line.AppendString(consoleSeparator)
	_, _ = line.Write(rest.Bytes())
	return line, nil
}

// NewConsoleCore 创建固件格式的 console core。
// ws 由调用方提供并负责串行化（例如 zapcore.Lock(os.Stdout)），
// 同一时刻只有一个写入者，这里不再额外加锁。
func NewConsoleCore(ws zapcore.WriteSyncer, enab zapcore.LevelEnabler, start time.Time) zapcore.Core {
	return zapcore.NewCore(NewConsoleEncoder(start), ws, enab)
}

// SeverityEncoder 把级别编码成单个字母。
func SeverityEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(severity(l))
}

func severity(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "D"
	case zapcore.InfoLevel:
		return "I"
	case zapcore.WarnLevel:
		return "W"
	case zapcore.ErrorLevel:
		return "E"
	default:
		return "F"
	}
}

func UptimeEncoder(start time.Time) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(FormatUptime(t.Sub(start)))
	}
}

// FormatUptime 输出 hh:mm:ss.mmm；超过一天输出 d:hh:mm:ss.mmm（天数按 99 取模）。
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	const (
		second = 1000
		minute = 60 * second
		hour   = 60 * minute
		day    = 24 * hour
	)
	milli := ms % second
	sec := ms / second % 60
	mins := ms / minute % 60
	hours := ms / hour % 24
	if ms >= day {
		return fmt.Sprintf("%d:%02d:%02d:%02d.%03d", ms/day%99, hours, mins, sec, milli)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, mins, sec, milli)
}
