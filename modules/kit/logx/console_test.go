package logx

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{-time.Second, "00:00:00.000"},
		{1234 * time.Millisecond, "00:00:01.234"},
		{2*time.Hour + 3*time.Minute + 4*time.Second + 5*time.Millisecond, "02:03:04.005"},
		{25*time.Hour + time.Millisecond, "1:01:00:00.001"},
		{100 * 24 * time.Hour, "1:00:00:00.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatUptime(tc.in), tc.in.String())
	}
}

var consoleLine = regexp.MustCompile(`^E \| \d{2}:\d{2}:\d{2}\.\d{3} \| WIFI \| connect failed \| \{"code": 258\}$`)

func TestConsoleCore_固件格式(t *testing.T) {
	var buf bytes.Buffer
	core := NewConsoleCore(zapcore.Lock(zapcore.AddSync(&buf)), zapcore.DebugLevel, time.Now())
	l := NewZapLogger(zap.New(core))

	l.Named(SourceWiFi).Error("connect failed", zap.Int("code", 258))
	l.Info("boot")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, consoleLine, lines[0])
	assert.Regexp(t, `^I \| \d{2}:\d{2}:\d{2}\.\d{3} \| boot$`, lines[1], "来源为空时省略来源列")
}

// 级别列在行首，与固件串口日志一致；With 克隆出的 encoder 也保持该列序。
func TestConsoleCore_级别在时间之前(t *testing.T) {
	var buf bytes.Buffer
	core := NewConsoleCore(zapcore.Lock(zapcore.AddSync(&buf)), zapcore.DebugLevel, time.Now())
	zl := zap.New(core).Named(SourceCamera).With(zap.String("sensor", "ov2640"))

	zl.Debug("read sccb id")
	zl.Error("init failed", zap.Int("code", 0x20001))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^D \| \d{2}:\d{2}:\d{2}\.\d{3} \| CAMERA \| read sccb id \| \{"sensor": "ov2640"\}$`, lines[0])
	assert.Regexp(t, `^E \| \d{2}:\d{2}:\d{2}\.\d{3} \| CAMERA \| init failed \| \{"sensor": "ov2640", "code": 131073\}$`, lines[1])
}

func TestConsoleCore_并发写入整行不交错(t *testing.T) {
	var buf bytes.Buffer
	core := NewConsoleCore(zapcore.Lock(zapcore.AddSync(&buf)), zapcore.DebugLevel, time.Now())
	l := NewZapLogger(zap.New(core)).Named(SourceWiFi)

	const writers, perWriter = 8, 100
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				l.Error("connect failed", zap.Int("code", 258))
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, writers*perWriter)
	for _, line := range lines {
		require.Regexp(t, consoleLine, line)
	}
}

func TestSeverityEncoder(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	for level, want := range map[zapcore.Level]string{
		zapcore.DebugLevel: "D",
		zapcore.InfoLevel:  "I",
		zapcore.WarnLevel:  "W",
		zapcore.ErrorLevel: "E",
		zapcore.FatalLevel: "F",
	} {
		require.NoError(t, enc.AddArray(level.String(), zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
			SeverityEncoder(level, arr)
			return nil
		})))
		assert.Equal(t, []any{want}, enc.Fields[level.String()])
	}
}
