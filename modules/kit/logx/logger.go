package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是诊断链路使用的最小日志接口。
//
// 约束：
// - 每次调用输出一行，调用方不负责加锁，串行化由底层 WriteSyncer 保证
// - Named 对应固件日志里的来源标签（HAL/CAMERA/BLE/WIFI）
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
	Named(source string) Logger
	Sync() error
}

// 固件日志的来源标签。
const (
	SourceHAL    = "HAL"
	SourceCamera = "CAMERA"
	SourceBLE    = "BLE"
	SourceWiFi   = "WIFI"
)
