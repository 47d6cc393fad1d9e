package diag

import (
	"fmt"
	"runtime"

	"go.uber.org/zap/zapcore"

	"EspDiag/internal/errcatalog"
)

// Location 是守卫调用点。File 为完整路径，String() 输出 "目录/文件名:行号"。
type Location struct {
	File     string
	Line     int
	Function string
}

func (l Location) String() string {
	return zapcore.EntryCaller{Defined: l.File != "", File: l.File, Line: l.Line}.TrimmedPath()
}

// Context 是一次失败检查的现场，只在不一致时构造。
type Context struct {
	Observed errcatalog.Code
	Expected errcatalog.Code
	Name     string
	Location Location
	Expr     string
}

// String 输出单行诊断，例如：
//
//	check failed: rc 0x102 (ESP_ERR_INVALID_ARG) != 0x0 at main/camera.go:42 func: main.initCamera expr: cam.Init()
func (c Context) String() string {
	return fmt.Sprintf("check failed: rc %s (%s) != %s at %s func: %s expr: %s",
		c.Observed.Hex(), c.Name, c.Expected.Hex(), c.Location, c.Location.Function, c.Expr)
}

// AssertionError 在注入的退出函数返回时由停机守卫 panic 抛出。
type AssertionError struct {
	Context Context
}

func (e *AssertionError) Error() string {
	return e.Context.String()
}

// callerLocation 返回调用者往上 skip 层的栈帧，0 表示 callerLocation 的直接调用者。
func callerLocation(skip int) Location {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Location{Function: "??"}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	fn := frame.Function
	if fn == "" {
		fn = "??"
	}
	return Location{File: frame.File, Line: frame.Line, Function: fn}
}
