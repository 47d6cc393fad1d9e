package errx

import (
	"errors"
	"fmt"
	"runtime"
)

// Code 表示错误码（对外语义的稳定标识）。
// 由 SDK 状态码转换而来的错误，Code 就是状态码的符号名（例如 ESP_ERR_NO_MEM）。
type Code string

type kind uint8

const (
	kindBiz kind = iota
	kindSys
)

// Error 是通用错误模型：
// - code/msg：对外语义
// - status：底层 SDK 返回的原始状态码（仅在由状态码转换时存在）
// - data：上下文（禁止外部修改，内部会复制）
// - cause：原始错误链（仅用于溯源，不参与对外语义）
// - stack：只在“系统类错误”第一次 wrap/转换处捕获一次
type Error struct {
	code      Code
	msg       string
	status    int32
	hasStatus bool
	data      map[string]any
	cause     error
	stack     []uintptr
	kind      kind
}

func NewBiz(code Code, msg string) *Error {
	return &Error{
		code: code,
		msg:  msg,
		kind: kindBiz,
	}
}

func NewSys(code Code, msg string) *Error {
	return &Error{
		code: code,
		msg:  msg,
		kind: kindSys,
	}
}

// NewStatus 把 SDK 状态码包装成系统类错误，并在此处捕获一次调用栈。
func NewStatus(code Code, status int32, msg string) *Error {
	return &Error{
		code:      code,
		msg:       msg,
		status:    status,
		hasStatus: true,
		stack:     captureStack(3),
		kind:      kindSys,
	}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	head := string(e.code)
	if e.hasStatus {
		head = fmt.Sprintf("%s(%d)", e.code, e.status)
	}
	if e.msg == "" {
		if e.cause == nil {
			return head
		}
		return fmt.Sprintf("%s: %v", head, e.cause)
	}
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", head, e.msg)
	}
	return fmt.Sprintf("%s: %s: %v", head, e.msg, e.cause)
}

// Unwrap 让 errors.Is / errors.As 可以沿着 cause 链溯源。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is 仅按错误码判断“语义是否相同”，忽略 msg/status/data/cause。
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.code == t.code
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) CodeText() string {
	if e == nil {
		return ""
	}
	return string(e.code)
}

// IsBiz 判断错误链中最外层的 *Error 是否为业务类错误（调用方问题，不需要栈和告警）。
func IsBiz(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.kind == kindBiz
}

func (e *Error) Msg() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Status 返回原始 SDK 状态码；非状态码转换而来的错误返回 false。
func (e *Error) Status() (int32, bool) {
	if e == nil || !e.hasStatus {
		return 0, false
	}
	return e.status, true
}

// Data 返回 data 的拷贝，避免外部修改影响错误上下文。
func (e *Error) Data() map[string]any {
	if e == nil || e.data == nil {
		return nil
	}
	return cloneAnyMap(e.data)
}

// Stack 返回“错误最早发生/被转换那一刻”的调用栈。
func (e *Error) Stack() []uintptr {
	if e == nil || len(e.stack) == 0 {
		return nil
	}
	out := make([]uintptr, len(e.stack))
	copy(out, e.stack)
	return out
}

func (e *Error) clone() *Error {
	return &Error{
		code:      e.code,
		msg:       e.msg,
		status:    e.status,
		hasStatus: e.hasStatus,
		data:      cloneAnyMap(e.data),
		cause:     e.cause,
		stack:     cloneStack(e.stack),
		kind:      e.kind,
	}
}

func (e *Error) WithData(key string, value any) *Error {
	next := e.clone()
	if next.data == nil {
		next.data = make(map[string]any, 1)
	}
	next.data[key] = value
	return next
}

func (e *Error) WithDataMap(data map[string]any) *Error {
	next := e.clone()
	if len(data) == 0 {
		return next
	}
	if next.data == nil {
		next.data = make(map[string]any, len(data))
	}
	for k, v := range data {
		next.data[k] = v
	}
	return next
}

// WithMsg 替换对外描述，常用于在哨兵错误上补充具体参数。
func (e *Error) WithMsg(msg string) *Error {
	next := e.clone()
	next.msg = msg
	return next
}

func (e *Error) WithCause(cause error) *Error {
	next := e.clone()
	next.cause = cause
	// 只在系统类错误首次挂 cause 时捕获一次；如果下层已有栈，则不重复捕获。
	if next.kind == kindSys && cause != nil && len(next.stack) == 0 && !hasStackInChain(cause) {
		next.stack = captureStack(3)
	}
	return next
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneStack(in []uintptr) []uintptr {
	if len(in) == 0 {
		return nil
	}
	out := make([]uintptr, len(in))
	copy(out, in)
	return out
}

func captureStack(skip int) []uintptr {
	const maxDepth = 64
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip, pcs)
	if n <= 0 {
		return nil
	}
	return pcs[:n]
}

func hasStackInChain(err error) bool {
	const maxDepth = 32
	for i := 0; i < maxDepth && err != nil; i++ {
		if sp, ok := err.(interface{ Stack() []uintptr }); ok && len(sp.Stack()) != 0 {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
