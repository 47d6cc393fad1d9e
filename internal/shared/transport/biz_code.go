package transport

import (
	"errors"

	"EspDiag/modules/kit/errx"
)

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
// 取值沿用 HTTP 状态码的语义区间：0 成功，4xx 调用方问题，5xx 服务端问题。
type BizCode int

const (
	OK            BizCode = 0
	ReqParamError BizCode = 400
	NotFound      BizCode = 404
	SystemError   BizCode = 500
	Unavailable   BizCode = 503
)

// BizCodeOf 把 errx 错误码映射成业务码；nil 为 OK，未识别的错误按 SystemError 处理。
func BizCodeOf(err error) BizCode {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, errx.ErrReqParam):
		return ReqParamError
	case errors.Is(err, errx.ErrNotFound):
		return NotFound
	case errors.Is(err, errx.ErrUnavailable):
		return Unavailable
	default:
		return SystemError
	}
}
