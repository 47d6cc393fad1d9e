package app

import "EspDiag/modules/kit/errx"

type Code = errx.Code

type Error = errx.Error

// 查询服务只产生两类业务错误：参数为空、符号名/特性不存在。
var (
	ErrEmptyQuery     = errx.ErrReqParam.WithMsg("查询内容为空")
	ErrUnknownName    = errx.ErrNotFound.WithMsg("未注册的符号名")
	ErrUnknownFeature = errx.ErrNotFound.WithMsg("未启用的特性")
)
