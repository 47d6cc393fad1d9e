package errcatalog

import "EspDiag/modules/kit/errx"

// Err 把状态码转换成 Go error：OK 返回 nil，其余返回携带原始状态码的 *errx.Error，
// 错误码就是解析出的符号名（未注册时为兜底名）。
func (c *Catalog) Err(code Code) error {
	if code == OK {
		return nil
	}
	e, ok := c.Entry(code)
	if !ok {
		return errx.NewStatus(errx.Code(Unknown(code)), int32(code), "")
	}
	return errx.NewStatus(errx.Code(e.Name), int32(code), e.Description)
}
