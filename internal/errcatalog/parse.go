package errcatalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex 按固件日志习惯输出十六进制，负数带符号（-1 → -0x1）。
func (c Code) Hex() string {
	if c < 0 {
		return fmt.Sprintf("-0x%x", -int64(c))
	}
	return fmt.Sprintf("0x%x", int64(c))
}

// Unknown 是未注册状态码的兜底名，同时包含十进制与十六进制。
func Unknown(code Code) string {
	return fmt.Sprintf("UNKNOWN_ERROR(%d/%s)", int64(code), code.Hex())
}

// ParseCode 解析十进制或 0x 前缀的十六进制状态码，允许负号。
func ParseCode(s string) (Code, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("parse status code: empty input")
	}
	sign, digits := "", raw
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	base := 10
	if lower := strings.ToLower(digits); strings.HasPrefix(lower, "0x") {
		base, digits = 16, digits[2:]
	}
	v, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("parse status code %q: %w", s, err)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("parse status code %q: out of int32 range", s)
	}
	return Code(v), nil
}
