package errx

// 这里定义查询服务与工具链共用的系统类错误码。
//
// 约束：
// - SDK 状态码（ESP_ERR_*）不在这里定义，它们由 errcatalog 的注册表提供
// - 这里只放“服务/工具自身”的错误语义，便于 HTTP/gRPC 层统一映射

const (
	// CodeInternal 表示服务内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用（配置文件、下游服务等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeNotFound 表示查询的符号名/特性不存在。
	CodeNotFound Code = "NOT_FOUND"
	// 请求参数错误
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
)

// 统一系统类哨兵错误（允许 WithData/WithCause/WithMsg 派生新对象）。
var (
	ErrInternal    = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
	ErrNotFound    = NewBiz(CodeNotFound, "未找到")
	ErrReqParam    = NewBiz(CodeReqParamError, "请求参数错误")
)
