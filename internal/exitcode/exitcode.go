// Package exitcode 定义命令行工具的退出码，遵循 sysexits.h 约定。
package exitcode

const (
	// ExitOK 表示成功。
	ExitOK = 0

	// ExitUsage 表示命令行参数错误。
	ExitUsage = 64

	// ExitDataErr 表示输入数据格式错误（例如无法解析的状态码）。
	ExitDataErr = 65

	// ExitNoInput 表示输入文件不存在或不可读。
	ExitNoInput = 66

	// ExitUnavailable 表示服务不可用。
	ExitUnavailable = 69

	// ExitSoftware 表示内部软件错误；诊断断言失败时默认以此退出。
	ExitSoftware = 70

	// ExitConfig 表示配置错误。
	ExitConfig = 78
)
