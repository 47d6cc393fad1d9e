// errcat 查询 ESP-IDF 状态码，并为脚本提供状态码断言。
package main

import (
	"os"

	"EspDiag/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
