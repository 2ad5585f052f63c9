package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
)

var (
	// 这些变量在编译时通过 -ldflags 设置
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "显示版本信息",
		Action: func(c *cli.Context) error {
			showVersion()
			return nil
		},
	}
}

// showVersion 显示版本信息
func showVersion() {
	fmt.Printf("🚀 Conduit API服务\n")
	fmt.Printf("版本: %s\n", Version)
	fmt.Printf("Git提交: %s\n", GitCommit)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Go版本: %s\n", runtime.Version())
	fmt.Printf("平台: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
