// xcidr 是 IPv4 子网计算命令行工具。
//
// 用法:
//
//	xcidr [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件路径 (.yaml/.yml/.json)
//	-j, --json     以 JSON 输出结果
//	    --verbose  输出调试日志
//
// 命令:
//
//	display <cidr>                          显示子网摘要（网络/掩码/广播/可用范围）
//	display <ip> <mask|prefix>              同上，地址与掩码分开给出
//	subnets <cidr> <new_prefix>             划分子网（--count 每页数量，--page 页号）
//	get-subnet <cidr> <new_prefix> <index>  按序号取单个子网（0 基，O(1) 计算）
//	same-subnet <ip1> <ip2> <mask> [mask2]  判断两地址是否同网
//	check-ip <ip>                           校验 IPv4 地址格式
//	check-mask <mask|prefix>                校验掩码（点分或前缀数字）
//	check-cidr <cidr>                       校验 CIDR 格式
//	find-range <cidr> <count> [excl...]     查找可用地址（--contiguous 要求连续段）
//	convert <mask|prefix>                   掩码与前缀长度互转
//
// 退出码:
//
//	0: 命令执行成功（check 命令: 输入合法）
//	1: 计算失败或校验不通过
//	2: 参数错误（缺少参数、未知命令、格式非法等）
//
// 示例:
//
//	xcidr display 192.168.1.0/24
//	xcidr subnets 10.0.0.0/8 16 --count 5
//	xcidr get-subnet 10.0.0.0/8 16 1
//	xcidr same-subnet 192.168.1.10 192.168.1.200 255.255.255.0
//	xcidr find-range 192.168.1.0/29 3 192.168.1.1
//	xcidr --json display 172.16.0.0/26
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xcidr",
		Usage:   "IPv4 子网计算工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 输出结果",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "输出调试日志",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var uErr *usageError
		if errors.As(err, &uErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", uErr.msg)
			return 2
		}
		// CLI 框架产生的参数错误（未知 flag、未知命令）同样映射为退出码 2。
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// newLogger 按 verbose 开关构建 slog 日志器，输出到 stderr。
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
