package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
	"github.com/omeyang/xcidr/pkg/calc/xrange"
	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
	"github.com/omeyang/xcidr/pkg/config/xconf"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数数量或组合错误，映射为退出码 2。
// 参数值本身的格式错误（非法地址、掩码等）不属于此类，
// 按计算错误原样输出并映射为退出码 1。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, a ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createDisplayCommand(),
		createSubnetsCommand(),
		createGetSubnetCommand(),
		createSameSubnetCommand(),
		createCheckCommand("check-ip", "校验 IPv4 地址格式", "<ip>", xaddr.IsValidAddr),
		createCheckCommand("check-mask", "校验子网掩码（点分或前缀数字）", "<mask|prefix>", xaddr.IsValidMask),
		createCheckCommand("check-cidr", "校验 CIDR 格式", "<cidr>", xaddr.IsValidCIDR),
		createFindRangeCommand(),
		createConvertCommand(),
	}
}

// loadSettings 加载运行设置，--config 未指定时使用默认值。
func loadSettings(cmd *cli.Command, log *slog.Logger) (xconf.Settings, error) {
	path := cmd.String("config")
	if path == "" {
		return xconf.Default(), nil
	}
	s, err := xconf.Load(path)
	if err != nil {
		return xconf.Settings{}, err
	}
	log.Debug("settings loaded", "path", path,
		"max_enumerate", s.Limits.MaxEnumerate, "page_size", s.Limits.PageSize)
	return s, nil
}

// subnetFromArgs 从位置参数构造子网：单参数 CIDR 或 <ip> <mask|prefix> 两参数。
func subnetFromArgs(args []string) (xsubnet.Subnet, error) {
	switch len(args) {
	case 1:
		return xsubnet.Parse(args[0])
	case 2:
		addr, err := xaddr.ParseAddr(args[0])
		if err != nil {
			return xsubnet.Subnet{}, err
		}
		maskBits, err := xaddr.ParseMaskOrPrefix(args[1])
		if err != nil {
			return xsubnet.Subnet{}, err
		}
		return xsubnet.New(addr, maskBits)
	default:
		return xsubnet.Subnet{}, usageErrorf("需要 <cidr> 或 <ip> <mask|prefix>，收到 %d 个参数", len(args))
	}
}

// createDisplayCommand 创建 display 子命令（子网摘要）。
func createDisplayCommand() *cli.Command {
	return &cli.Command{
		Name:      "display",
		Aliases:   []string{"d"},
		Usage:     "显示子网摘要（网络/掩码/广播/可用范围/主机数）",
		ArgsUsage: "<cidr> | <ip> <mask|prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			sn, err := subnetFromArgs(cmd.Args().Slice())
			if err != nil {
				return err
			}
			return renderSubnet(os.Stdout, sn, cmd.Bool("json"))
		},
	}
}

// createSubnetsCommand 创建 subnets 子命令（子网划分与分页枚举）。
func createSubnetsCommand() *cli.Command {
	return &cli.Command{
		Name:      "subnets",
		Aliases:   []string{"s"},
		Usage:     "按目标前缀划分子网",
		ArgsUsage: "<cidr> <new_prefix>",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "每页子网数量（省略时枚举全部，受安全上限约束）",
			},
			&cli.Uint64Flag{
				Name:    "page",
				Aliases: []string{"p"},
				Usage:   "页号（1 基，需配合 --count 或配置中的 page_size）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return usageErrorf("subnets 需要 <cidr> <new_prefix>")
			}
			log := newLogger(cmd.Bool("verbose"))

			part, err := partitionFromArgs(args[0], args[1])
			if err != nil {
				return err
			}
			settings, err := loadSettings(cmd, log)
			if err != nil {
				return err
			}

			perPage := cmd.Uint64("count")
			page := cmd.Uint64("page")
			if perPage == 0 && page > 0 {
				// 只给页号时按配置的默认页大小分页
				perPage = settings.Limits.PageSize
			}

			var subnets []xsubnet.Subnet
			if perPage == 0 {
				subnets, err = part.All(settings.Limits.MaxEnumerate)
			} else {
				if page == 0 {
					page = 1
				}
				subnets, err = part.Page(perPage, page)
			}
			if err != nil {
				return err
			}
			log.Debug("partition enumerated",
				"base", part.Base().String(), "new_prefix", part.NewBits(),
				"total", part.Count(), "returned", len(subnets))

			return renderSubnetList(os.Stdout, subnets, part, perPage, page, cmd.Bool("json"))
		},
	}
}

// partitionFromArgs 解析 <cidr> <new_prefix> 并构造划分。
func partitionFromArgs(cidr, prefix string) (xsubnet.Partition, error) {
	sn, err := xsubnet.Parse(cidr)
	if err != nil {
		return xsubnet.Partition{}, err
	}
	newBits, err := xaddr.ParsePrefixLen(prefix)
	if err != nil {
		return xsubnet.Partition{}, err
	}
	return xsubnet.NewPartition(sn, newBits)
}

// createGetSubnetCommand 创建 get-subnet 子命令（按序号取子网）。
func createGetSubnetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get-subnet",
		Aliases:   []string{"g"},
		Usage:     "按序号取单个子网（0 基，不枚举其余子网）",
		ArgsUsage: "<cidr> <new_prefix> <index>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 3 {
				return usageErrorf("get-subnet 需要 <cidr> <new_prefix> <index>")
			}
			part, err := partitionFromArgs(args[0], args[1])
			if err != nil {
				return err
			}
			index, err := parseIndex(args[2])
			if err != nil {
				return err
			}
			sn, err := part.At(index)
			if err != nil {
				return err
			}
			return renderSubnet(os.Stdout, sn, cmd.Bool("json"))
		},
	}
}

// createSameSubnetCommand 创建 same-subnet 子命令。
func createSameSubnetCommand() *cli.Command {
	return &cli.Command{
		Name:      "same-subnet",
		Aliases:   []string{"same"},
		Usage:     "判断两个地址是否属于同一子网",
		ArgsUsage: "<ip1> <ip2> <mask|prefix> [mask2|prefix2]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 3 || len(args) > 4 {
				return usageErrorf("same-subnet 需要 <ip1> <ip2> <mask> [mask2]")
			}
			ip1, err := xaddr.ParseAddr(args[0])
			if err != nil {
				return err
			}
			ip2, err := xaddr.ParseAddr(args[1])
			if err != nil {
				return err
			}
			mask1, err := maskFromArg(args[2])
			if err != nil {
				return err
			}
			mask2 := netip.Addr{}
			if len(args) == 4 {
				if mask2, err = maskFromArg(args[3]); err != nil {
					return err
				}
			}
			same, err := xsubnet.SameSubnetMasks(ip1, ip2, mask1, mask2)
			if err != nil {
				return err
			}
			return renderSame(os.Stdout, ip1, ip2, same, cmd.Bool("json"))
		},
	}
}

// maskFromArg 解析掩码参数（点分或前缀数字）为掩码地址。
func maskFromArg(s string) (netip.Addr, error) {
	maskBits, err := xaddr.ParseMaskOrPrefix(s)
	if err != nil {
		return netip.Addr{}, err
	}
	return xaddr.MaskFromPrefix(maskBits)
}

// createCheckCommand 创建校验类子命令（check-ip / check-mask / check-cidr）。
// 校验不通过输出结果并映射退出码 1，而非中断式错误。
func createCheckCommand(name, usage, argsUsage string, valid func(string) bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: argsUsage,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("%s 需要且仅需要 1 个参数", name)
			}
			ok := valid(args[0])
			if err := renderCheck(os.Stdout, name, args[0], ok, cmd.Bool("json")); err != nil {
				return err
			}
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

// createFindRangeCommand 创建 find-range 子命令（可用地址查找）。
func createFindRangeCommand() *cli.Command {
	return &cli.Command{
		Name:      "find-range",
		Aliases:   []string{"fr"},
		Usage:     "在子网内查找可用主机地址，可指定排除地址",
		ArgsUsage: "<cidr> <count> [exclusions...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "contiguous",
				Usage: "要求结果为地址值连续的一段",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return usageErrorf("find-range 需要 <cidr> <count> [exclusions...]")
			}
			sn, err := xsubnet.Parse(args[0])
			if err != nil {
				return err
			}
			n, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			excluded, err := parseExclusions(args[2:])
			if err != nil {
				return err
			}

			jsonOut := cmd.Bool("json")
			if cmd.Bool("contiguous") {
				r, err := xrange.FindContiguous(sn, n, excluded)
				if err != nil {
					return err
				}
				return renderRange(os.Stdout, r, jsonOut)
			}
			hosts, err := xrange.Find(sn, n, excluded)
			if err != nil {
				return err
			}
			return renderHosts(os.Stdout, hosts, jsonOut)
		},
	}
}

// parseExclusions 逐个解析排除地址，任一非法立即报错。
func parseExclusions(args []string) ([]netip.Addr, error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]netip.Addr, 0, len(args))
	for _, s := range args {
		addr, err := xaddr.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("exclusion %q: %w", s, err)
		}
		out = append(out, addr)
	}
	return out, nil
}

// parseIndex 解析非负整数参数（序号、数量）。
func parseIndex(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, usageErrorf("%q 不是合法的非负整数", s)
	}
	return n, nil
}

// createConvertCommand 创建 convert 子命令（掩码与前缀互转）。
func createConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "掩码与前缀长度互转（255.255.255.0 ↔ 24）",
		ArgsUsage: "<mask|prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return usageErrorf("convert 需要且仅需要 1 个参数")
			}
			maskBits, err := xaddr.ParseMaskOrPrefix(args[0])
			if err != nil {
				return err
			}
			mask, err := xaddr.MaskFromPrefix(maskBits)
			if err != nil {
				return err
			}
			return renderConvert(os.Stdout, mask, maskBits, cmd.Bool("json"))
		},
	}
}
