package xsubnet

import "errors"

// 子网划分相关错误。
var (
	// ErrPrefixRange 表示目标前缀长度相对基础网络不合法。
	ErrPrefixRange = errors.New("xsubnet: prefix length out of range")

	// ErrIndexOutOfRange 表示子网序号超出划分总数。
	ErrIndexOutOfRange = errors.New("xsubnet: subnet index out of range")

	// ErrTooManySubnets 表示枚举数量超出安全上限。
	ErrTooManySubnets = errors.New("xsubnet: too many subnets requested")

	// ErrInvalidSubnet 表示无效的子网输入（非 IPv4 或前缀越界）。
	ErrInvalidSubnet = errors.New("xsubnet: invalid subnet")
)
