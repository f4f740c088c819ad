package xaddr

import "errors"

// 地址、掩码与 CIDR 解析相关错误。
var (
	// ErrInvalidAddress 表示无效的 IPv4 地址字符串。
	ErrInvalidAddress = errors.New("xaddr: invalid IPv4 address")

	// ErrInvalidMask 表示无效或非连续的子网掩码。
	ErrInvalidMask = errors.New("xaddr: invalid subnet mask")

	// ErrInvalidPrefix 表示前缀长度超出 [0,32] 或非数字。
	ErrInvalidPrefix = errors.New("xaddr: invalid prefix length")

	// ErrInvalidCIDR 表示无效的 CIDR 表示法。
	ErrInvalidCIDR = errors.New("xaddr: invalid CIDR notation")
)
