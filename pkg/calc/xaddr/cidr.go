package xaddr

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseCIDR 解析 CIDR 表示法 "addr/len"。
// 地址部分使用 [ParseAddr] 严格校验，前缀部分必须是 [0,32] 的十进制数。
// 返回的 [netip.Prefix] 保留地址的主机位（不做网络地址归一化），
// 由调用方按需调用 Masked()；失败返回 [ErrInvalidCIDR]。
func ParseCIDR(s string) (netip.Prefix, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return netip.Prefix{}, fmt.Errorf("%w: missing '/' in %q", ErrInvalidCIDR, s)
	}
	addr, err := ParseAddr(s[:idx])
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q: %w", ErrInvalidCIDR, s, err)
	}
	maskBits, err := ParsePrefixLen(s[idx+1:])
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q: %w", ErrInvalidCIDR, s, err)
	}
	return netip.PrefixFrom(addr, maskBits), nil
}

// IsValidCIDR 报告 s 是否为合法的 CIDR 表示法。
// 校验规则与 [ParseCIDR] 一致。
func IsValidCIDR(s string) bool {
	_, err := ParseCIDR(s)
	return err == nil
}
