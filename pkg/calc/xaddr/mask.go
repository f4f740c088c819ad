package xaddr

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
)

// MaskFromPrefix 将前缀长度转换为点分十进制掩码地址。
// 前缀 0 对应 0.0.0.0，32 对应 255.255.255.255。
// bits 超出 [0,32] 返回 [ErrInvalidPrefix]。
func MaskFromPrefix(maskBits int) (netip.Addr, error) {
	if maskBits < 0 || maskBits > 32 {
		return netip.Addr{}, fmt.Errorf("%w: %d (must be in [0,32])", ErrInvalidPrefix, maskBits)
	}
	if maskBits == 0 {
		return AddrFromUint32(0), nil
	}
	return AddrFromUint32(^uint32(0) << (32 - maskBits)), nil
}

// PrefixFromMask 将点分十进制掩码转换为前缀长度。
// 合法掩码必须是前缀全 1 后缀全 0 的连续位模式，
// 校验谓词为 inv&(inv+1) != 0（inv 为掩码取反），
// 0.0.0.0 与 255.255.255.255 两个边界由该谓词天然覆盖。
// 非连续掩码（如 255.0.255.0）返回 [ErrInvalidMask]。
func PrefixFromMask(mask netip.Addr) (int, error) {
	m, ok := AddrToUint32(mask)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not IPv4", ErrInvalidMask, mask)
	}
	inv := ^m
	if inv&(inv+1) != 0 {
		return 0, fmt.Errorf("%w: non-contiguous mask %s", ErrInvalidMask, mask)
	}
	return bits.OnesCount32(m), nil
}

// ParseMask 解析点分十进制掩码字符串为前缀长度。
// 地址格式错误或位模式非连续均返回 [ErrInvalidMask]。
func ParseMask(s string) (int, error) {
	addr, err := ParseAddr(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMask, s)
	}
	return PrefixFromMask(addr)
}

// ParsePrefixLen 解析数字形式的前缀长度。
// 非数字或超出 [0,32] 返回 [ErrInvalidPrefix]。
func ParsePrefixLen(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 32 {
		return 0, fmt.Errorf("%w: %q (must be a number in [0,32])", ErrInvalidPrefix, s)
	}
	return int(n), nil
}

// ParseMaskOrPrefix 解析掩码的两种文本形式为前缀长度：
// 数字前缀（"24"）或点分十进制掩码（"255.255.255.0"）。
// 数字形式优先尝试；两种形式都不匹配时返回点分形式的解析错误。
func ParseMaskOrPrefix(s string) (int, error) {
	if n, err := ParsePrefixLen(s); err == nil {
		return n, nil
	}
	return ParseMask(s)
}

// IsValidMask 报告 s 是否为合法掩码（数字前缀或点分十进制形式）。
func IsValidMask(s string) bool {
	_, err := ParseMaskOrPrefix(s)
	return err == nil
}
