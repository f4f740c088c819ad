package xaddr

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddr 严格解析 IPv4 点分十进制地址。
// 要求恰好四段、每段为 [0,255] 的十进制数；接受前导零（"001"）。
// 拒绝 IPv6、前后空白和多余字符，失败返回 [ErrInvalidAddress]。
func ParseAddr(s string) (netip.Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return netip.Addr{}, fmt.Errorf("%w: expected 4 octets, got %d in %q", ErrInvalidAddress, len(parts), s)
	}
	var b [4]byte
	for i, p := range parts {
		// strconv.ParseUint 不接受 '+'/'-' 前缀与空白，无需额外校验。
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: invalid octet %q in %q", ErrInvalidAddress, p, s)
		}
		b[i] = byte(n)
	}
	return netip.AddrFrom4(b), nil
}

// IsValidAddr 报告 s 是否为合法的 IPv4 点分十进制地址。
// 校验规则与 [ParseAddr] 一致。
func IsValidAddr(s string) bool {
	_, err := ParseAddr(s)
	return err == nil
}

// AddrFromUint32 从 uint32 表示创建 IPv4 地址。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 非 IPv4 地址返回 (0, false)。IPv4-mapped IPv6 地址自动去映射。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}
