package xsubnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
)

// Subnet 表示一个 IPv4 子网：网络地址 + 前缀长度。
// 值类型，内部前缀始终是掩码后的网络前缀（主机位为 0）。
// 零值无效，通过 [New] / [FromPrefix] / [Parse] 构造。
type Subnet struct {
	prefix netip.Prefix
}

// New 从地址与前缀长度构造子网。
// addr 的主机位会被清零归一化为网络地址（CIDR 输入中地址带主机位
// 视为对所在网络的描述，不报错）。
// 非 IPv4 地址或 bits 超出 [0,32] 返回 [ErrInvalidSubnet]。
func New(addr netip.Addr, maskBits int) (Subnet, error) {
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if !addr.Is4() {
		return Subnet{}, fmt.Errorf("%w: %s is not IPv4", ErrInvalidSubnet, addr)
	}
	if maskBits < 0 || maskBits > 32 {
		return Subnet{}, fmt.Errorf("%w: prefix length %d", ErrInvalidSubnet, maskBits)
	}
	return Subnet{prefix: netip.PrefixFrom(addr, maskBits).Masked()}, nil
}

// FromPrefix 从 [netip.Prefix] 构造子网，主机位同样被清零。
func FromPrefix(p netip.Prefix) (Subnet, error) {
	if !p.IsValid() {
		return Subnet{}, fmt.Errorf("%w: invalid prefix", ErrInvalidSubnet)
	}
	return New(p.Addr(), p.Bits())
}

// Parse 从 CIDR 文本构造子网（严格 IPv4 语法，见 [xaddr.ParseCIDR]）。
// 解析失败返回 [xaddr.ErrInvalidCIDR]。
func Parse(s string) (Subnet, error) {
	p, err := xaddr.ParseCIDR(s)
	if err != nil {
		return Subnet{}, err
	}
	return FromPrefix(p)
}

// IsValid 报告子网是否已初始化。
func (s Subnet) IsValid() bool {
	return s.prefix.IsValid()
}

// Network 返回网络地址（主机位全 0）。
func (s Subnet) Network() netip.Addr {
	return s.prefix.Addr()
}

// Bits 返回前缀长度。
func (s Subnet) Bits() int {
	return s.prefix.Bits()
}

// Prefix 返回底层的 [netip.Prefix]。
func (s Subnet) Prefix() netip.Prefix {
	return s.prefix
}

// Mask 返回点分十进制掩码地址。
func (s Subnet) Mask() netip.Addr {
	mask, _ := xaddr.MaskFromPrefix(s.Bits())
	return mask
}

// network 返回网络地址的 uint32 表示。
func (s Subnet) network() uint32 {
	v, _ := xaddr.AddrToUint32(s.prefix.Addr())
	return v
}

// maskUint32 返回掩码的 uint32 表示。
func (s Subnet) maskUint32() uint32 {
	if s.Bits() == 0 {
		return 0
	}
	return ^uint32(0) << (32 - s.Bits())
}

// Broadcast 返回广播地址（主机位全 1）。
// /31 与 /32 没有广播语义，返回范围末地址。
func (s Subnet) Broadcast() netip.Addr {
	return xaddr.AddrFromUint32(s.network() | ^s.maskUint32())
}

// FirstUsable 返回第一个可用主机地址。
// 前缀 < 31 为 network+1；/31 与 /32 为网络地址本身。
func (s Subnet) FirstUsable() netip.Addr {
	if s.Bits() < 31 {
		return xaddr.AddrFromUint32(s.network() + 1)
	}
	return s.Network()
}

// LastUsable 返回最后一个可用主机地址。
// 前缀 < 31 为 broadcast-1；/31 为另一端地址；/32 为该地址本身。
func (s Subnet) LastUsable() netip.Addr {
	b := s.network() | ^s.maskUint32()
	if s.Bits() < 31 {
		return xaddr.AddrFromUint32(b - 1)
	}
	return xaddr.AddrFromUint32(b)
}

// UsableCount 返回可用主机数量。
// /32 为 1，/31 为 2，其余为 2^(32-bits) - 2。
// 使用 uint64：/0 的 2^32-2 超出 uint32 语义边界的安全余量。
func (s Subnet) UsableCount() uint64 {
	switch s.Bits() {
	case 32:
		return 1
	case 31:
		return 2
	default:
		return (uint64(1) << (32 - s.Bits())) - 2
	}
}

// Range 返回子网的完整地址范围 network..broadcast。
func (s Subnet) Range() netipx.IPRange {
	return netipx.IPRangeFrom(s.Network(), s.Broadcast())
}

// UsableRange 返回可用主机地址范围。
func (s Subnet) UsableRange() netipx.IPRange {
	return netipx.IPRangeFrom(s.FirstUsable(), s.LastUsable())
}

// Contains 报告 addr 是否落在子网范围内（含网络与广播地址）。
// 非 IPv4 地址返回 false。
func (s Subnet) Contains(addr netip.Addr) bool {
	v, ok := xaddr.AddrToUint32(addr)
	if !ok {
		return false
	}
	return v&s.maskUint32() == s.network()
}

// Overlaps 报告两个子网的地址范围是否重叠。
// 对 IPv4 子网，重叠等价于一方包含另一方的网络地址。
func (s Subnet) Overlaps(o Subnet) bool {
	return s.Contains(o.Network()) || o.Contains(s.Network())
}

// String 返回 CIDR 表示（如 "192.168.1.0/24"）。
func (s Subnet) String() string {
	return s.prefix.String()
}
