package xsubnet

import (
	"fmt"
	"net/netip"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
)

// SameSubnet 报告两个地址在前缀长度 maskBits 下是否属于同一网络。
// 纯比较：(ip1 & mask) == (ip2 & mask)，无副作用。
// 非 IPv4 地址或 maskBits 越界返回 false。
func SameSubnet(ip1, ip2 netip.Addr, maskBits int) bool {
	if maskBits < 0 || maskBits > 32 {
		return false
	}
	v1, ok1 := xaddr.AddrToUint32(ip1)
	v2, ok2 := xaddr.AddrToUint32(ip2)
	if !ok1 || !ok2 {
		return false
	}
	var m uint32
	if maskBits > 0 {
		m = ^uint32(0) << (32 - maskBits)
	}
	return v1&m == v2&m
}

// SameSubnetMasks 报告两个地址在各自掩码下是否落在同一网络：
// (ip1 & mask1) == (ip2 & mask2)。
// mask2 传零值 [netip.Addr] 时回退为 mask1（两地址同掩码比较）。
// 掩码必须是连续位模式，否则返回 [xaddr.ErrInvalidMask]；
// 非 IPv4 地址返回 [xaddr.ErrInvalidAddress]。
func SameSubnetMasks(ip1, ip2, mask1, mask2 netip.Addr) (bool, error) {
	bits1, err := xaddr.PrefixFromMask(mask1)
	if err != nil {
		return false, err
	}
	bits2 := bits1
	if mask2.IsValid() {
		if bits2, err = xaddr.PrefixFromMask(mask2); err != nil {
			return false, err
		}
	}

	v1, ok1 := xaddr.AddrToUint32(ip1)
	v2, ok2 := xaddr.AddrToUint32(ip2)
	if !ok1 || !ok2 {
		return false, fmt.Errorf("%w: both addresses must be IPv4", xaddr.ErrInvalidAddress)
	}
	return v1&maskOf(bits1) == v2&maskOf(bits2), nil
}

// maskOf 返回前缀长度对应的 uint32 掩码，bits 为 0 时返回 0。
func maskOf(maskBits int) uint32 {
	if maskBits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - maskBits)
}
