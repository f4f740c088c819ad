package xrange

import (
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

// FindContiguous 查找子网内首个长度不小于 n 的连续幸存段，
// 返回该段的前 n 个地址构成的范围。
// 与 [Find] 不同，结果保证地址值连续（排除集的空洞不可跨越）。
// n 为 0 返回零值范围；幸存总量不足返回 [*InsufficientError]；
// 总量足够但被排除集切碎、无单段满足时返回 [ErrNoContiguousRun]。
func FindContiguous(sn xsubnet.Subnet, n uint64, excluded []netip.Addr) (netipx.IPRange, error) {
	if n == 0 {
		return netipx.IPRange{}, nil
	}
	set, err := survivorSet(sn, excluded)
	if err != nil {
		return netipx.IPRange{}, err
	}
	avail := setSize(set)
	if avail < n {
		return netipx.IPRange{}, &InsufficientError{Requested: n, Available: avail}
	}

	for _, r := range set.Ranges() {
		from, _ := xaddr.AddrToUint32(r.From())
		to, _ := xaddr.AddrToUint32(r.To())
		if uint64(to-from)+1 >= n {
			return netipx.IPRangeFrom(
				r.From(),
				xaddr.AddrFromUint32(from+uint32(n-1)),
			), nil
		}
	}
	return netipx.IPRange{}, ErrNoContiguousRun
}
