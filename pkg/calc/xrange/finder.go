package xrange

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

// Host 是范围查找结果中的单个地址。
// Offset 是该地址在子网可用范围内的 0 基偏移（排除集造成的空洞
// 会让结果序列的 Offset 不连续）。
type Host struct {
	Addr   netip.Addr `json:"addr" yaml:"addr"`
	Offset uint64     `json:"offset" yaml:"offset"`
}

// Find 按地址升序返回子网内前 n 个未被排除的可用主机地址。
// 排除集中的重复地址自动去重，子网之外的地址静默忽略（见包文档）。
// n 为 0 返回空成功结果；幸存地址少于 n 返回 [*InsufficientError]。
func Find(sn xsubnet.Subnet, n uint64, excluded []netip.Addr) ([]Host, error) {
	set, err := survivorSet(sn, excluded)
	if err != nil {
		return nil, err
	}
	avail := setSize(set)
	if avail < n {
		return nil, &InsufficientError{Requested: n, Available: avail}
	}
	if n == 0 {
		return nil, nil
	}

	firstUsable, _ := xaddr.AddrToUint32(sn.FirstUsable())
	hosts := make([]Host, 0, n)
	for _, r := range set.Ranges() {
		from, _ := xaddr.AddrToUint32(r.From())
		to, _ := xaddr.AddrToUint32(r.To())
		for v := from; ; v++ {
			hosts = append(hosts, Host{
				Addr:   xaddr.AddrFromUint32(v),
				Offset: uint64(v - firstUsable),
			})
			if uint64(len(hosts)) == n {
				return hosts, nil
			}
			// to 可能是 255.255.255.255，先判再增避免 uint32 回绕。
			if v == to {
				break
			}
		}
	}
	return hosts, nil
}

// Available 返回扣除排除集后子网内可用主机的数量。
func Available(sn xsubnet.Subnet, excluded []netip.Addr) (uint64, error) {
	set, err := survivorSet(sn, excluded)
	if err != nil {
		return 0, err
	}
	return setSize(set), nil
}

// survivorSet 构建幸存地址集合：可用主机范围减去排除集。
// IPSetBuilder 保证去重与范围外移除的空操作语义。
func survivorSet(sn xsubnet.Subnet, excluded []netip.Addr) (*netipx.IPSet, error) {
	if !sn.IsValid() {
		return nil, fmt.Errorf("%w: zero subnet", xsubnet.ErrInvalidSubnet)
	}
	var b netipx.IPSetBuilder
	b.AddRange(sn.UsableRange())
	for _, a := range excluded {
		if a.Is4In6() {
			a = a.Unmap()
		}
		if !a.Is4() {
			continue
		}
		b.Remove(a)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build survivor set for %s: %w", sn, err)
	}
	return set, nil
}

// setSize 统计集合内的地址总数。
// 各范围均为 IPv4，单范围大小不超过 2^32，uint64 累加不会溢出。
func setSize(set *netipx.IPSet) uint64 {
	var total uint64
	for _, r := range set.Ranges() {
		from, _ := xaddr.AddrToUint32(r.From())
		to, _ := xaddr.AddrToUint32(r.To())
		total += uint64(to-from) + 1
	}
	return total
}
