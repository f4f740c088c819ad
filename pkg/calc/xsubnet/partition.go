package xsubnet

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/omeyang/xcidr/internal/pageopt"
)

// DefaultMaxEnumerate 是全量枚举的默认安全上限（2^24 个子网）。
// 前缀差超过 24 且未指定分页/数量过滤时，[Partition.All] 拒绝枚举。
const DefaultMaxEnumerate = uint64(1) << 24

// Partition 表示一次子网划分：基础网络按目标前缀切分。
// 值类型，不持有状态；所有取值操作为 O(1) 位运算，
// 不物化中间子网。
type Partition struct {
	base    Subnet
	newBits int
}

// NewPartition 构造划分。
// newBits 小于基础前缀或大于 32 返回 [ErrPrefixRange]；
// 与基础前缀相等是合法的退化情形（划分结果为基础网络本身）。
func NewPartition(base Subnet, newBits int) (Partition, error) {
	if !base.IsValid() {
		return Partition{}, fmt.Errorf("%w: zero base subnet", ErrInvalidSubnet)
	}
	if newBits < base.Bits() || newBits > 32 {
		return Partition{}, fmt.Errorf("%w: new prefix /%d for base %s (must be in [%d,32])",
			ErrPrefixRange, newBits, base, base.Bits())
	}
	return Partition{base: base, newBits: newBits}, nil
}

// Base 返回基础子网。
func (p Partition) Base() Subnet {
	return p.base
}

// NewBits 返回目标前缀长度。
func (p Partition) NewBits() int {
	return p.newBits
}

// Count 返回划分产生的子网总数 2^(newBits - baseBits)。
// 使用 uint64：/0 → /32 的 2^32 无法用 32 位整型表示。
func (p Partition) Count() uint64 {
	return uint64(1) << (p.newBits - p.base.Bits())
}

// Step 返回相邻子网网络地址的间距 2^(32 - newBits)。
func (p Partition) Step() uint64 {
	return uint64(1) << (32 - p.newBits)
}

// At 返回序号 i（0 基）处的子网，O(1) 计算：
// network = base + i * 2^(32-newBits)。
// i >= Count() 返回 [ErrIndexOutOfRange]，不做钳位。
func (p Partition) At(i uint64) (Subnet, error) {
	if i >= p.Count() {
		return Subnet{}, fmt.Errorf("%w: index %d, only %d subnets in %s → /%d",
			ErrIndexOutOfRange, i, p.Count(), p.base, p.newBits)
	}
	// i < Count() 保证结果落在 uint32 范围内，uint64 运算仅为中间安全余量。
	network := uint64(p.base.network()) + i*p.Step()
	sn, err := New(addrFromUint64(network), p.newBits)
	if err != nil {
		return Subnet{}, err
	}
	return sn, nil
}

// Page 返回第 page 页（1 基）的子网切片，每页 perPage 个。
// 序号区间 [(page-1)*perPage, page*perPage) 裁剪到 [0, Count())；
// 起始序号超出末尾时返回空切片而非错误。
// page 为 0 返回 [ErrIndexOutOfRange]（页号从 1 开始）。
// perPage 为 0 返回空切片。
func (p Partition) Page(perPage, page uint64) ([]Subnet, error) {
	if perPage == 0 {
		if page == 0 {
			return nil, fmt.Errorf("%w: page numbers start at 1", ErrIndexOutOfRange)
		}
		return nil, nil
	}
	total := p.Count()
	start, err := pageopt.Offset(page, perPage)
	switch {
	case errors.Is(err, pageopt.ErrInvalidPage):
		return nil, fmt.Errorf("%w: page numbers start at 1", ErrIndexOutOfRange)
	case errors.Is(err, pageopt.ErrPageOverflow):
		// 溢出意味着起始序号远超任何可能的总数。
		return nil, nil
	case err != nil:
		return nil, err
	}
	if start >= total {
		return nil, nil
	}
	end := start + perPage
	if end < start || end > total {
		end = total
	}
	return p.slice(start, end)
}

// All 返回全部子网。
// limit 为 0 时使用 [DefaultMaxEnumerate]；Count() 超出上限
// 返回 [ErrTooManySubnets]，调用方应改用 [Partition.Page]。
func (p Partition) All(limit uint64) ([]Subnet, error) {
	if limit == 0 {
		limit = DefaultMaxEnumerate
	}
	if p.Count() > limit {
		return nil, fmt.Errorf("%w: %d subnets exceed enumeration limit %d (use pagination)",
			ErrTooManySubnets, p.Count(), limit)
	}
	return p.slice(0, p.Count())
}

// addrFromUint64 从 uint64 的低 32 位构建 IPv4 地址。
// 使用字节操作避免 uint64→uint32 类型收窄（避免 gosec G115）。
func addrFromUint64(v uint64) netip.Addr {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return netip.AddrFrom4(b)
}

// slice 物化序号区间 [start, end) 的子网，调用方保证区间合法。
func (p Partition) slice(start, end uint64) ([]Subnet, error) {
	out := make([]Subnet, 0, end-start)
	for i := start; i < end; i++ {
		sn, err := p.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, sn)
	}
	return out, nil
}
