package xsubnet

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 划分基准测试
// =============================================================================

func BenchmarkPartitionAt(b *testing.B) {
	sn, _ := Parse("10.0.0.0/8")
	p, _ := NewPartition(sn, 24)
	for b.Loop() {
		_, _ = p.At(1234)
	}
}

func BenchmarkPartitionPage(b *testing.B) {
	sn, _ := Parse("10.0.0.0/8")
	p, _ := NewPartition(sn, 24)
	for b.Loop() {
		_, _ = p.Page(512, 7)
	}
}

// =============================================================================
// 同子网判断基准测试
// =============================================================================

func BenchmarkSameSubnet(b *testing.B) {
	a1 := netip.MustParseAddr("192.168.1.10")
	a2 := netip.MustParseAddr("192.168.1.200")
	for b.Loop() {
		_ = SameSubnet(a1, a2, 24)
	}
}

func BenchmarkSubnetBounds(b *testing.B) {
	sn, _ := Parse("192.168.1.0/24")
	for b.Loop() {
		_ = sn.Broadcast()
		_ = sn.FirstUsable()
		_ = sn.LastUsable()
	}
}
