// Package xsubnet 提供 IPv4 子网模型、子网划分与同子网判断。
//
// xsubnet 基于 [net/netip] 与 [go4.org/netipx] 构建，
// 所有实体均为值类型，计算为纯函数，调用间不持有状态，
// 可被多个调用方并发使用而无需加锁。
//
// # 核心功能
//
//   - subnet.go: 子网值类型 [Subnet]（网络/广播/可用主机边界/包含与重叠判断）
//   - partition.go: 划分器 [Partition]，O(1) 按序号取子网、分页枚举
//   - same.go: 同子网判断 [SameSubnet] / [SameSubnetMasks]
//   - wire.go: [WireSubnet] JSON/YAML 序列化的子网摘要
//
// # 可用主机策略
//
// 前缀 < 31 时，可用主机范围为 network+1 .. broadcast-1（扣除网络地址
// 与广播地址）；/31 按点对点链路语义两个地址均可用（RFC 3021）；
// /32 仅含单个地址，即该地址本身。
//
// # 宽整型设计
//
// 子网计数与序号运算统一使用 uint64：/0 划分到 /32 共有 2^32 个子网，
// 32 位计数器必然溢出。这是显式的、经测试覆盖的设计选择，
// 不依赖 32 位回绕行为。
//
// # 枚举上限
//
// 全量枚举是潜在的无界工作量（/0→/32 为 42 亿项）。[Partition.All]
// 必须带显式上限，超出返回 [ErrTooManySubnets]；分页接口
// [Partition.Page] 则天然有界。上限默认值见 [DefaultMaxEnumerate]，
// 可通过 xconf 配置调整。
//
// # 快速示例
//
// 将 /24 划分为 4 个 /26：
//
//	sn, _ := xsubnet.Parse("192.168.1.0/24")
//	part, _ := xsubnet.NewPartition(sn, 26)
//	fmt.Println(part.Count())        // 4
//	s, _ := part.At(2)
//	fmt.Println(s)                   // 192.168.1.128/26
package xsubnet
