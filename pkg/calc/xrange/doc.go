// Package xrange 在子网的可用主机范围内查找地址，支持排除集。
//
// xrange 基于 [go4.org/netipx] 的 IPSet 构建：以子网的可用主机范围为
// 基底，逐个移除排除地址，得到有序、不重叠的幸存范围集合。
// 排除集的两个边界语义由 IPSet 天然保证：
//
//   - 重复的排除地址自动去重（幂等移除）
//   - 落在子网之外的排除地址是空操作，静默忽略而非报错
//
// 后者是刻意行为：排除集通常来自外部清单，
// 与目标子网无关的条目不应使单次计算失败。
//
// # 核心功能
//
//   - finder.go: [Find] 按地址序返回前 n 个幸存地址及其偏移，
//     [Available] 统计幸存地址总量
//   - run.go: [FindContiguous] 查找首个长度足够的连续幸存段
//
// # 错误处理
//
// 幸存地址不足时返回 [*InsufficientError]，携带请求量与实际可用量，
// 并通过 errors.Is 匹配 [ErrInsufficientAddresses]：
//
//	_, err := xrange.Find(sn, 100, excluded)
//	var ie *xrange.InsufficientError
//	if errors.As(err, &ie) {
//	    fmt.Println("available:", ie.Available)
//	}
package xrange
