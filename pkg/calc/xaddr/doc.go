// Package xaddr 提供 IPv4 地址、子网掩码与 CIDR 的解析和校验。
//
// xaddr 基于 Go 标准库 [net/netip] 构建，直接使用 [netip.Addr] 和
// [netip.Prefix] 值类型，是 xsubnet / xrange 计算包的基础层。
//
// # 核心功能
//
//   - addr.go: 严格的 IPv4 点分十进制解析 [ParseAddr]、uint32 互转
//   - mask.go: 掩码连续性校验 [PrefixFromMask]、前缀长度互转 [MaskFromPrefix]
//   - cidr.go: CIDR 表示法解析 [ParseCIDR]
//
// # 严格解析模式
//
// [ParseAddr] 只接受恰好四段点分十进制、每段取值 [0,255] 的 IPv4 地址，
// 拒绝 IPv6、拒绝前后空白与多余字符。与 [netip.ParseAddr] 不同，
// 允许八位段带前导零（"192.168.001.001"），与数值语义一致。
//
// # 掩码连续性
//
// 合法掩码为前缀全 1 后缀全 0 的位模式（如 255.255.255.0）。
// 校验使用单一位谓词 inv&(inv+1) != 0（inv 为掩码取反），
// 天然覆盖 0.0.0.0（/0）与 255.255.255.255（/32）两个边界，
// 拒绝非连续掩码（如 255.0.255.0）。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xaddr.ParseMask("255.0.255.0")
//	if errors.Is(err, xaddr.ErrInvalidMask) {
//	    // 处理非法掩码
//	}
package xaddr
