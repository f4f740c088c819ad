// Package pageopt 提供分页参数校验与页号算术的内部工具。
//
// 子网枚举等结果集可能非常大（最多 2^32 项），调用方通过
// 页号 + 每页数量访问切片区间。本包集中处理页号合法性校验、
// 偏移量计算的乘法溢出防护以及总页数的向上取整，
// 供计算层与命令行层共用，保证两处分页语义一致。
package pageopt
