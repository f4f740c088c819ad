package xrange

import (
	"errors"
	"fmt"
)

// 范围查找相关错误。
var (
	// ErrInsufficientAddresses 表示子网内幸存的可用地址少于请求量。
	ErrInsufficientAddresses = errors.New("xrange: insufficient usable addresses")

	// ErrNoContiguousRun 表示可用地址总量足够但不存在足够长的连续段。
	ErrNoContiguousRun = errors.New("xrange: no contiguous run of requested size")
)

// InsufficientError 携带请求量与实际可用量的不足错误。
// 通过 errors.Is 匹配 [ErrInsufficientAddresses]。
type InsufficientError struct {
	Requested uint64 // 请求的地址数量
	Available uint64 // 扣除排除集后实际可用的数量
}

// Error 实现 error 接口。
func (e *InsufficientError) Error() string {
	return fmt.Sprintf("xrange: insufficient usable addresses: requested %d, only %d available",
		e.Requested, e.Available)
}

// Unwrap 返回哨兵错误，支持 errors.Is 分流。
func (e *InsufficientError) Unwrap() error {
	return ErrInsufficientAddresses
}
