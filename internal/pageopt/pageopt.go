package pageopt

import (
	"errors"
	"math"
)

// 分页相关错误。
var (
	// ErrInvalidPage 表示页码无效（必须 >= 1）。
	ErrInvalidPage = errors.New("pageopt: invalid page number, must be >= 1")

	// ErrInvalidPageSize 表示每页大小无效（必须 >= 1）。
	ErrInvalidPageSize = errors.New("pageopt: invalid page size, must be >= 1")

	// ErrPageOverflow 表示分页计算溢出。
	// 当 (page-1) * pageSize 超过 uint64 最大值时返回此错误。
	ErrPageOverflow = errors.New("pageopt: page calculation overflow, reduce page number or page size")
)

// Offset 验证分页参数并返回起始偏移量 (page-1) * pageSize。
//
// 参数：
//   - page: 页码，必须 >= 1
//   - pageSize: 每页大小，必须 >= 1
//
// 返回：
//   - offset: 计算后的偏移量
//   - err: ErrInvalidPage、ErrInvalidPageSize 或 ErrPageOverflow
func Offset(page, pageSize uint64) (offset uint64, err error) {
	if page < 1 {
		return 0, ErrInvalidPage
	}
	if pageSize < 1 {
		return 0, ErrInvalidPageSize
	}

	// 检查溢出：(page-1) * pageSize
	// 如果 page-1 > MaxUint64/pageSize，则乘法会溢出
	if page-1 > math.MaxUint64/pageSize {
		return 0, ErrPageOverflow
	}

	return (page - 1) * pageSize, nil
}

// TotalPages 计算总页数（向上取整）。
// total 或 pageSize 为 0 时返回 0。
func TotalPages(total, pageSize uint64) uint64 {
	if total == 0 || pageSize == 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
