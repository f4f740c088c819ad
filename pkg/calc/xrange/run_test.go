package xrange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindContiguous(t *testing.T) {
	// /24 无排除：.1 起连续 10 个
	r, err := FindContiguous(mustSubnet(t, "192.168.1.0/24"), 10, nil)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", r.From().String())
	assert.Equal(t, "192.168.1.10", r.To().String())
}

func TestFindContiguousSkipsFragments(t *testing.T) {
	// 排除 .3 把 .1-.14 切成 [.1,.2] 和 [.4,.14]；
	// 长度 5 的连续段只能从 .4 开始
	r, err := FindContiguous(mustSubnet(t, "10.0.0.0/28"), 5, addrs("10.0.0.3"))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.4", r.From().String())
	assert.Equal(t, "10.0.0.8", r.To().String())
}

func TestFindContiguousNoRun(t *testing.T) {
	// 每隔一个排除：总量足够但无长度 3 的连续段
	sn := mustSubnet(t, "10.0.0.0/28")
	excl := addrs("10.0.0.2", "10.0.0.4", "10.0.0.6", "10.0.0.8", "10.0.0.10", "10.0.0.12")
	avail, err := Available(sn, excl)
	require.NoError(t, err)
	require.GreaterOrEqual(t, avail, uint64(3))

	_, err = FindContiguous(sn, 3, excl)
	assert.ErrorIs(t, err, ErrNoContiguousRun)
}

func TestFindContiguousInsufficient(t *testing.T) {
	_, err := FindContiguous(mustSubnet(t, "192.168.1.0/30"), 5, nil)

	var ie *InsufficientError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, uint64(2), ie.Available)
}

func TestFindContiguousZero(t *testing.T) {
	r, err := FindContiguous(mustSubnet(t, "192.168.1.0/24"), 0, nil)
	require.NoError(t, err)
	assert.False(t, r.IsValid())
}
