package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
	"github.com/omeyang/xcidr/pkg/calc/xrange"
	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

func TestSubnetFromArgs(t *testing.T) {
	// 单参数 CIDR
	sn, err := subnetFromArgs([]string{"192.168.1.77/24"})
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", sn.String())

	// 地址 + 点分掩码
	sn, err = subnetFromArgs([]string{"10.0.0.1", "255.0.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", sn.String())

	// 地址 + 前缀数字
	sn, err = subnetFromArgs([]string{"10.0.0.1", "24"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/24", sn.String())

	// 参数数量错误 → usageError
	_, err = subnetFromArgs(nil)
	var uErr *usageError
	assert.ErrorAs(t, err, &uErr)

	_, err = subnetFromArgs([]string{"a", "b", "c"})
	assert.ErrorAs(t, err, &uErr)

	// 参数值格式错误 → 原样上抛的解析错误
	_, err = subnetFromArgs([]string{"192.168.1.300/24"})
	assert.ErrorIs(t, err, xaddr.ErrInvalidCIDR)

	_, err = subnetFromArgs([]string{"10.0.0.1", "255.0.255.0"})
	assert.ErrorIs(t, err, xaddr.ErrInvalidMask)
}

func TestPartitionFromArgs(t *testing.T) {
	part, err := partitionFromArgs("192.168.1.0/24", "26")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), part.Count())

	_, err = partitionFromArgs("192.168.1.0/24", "16")
	assert.ErrorIs(t, err, xsubnet.ErrPrefixRange)

	_, err = partitionFromArgs("192.168.1.0/24", "abc")
	assert.ErrorIs(t, err, xaddr.ErrInvalidPrefix)
}

func TestParseExclusions(t *testing.T) {
	excl, err := parseExclusions([]string{"10.0.0.1", "10.0.0.2"})
	require.NoError(t, err)
	require.Len(t, excl, 2)
	assert.Equal(t, "10.0.0.1", excl[0].String())

	excl, err = parseExclusions(nil)
	require.NoError(t, err)
	assert.Nil(t, excl)

	_, err = parseExclusions([]string{"10.0.0.1", "bogus"})
	assert.ErrorIs(t, err, xaddr.ErrInvalidAddress)
}

func TestParseIndex(t *testing.T) {
	n, err := parseIndex("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)

	var uErr *usageError
	_, err = parseIndex("-1")
	assert.ErrorAs(t, err, &uErr)

	_, err = parseIndex("abc")
	assert.ErrorAs(t, err, &uErr)
}

func TestMaskFromArg(t *testing.T) {
	mask, err := maskFromArg("24")
	require.NoError(t, err)
	assert.Equal(t, "255.255.255.0", mask.String())

	mask, err = maskFromArg("255.255.0.0")
	require.NoError(t, err)
	assert.Equal(t, "255.255.0.0", mask.String())

	_, err = maskFromArg("255.0.255.0")
	assert.ErrorIs(t, err, xaddr.ErrInvalidMask)
}

func TestRenderSubnetText(t *testing.T) {
	sn, err := xsubnet.Parse("192.168.1.0/29")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderSubnet(&buf, sn, false))

	out := buf.String()
	assert.Contains(t, out, "192.168.1.0")
	assert.Contains(t, out, "255.255.255.248")
	assert.Contains(t, out, "/29")
	assert.Contains(t, out, "192.168.1.7")
	assert.Contains(t, out, "192.168.1.1 - 192.168.1.6")
}

func TestRenderSubnetJSON(t *testing.T) {
	sn, err := xsubnet.Parse("192.168.1.0/24")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderSubnet(&buf, sn, true))

	var w xsubnet.WireSubnet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &w))
	assert.Equal(t, sn.Wire(), w)
}

func TestRenderSubnetListJSON(t *testing.T) {
	part, err := partitionFromArgs("10.0.0.0/8", "16")
	require.NoError(t, err)
	page, err := part.Page(10, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderSubnetList(&buf, page, part, 10, 2, true))

	var res subnetListResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, uint64(256), res.Total)
	assert.Equal(t, 10, res.Displayed)
	assert.Equal(t, uint64(2), res.Page)
	assert.Equal(t, uint64(26), res.Pages)
	assert.Equal(t, "10.10.0.0", res.Subnets[0].Network)
}

func TestRenderHosts(t *testing.T) {
	sn, err := xsubnet.Parse("192.168.1.0/29")
	require.NoError(t, err)
	hosts, err := xrange.Find(sn, 3, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderHosts(&buf, hosts, false))
	out := buf.String()
	assert.Contains(t, out, "192.168.1.1")
	assert.Contains(t, out, "192.168.1.3")
	assert.Contains(t, out, "共 3 个可用地址")
}

func TestExitCodeMapping(t *testing.T) {
	// usageError → 参数错误语义
	uErr := usageErrorf("need %d args", 2)
	assert.Equal(t, "need 2 args", uErr.Error())

	// exitError 不携带消息，仅设置退出码
	eErr := &exitError{code: 1}
	assert.Empty(t, eErr.Error())
	assert.Equal(t, 1, eErr.code)
}
