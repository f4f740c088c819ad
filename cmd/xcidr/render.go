package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/xcidr/internal/pageopt"
	"github.com/omeyang/xcidr/pkg/calc/xrange"
	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

// writeJSON 以缩进 JSON 输出任意结果。
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSubnet 输出单个子网摘要。
func renderSubnet(w io.Writer, sn xsubnet.Subnet, jsonOut bool) error {
	ws := sn.Wire()
	if jsonOut {
		return writeJSON(w, ws)
	}
	fmt.Fprintf(w, "网络地址: %s\n", ws.Network)
	fmt.Fprintf(w, "掩码:     %s\n", ws.Mask)
	fmt.Fprintf(w, "前缀:     /%d\n", ws.CIDR)
	fmt.Fprintf(w, "广播地址: %s\n", ws.Broadcast)
	fmt.Fprintf(w, "可用范围: %s - %s\n", ws.First, ws.Last)
	fmt.Fprintf(w, "主机数:   %d\n", ws.Hosts)
	return nil
}

// subnetListResult 是子网列表的 JSON 输出结构。
type subnetListResult struct {
	Total     uint64               `json:"total" yaml:"total"`
	Displayed int                  `json:"displayed" yaml:"displayed"`
	Page      uint64               `json:"page,omitempty" yaml:"page,omitempty"`
	Pages     uint64               `json:"pages,omitempty" yaml:"pages,omitempty"`
	Subnets   []xsubnet.WireSubnet `json:"subnets" yaml:"subnets"`
}

// renderSubnetList 输出划分结果列表及总数/分页信息。
// perPage 为 0 表示未分页（全量枚举）。
func renderSubnetList(w io.Writer, subnets []xsubnet.Subnet, part xsubnet.Partition, perPage, page uint64, jsonOut bool) error {
	total := part.Count()
	if jsonOut {
		res := subnetListResult{
			Total:     total,
			Displayed: len(subnets),
			Subnets:   make([]xsubnet.WireSubnet, 0, len(subnets)),
		}
		if perPage > 0 {
			res.Page = page
			res.Pages = pageopt.TotalPages(total, perPage)
		}
		for _, sn := range subnets {
			res.Subnets = append(res.Subnets, sn.Wire())
		}
		return writeJSON(w, res)
	}

	for _, sn := range subnets {
		if err := renderSubnet(w, sn, false); err != nil {
			return err
		}
		fmt.Fprintln(w, "----------------------------")
	}
	fmt.Fprintf(w, "子网总数: %d | 本次显示: %d\n", total, len(subnets))
	if perPage > 0 {
		fmt.Fprintf(w, "页: %d/%d\n", page, pageopt.TotalPages(total, perPage))
	}
	return nil
}

// renderSame 输出同子网判断结果。
func renderSame(w io.Writer, ip1, ip2 netip.Addr, same bool, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, struct {
			IP1  string `json:"ip1"`
			IP2  string `json:"ip2"`
			Same bool   `json:"same"`
		}{ip1.String(), ip2.String(), same})
	}
	verdict := "属于"
	if !same {
		verdict = "不属于"
	}
	fmt.Fprintf(w, "地址 %s 与 %s %s同一子网\n", ip1, ip2, verdict)
	return nil
}

// renderCheck 输出校验类命令的结果。
func renderCheck(w io.Writer, kind, input string, valid bool, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, struct {
			Check string `json:"check"`
			Input string `json:"input"`
			Valid bool   `json:"valid"`
		}{kind, input, valid})
	}
	verdict := "合法"
	if !valid {
		verdict = "非法"
	}
	fmt.Fprintf(w, "%s: %s %s\n", kind, input, verdict)
	return nil
}

// renderHosts 输出范围查找的地址列表。
func renderHosts(w io.Writer, hosts []xrange.Host, jsonOut bool) error {
	if jsonOut {
		type wireHost struct {
			Addr   string `json:"addr"`
			Offset uint64 `json:"offset"`
		}
		out := make([]wireHost, 0, len(hosts))
		for _, h := range hosts {
			out = append(out, wireHost{h.Addr.String(), h.Offset})
		}
		return writeJSON(w, out)
	}
	for _, h := range hosts {
		fmt.Fprintln(w, h.Addr)
	}
	fmt.Fprintf(w, "共 %d 个可用地址\n", len(hosts))
	return nil
}

// renderRange 输出连续段查找结果。
func renderRange(w io.Writer, r netipx.IPRange, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, struct {
			Start string `json:"start"`
			End   string `json:"end"`
		}{r.From().String(), r.To().String()})
	}
	if !r.IsValid() {
		fmt.Fprintln(w, "空范围")
		return nil
	}
	fmt.Fprintf(w, "可用地址段: %s - %s\n", r.From(), r.To())
	return nil
}

// renderConvert 输出掩码与前缀长度的互转结果。
func renderConvert(w io.Writer, mask netip.Addr, maskBits int, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, struct {
			Mask   string `json:"mask"`
			Prefix int    `json:"prefix"`
		}{mask.String(), maskBits})
	}
	fmt.Fprintf(w, "掩码:   %s\n", mask)
	fmt.Fprintf(w, "前缀:   /%d\n", maskBits)
	return nil
}
