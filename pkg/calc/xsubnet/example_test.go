package xsubnet_test

import (
	"encoding/json"
	"fmt"
	"net/netip"

	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

func ExampleSubnet() {
	sn, err := xsubnet.Parse("192.168.1.77/24")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 主机位被归一化为网络地址
	fmt.Println(sn)
	fmt.Println(sn.Broadcast())
	fmt.Println(sn.FirstUsable(), "-", sn.LastUsable())
	fmt.Println(sn.UsableCount())
	// Output:
	// 192.168.1.0/24
	// 192.168.1.255
	// 192.168.1.1 - 192.168.1.254
	// 254
}

func ExamplePartition() {
	sn, _ := xsubnet.Parse("192.168.1.0/24")
	part, err := xsubnet.NewPartition(sn, 26)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(part.Count())
	all, _ := part.All(0)
	for _, s := range all {
		fmt.Println(s)
	}
	// Output:
	// 4
	// 192.168.1.0/26
	// 192.168.1.64/26
	// 192.168.1.128/26
	// 192.168.1.192/26
}

func ExamplePartition_At() {
	sn, _ := xsubnet.Parse("10.0.0.0/8")
	part, _ := xsubnet.NewPartition(sn, 16)

	// O(1) 按序号取子网，不物化其余 255 个
	s, _ := part.At(1)
	fmt.Println(s)
	// Output:
	// 10.1.0.0/16
}

func ExampleSameSubnet() {
	a := netip.MustParseAddr("192.168.1.10")
	b := netip.MustParseAddr("192.168.1.200")
	fmt.Println(xsubnet.SameSubnet(a, b, 24))

	c := netip.MustParseAddr("192.168.2.10")
	fmt.Println(xsubnet.SameSubnet(a, c, 24))
	// Output:
	// true
	// false
}

func ExampleSubnet_Wire() {
	sn, _ := xsubnet.Parse("192.168.1.0/29")
	data, _ := json.Marshal(sn.Wire())
	fmt.Println(string(data))
	// Output:
	// {"network":"192.168.1.0","mask":"255.255.255.248","cidr":29,"broadcast":"192.168.1.7","first":"192.168.1.1","last":"192.168.1.6","hosts":6}
}
