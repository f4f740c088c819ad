package xaddr_test

import (
	"fmt"

	"github.com/omeyang/xcidr/pkg/calc/xaddr"
)

func ExampleParseAddr() {
	addr, err := xaddr.ParseAddr("192.168.001.010")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(addr)
	// Output:
	// 192.168.1.10
}

func ExampleParseMask() {
	maskBits, err := xaddr.ParseMask("255.255.255.192")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(maskBits)

	_, err = xaddr.ParseMask("255.0.255.0")
	fmt.Println(err != nil)
	// Output:
	// 26
	// true
}

func ExampleMaskFromPrefix() {
	mask, _ := xaddr.MaskFromPrefix(24)
	fmt.Println(mask)

	mask, _ = xaddr.MaskFromPrefix(0)
	fmt.Println(mask)
	// Output:
	// 255.255.255.0
	// 0.0.0.0
}

func ExampleParseCIDR() {
	p, err := xaddr.ParseCIDR("192.168.1.10/24")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Addr())
	fmt.Println(p.Bits())
	fmt.Println(p.Masked())
	// Output:
	// 192.168.1.10
	// 24
	// 192.168.1.0/24
}
