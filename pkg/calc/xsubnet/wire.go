package xsubnet

// WireSubnet 是子网摘要的序列化格式，供 JSON/YAML 输出使用。
// 字段均为渲染就绪的字符串/整数，与 display 命令的文本输出同源。
type WireSubnet struct {
	Network   string `json:"network" yaml:"network"`
	Mask      string `json:"mask" yaml:"mask"`
	CIDR      int    `json:"cidr" yaml:"cidr"`
	Broadcast string `json:"broadcast" yaml:"broadcast"`
	First     string `json:"first" yaml:"first"`
	Last      string `json:"last" yaml:"last"`
	Hosts     uint64 `json:"hosts" yaml:"hosts"`
}

// Wire 返回子网的序列化摘要。
// /31 与 /32 没有独立的广播地址，Broadcast 字段为范围末地址，
// First/Last 按可用主机策略填充（见包文档）。
func (s Subnet) Wire() WireSubnet {
	return WireSubnet{
		Network:   s.Network().String(),
		Mask:      s.Mask().String(),
		CIDR:      s.Bits(),
		Broadcast: s.Broadcast().String(),
		First:     s.FirstUsable().String(),
		Last:      s.LastUsable().String(),
		Hosts:     s.UsableCount(),
	}
}
