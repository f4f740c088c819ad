// Package xconf 提供计算器运行设置的加载与默认值。
//
// xconf 基于 [github.com/knadh/koanf/v2] 构建，支持 YAML / JSON 两种格式，
// 可从文件路径（按扩展名检测格式）或原始字节（显式指定格式）加载。
// 未出现在配置中的键保持默认值，加载结果为值类型 [Settings]，
// 引擎本身不读取任何全局状态。
//
// # 配置项
//
//	limits:
//	  max_enumerate: 16777216   # 全量枚举子网的安全上限（默认 2^24）
//	  page_size: 512            # 分页输出的默认每页数量
//
// # 快速示例
//
//	s, err := xconf.Load("xcidr.yaml")
//	if err != nil { ... }
//	subnets, err := part.All(s.Limits.MaxEnumerate)
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xconf.Load("settings.toml")
//	if errors.Is(err, xconf.ErrUnsupportedFormat) {
//	    // 仅支持 .yaml/.yml/.json
//	}
package xconf
