package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

// Format 表示配置文件格式。
type Format string

const (
	// FormatYAML 表示 YAML 格式。
	FormatYAML Format = "yaml"
	// FormatJSON 表示 JSON 格式。
	FormatJSON Format = "json"
)

// Limits 约束枚举类操作的工作量上限。
type Limits struct {
	// MaxEnumerate 是全量枚举子网的安全上限。
	// 超出时 Partition.All 返回 ErrTooManySubnets，调用方应改用分页。
	MaxEnumerate uint64 `koanf:"max_enumerate" json:"max_enumerate" yaml:"max_enumerate"`

	// PageSize 是分页输出的默认每页数量。
	PageSize uint64 `koanf:"page_size" json:"page_size" yaml:"page_size"`
}

// Settings 是计算器的全部运行设置。值类型，加载后只读。
type Settings struct {
	Limits Limits `koanf:"limits" json:"limits" yaml:"limits"`
}

// Default 返回默认设置：枚举上限 2^24，每页 512。
// 512 沿用历史默认页大小，2^24 对应前缀差 24 的划分规模。
func Default() Settings {
	return Settings{
		Limits: Limits{
			MaxEnumerate: xsubnet.DefaultMaxEnumerate,
			PageSize:     512,
		},
	}
}

// Load 从文件路径加载设置，按扩展名检测格式（.yaml/.yml/.json）。
// 文件中未出现的键保持默认值。
func Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return LoadBytes(data, format)
}

// LoadBytes 从原始字节加载设置，格式需显式指定。
// 空数据返回默认设置，与空文件行为一致。
func LoadBytes(data []byte, format Format) (Settings, error) {
	s := Default()
	if len(data) == 0 {
		return s, nil
	}

	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// validate 校验设置值的合法范围。
func (s Settings) validate() error {
	if s.Limits.MaxEnumerate == 0 {
		return fmt.Errorf("%w: limits.max_enumerate must be positive", ErrInvalidSetting)
	}
	if s.Limits.PageSize == 0 {
		return fmt.Errorf("%w: limits.page_size must be positive", ErrInvalidSetting)
	}
	return nil
}

// detectFormat 根据文件扩展名检测格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
