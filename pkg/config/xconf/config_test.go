package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcidr/pkg/calc/xsubnet"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, xsubnet.DefaultMaxEnumerate, s.Limits.MaxEnumerate)
	assert.Equal(t, uint64(512), s.Limits.PageSize)
}

func TestLoadBytesYAML(t *testing.T) {
	data := []byte("limits:\n  max_enumerate: 1024\n  page_size: 64\n")
	s, err := LoadBytes(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), s.Limits.MaxEnumerate)
	assert.Equal(t, uint64(64), s.Limits.PageSize)
}

func TestLoadBytesJSON(t *testing.T) {
	data := []byte(`{"limits":{"page_size":128}}`)
	s, err := LoadBytes(data, FormatJSON)
	require.NoError(t, err)
	// 未出现的键保持默认值
	assert.Equal(t, xsubnet.DefaultMaxEnumerate, s.Limits.MaxEnumerate)
	assert.Equal(t, uint64(128), s.Limits.PageSize)
}

func TestLoadBytesEmpty(t *testing.T) {
	s, err := LoadBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadBytesErrors(t *testing.T) {
	_, err := LoadBytes([]byte("a: 1"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadBytes([]byte("{not yaml: ["), FormatYAML)
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, err = LoadBytes([]byte("limits:\n  page_size: 0\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidSetting)

	_, err = LoadBytes([]byte("limits:\n  max_enumerate: 0\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "xcidr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  page_size: 32\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(32), s.Limits.PageSize)

	// 空路径
	_, err = Load("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	// 不支持的扩展名
	_, err = Load(filepath.Join(dir, "xcidr.toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// 不存在的文件
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}
