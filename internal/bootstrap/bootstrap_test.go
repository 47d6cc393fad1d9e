package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"EspDiag/internal/errcatalog"
	"EspDiag/internal/shared/config"
	"EspDiag/internal/shared/logs"
)

const overlay = `
groups:
  - feature: camera
    header: main/camera_err.h
    entries:
      - name: CAM_ERR_SENSOR_NOT_DETECTED
        code: 0x20001
      - name: CAM_ERR_SHADOWS_NO_MEM
        code: 0x101
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildCatalog_默认使用内置表(t *testing.T) {
	c, err := BuildCatalog(config.CatalogConfig{})
	require.NoError(t, err)
	assert.Same(t, errcatalog.Default(), c)
}

func TestBuildCatalog_overlay与特性筛选(t *testing.T) {
	path := writeFile(t, t.TempDir(), "camera.yaml", overlay)

	c, err := BuildCatalog(config.CatalogConfig{Features: []string{"camera"}, Overlay: path})
	require.NoError(t, err)

	assert.Equal(t, "CAM_ERR_SENSOR_NOT_DETECTED", c.Lookup(0x20001))
	assert.Equal(t, "ESP_ERR_NO_MEM", c.Lookup(0x101), "内置项先注册，冲突时生效")
	assert.Equal(t, []errcatalog.Feature{errcatalog.FeatureCore, "camera"}, c.Features())
	require.Len(t, c.Conflicts(), 1)
	assert.Equal(t, "CAM_ERR_SHADOWS_NO_MEM", c.Conflicts()[0].Shadowed.Name)
}

func TestBuildCatalog_错误(t *testing.T) {
	_, err := BuildCatalog(config.CatalogConfig{Features: []string{"lidar"}})
	assert.ErrorContains(t, err, "lidar")

	_, err = BuildCatalog(config.CatalogConfig{Overlay: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_装配并记录冲突(t *testing.T) {
	dir := t.TempDir()
	overlayPath := writeFile(t, dir, "camera.yaml", overlay)
	cfgPath := writeFile(t, dir, "conf.yml", "log:\n  level: warn\ncatalog:\n  overlay: "+overlayPath+"\ndiag:\n  exit_code: 9\n")

	var buf bytes.Buffer
	a, err := New("errcat", cfgPath, logs.WithConsole(zapcore.AddSync(&buf)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, 9, a.Asserter.ExitCode())
	assert.True(t, a.Asserter.Enabled())
	assert.Equal(t, "CAM_ERR_SENSOR_NOT_DETECTED", a.Catalog.Lookup(0x20001))
	assert.Regexp(t, `(?m)^W \| [0-9:.]+ \| CATALOG \| duplicate status code shadowed`, buf.String())
	assert.Contains(t, buf.String(), `"shadowed": "CAM_ERR_SHADOWS_NO_MEM"`)
	assert.NotContains(t, buf.String(), "catalog ready", "debug 低于 warn")
}
