package errcatalog

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlayYAML = `
groups:
  - feature: camera
    header: main/camera_err.h
    entries:
      - name: CAM_ERR_SENSOR_NOT_DETECTED
        code: 0x20001
        description: "Sensor did not answer on SCCB"
      - name: CAM_ERR_FB_ALLOC
        code: 131074
`

func TestLoadGroups_解析自定义区间(t *testing.T) {
	groups, err := LoadGroups(strings.NewReader(overlayYAML))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, Feature("camera"), groups[0].Feature)
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, Code(0x20001), groups[0].Entries[0].Code)

	c := New(append(Builtin(), groups...))
	assert.Equal(t, "CAM_ERR_FB_ALLOC", c.Lookup(0x20002))
	assert.Equal(t, "ESP_OK", c.Lookup(OK))
}

func TestLoadGroups_空文件(t *testing.T) {
	groups, err := LoadGroups(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestLoadGroups_校验(t *testing.T) {
	_, err := LoadGroups(strings.NewReader("groups:\n  - header: x.h\n"))
	assert.ErrorContains(t, err, "feature is required")

	_, err = LoadGroups(strings.NewReader("groups:\n  - feature: x\n    entries:\n      - code: 1\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = LoadGroups(strings.NewReader("groups:\n  - feature: x\n    color: red\n"))
	assert.Error(t, err, "未知字段应被拒绝")
}

// 生成的 zz_builtin.go 必须与数据源保持一致。
func TestBuiltin_与数据源一致(t *testing.T) {
	groups, err := LoadGroupsFile(filepath.Join("data", "esp_idf.yaml"))
	require.NoError(t, err)

	builtin := Builtin()
	require.Len(t, builtin, len(groups))
	for i := range groups {
		assert.Equal(t, groups[i].Feature, builtin[i].Feature)
		assert.Equal(t, groups[i].Header, builtin[i].Header)
		assert.Equal(t, groups[i].Entries, builtin[i].Entries, groups[i].Header)
	}
}

func TestLoadGroupsFile_文件不存在(t *testing.T) {
	_, err := LoadGroupsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
