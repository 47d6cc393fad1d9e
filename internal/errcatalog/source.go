package errcatalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type groupFile struct {
	Groups []Group `yaml:"groups"`
}

// LoadGroups 解析注册列表（与 data/esp_idf.yaml 相同的格式）。
// 产品自定义的状态码区间可以通过这种文件在启动时追加。
func LoadGroups(r io.Reader) ([]Group, error) {
	var f groupFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog groups: %w", err)
	}
	for gi, g := range f.Groups {
		if g.Feature == "" {
			return nil, fmt.Errorf("group %d (%s): feature is required", gi, g.Header)
		}
		for ei, e := range g.Entries {
			if e.Name == "" {
				return nil, fmt.Errorf("group %q entry %d (code %d): name is required", g.Feature, ei, e.Code)
			}
		}
	}
	return f.Groups, nil
}

// LoadGroupsFile 从文件读取注册列表。
func LoadGroupsFile(path string) ([]Group, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog overlay: %w", err)
	}
	defer fh.Close()
	groups, err := LoadGroups(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}
