// Package errcatalog 把 SDK 返回的有符号状态码解析成符号名，供诊断与日志使用。
//
// 注册表在进程启动时按启用的特性集合一次性构建，之后只读；
// 并发查询不需要加锁。
package errcatalog

//go:generate go run ../../cmd/catalogen --in data/esp_idf.yaml --out zz_builtin.go

// Code 是底层 SDK 返回的状态码：0 表示成功，-1 表示通用失败，
// 其余值按子系统划分成连续区间，本包不解释这些区间，只负责映射。
type Code int32

const (
	OK   Code = 0
	Fail Code = -1
)

// Feature 表示一组由同一组件定义的状态码，对应固件构建时启用的组件。
type Feature string

const (
	FeatureCore       Feature = "core"
	FeatureESSL       Feature = "essl"
	FeatureNVS        Feature = "nvs"
	FeatureULP        Feature = "ulp"
	FeatureOTA        Feature = "ota"
	FeatureEfuse      Feature = "efuse"
	FeatureBootloader Feature = "bootloader"
	FeatureWiFi       Feature = "wifi"
	FeatureWPS        Feature = "wps"
	FeatureESPNow     Feature = "espnow"
	FeatureMesh       Feature = "mesh"
	FeatureNetif      Feature = "netif"
	FeatureFlash      Feature = "flash"
	FeatureHTTPClient Feature = "http_client"
	FeatureTLS        Feature = "tls"
	FeatureHTTPSOTA   Feature = "https_ota"
	FeaturePing       Feature = "ping"
	FeatureHTTPServer Feature = "http_server"
)

// Entry 是注册表中的一项。
type Entry struct {
	Code        Code    `yaml:"code"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Feature     Feature `yaml:"-"`
}

// Group 是一个组件头文件定义的全部状态码。
type Group struct {
	Feature Feature `yaml:"feature"`
	Header  string  `yaml:"header"`
	Entries []Entry `yaml:"entries"`
}

// Conflict 记录同一数值被两个符号名注册的情况：Kept 先注册并生效，Shadowed 被遮蔽。
type Conflict struct {
	Code     Code
	Kept     Entry
	Shadowed Entry
}

// Catalog 是构建完成后只读的状态码注册表。
type Catalog struct {
	byCode    map[Code]Entry
	byName    map[string]Code
	entries   []Entry
	features  []Feature
	conflicts []Conflict
}

// New 按注册顺序装配注册表。
//
// features 为空时启用 groups 中的全部特性；FeatureCore 始终启用。
// 同一数值重复注册时先注册者生效，被遮蔽的项记录在 Conflicts() 中。
func New(groups []Group, features ...Feature) *Catalog {
	enabled := make(map[Feature]bool, len(features)+1)
	for _, f := range features {
		enabled[f] = true
	}
	all := len(features) == 0
	enabled[FeatureCore] = true

	c := &Catalog{
		byCode: make(map[Code]Entry),
		byName: make(map[string]Code),
	}
	seen := make(map[Feature]bool)
	for _, g := range groups {
		if !all && !enabled[g.Feature] {
			continue
		}
		if !seen[g.Feature] {
			seen[g.Feature] = true
			c.features = append(c.features, g.Feature)
		}
		for _, e := range g.Entries {
			e.Feature = g.Feature
			if kept, ok := c.byCode[e.Code]; ok {
				c.conflicts = append(c.conflicts, Conflict{Code: e.Code, Kept: kept, Shadowed: e})
				continue
			}
			c.byCode[e.Code] = e
			if _, ok := c.byName[e.Name]; !ok {
				c.byName[e.Name] = e.Code
			}
			c.entries = append(c.entries, e)
		}
	}
	return c
}

// Lookup 返回状态码的符号名；未注册的状态码返回包含数值的兜底字符串，永远不为空。
func (c *Catalog) Lookup(code Code) string {
	if name, ok := c.Name(code); ok {
		return name
	}
	return Unknown(code)
}

func (c *Catalog) Name(code Code) (string, bool) {
	e, ok := c.Entry(code)
	if !ok {
		return "", false
	}
	return e.Name, true
}

func (c *Catalog) Entry(code Code) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.byCode[code]
	return e, ok
}

// Code 按符号名反查状态码。
func (c *Catalog) Code(name string) (Code, bool) {
	if c == nil {
		return 0, false
	}
	code, ok := c.byName[name]
	return code, ok
}

// Entries 按注册顺序返回生效的全部项（副本）。
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FeatureEntries 返回某个特性下生效的项；特性未启用时返回 false。
func (c *Catalog) FeatureEntries(f Feature) ([]Entry, bool) {
	if !c.HasFeature(f) {
		return nil, false
	}
	out := make([]Entry, 0)
	for _, e := range c.entries {
		if e.Feature == f {
			out = append(out, e)
		}
	}
	return out, true
}

func (c *Catalog) HasFeature(f Feature) bool {
	if c == nil {
		return false
	}
	for _, got := range c.features {
		if got == f {
			return true
		}
	}
	return false
}

func (c *Catalog) Features() []Feature {
	if c == nil {
		return nil
	}
	out := make([]Feature, len(c.features))
	copy(out, c.features)
	return out
}

func (c *Catalog) Conflicts() []Conflict {
	if c == nil {
		return nil
	}
	out := make([]Conflict, len(c.conflicts))
	copy(out, c.conflicts)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
