package errcatalog

import "sync"

// Builtin 返回内置的 ESP-IDF 注册列表（副本，调用方可以自由追加）。
func Builtin() []Group {
	out := make([]Group, len(builtinGroups))
	for i, g := range builtinGroups {
		entries := make([]Entry, len(g.Entries))
		copy(entries, g.Entries)
		g.Entries = entries
		out[i] = g
	}
	return out
}

// BuiltinFeatures 返回内置注册列表覆盖的特性，按首次出现顺序。
func BuiltinFeatures() []Feature {
	seen := make(map[Feature]bool)
	out := make([]Feature, 0, len(builtinGroups))
	for _, g := range builtinGroups {
		if seen[g.Feature] {
			continue
		}
		seen[g.Feature] = true
		out = append(out, g.Feature)
	}
	return out
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return New(builtinGroups)
})

// Default 返回启用全部内置特性的进程级注册表，只构建一次。
func Default() *Catalog {
	return defaultCatalog()
}
