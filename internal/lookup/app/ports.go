package app

import "EspDiag/internal/errcatalog"

// Catalog 是查询服务依赖的注册表只读视图，*errcatalog.Catalog 实现了它。
type Catalog interface {
	Entry(code errcatalog.Code) (errcatalog.Entry, bool)
	Code(name string) (errcatalog.Code, bool)
	Entries() []errcatalog.Entry
	FeatureEntries(f errcatalog.Feature) ([]errcatalog.Entry, bool)
	Features() []errcatalog.Feature
}
