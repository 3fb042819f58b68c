package cache

import (
	"fmt"
	"strings"
)

// キャッシュのカテゴリ
const (
	CategoryLookup              = "Lookup"
	CategoryStoreInventoryItems = "StoreInventoryItems"
	CategoryCustomer            = "Customer"
	CategoryProductSettings     = "ProductSettings"
	CategoryProductDefinition   = "ProductDefinition"
	CategoryCountry             = "Country"
)

// (category, scope, parts...) からなる複合キー
// 文字列表現は小文字の "category:scope:part1:part2"
type Key struct {
	Category string
	Scope    string
	parts    []string
}

func NewKey(category, scope string) Key {
	return Key{Category: category, Scope: scope}
}

// 値はそのまま文字列化して追加する
func (k Key) AppendKeyParts(parts ...interface{}) Key {
	next := make([]string, len(k.parts), len(k.parts)+len(parts))
	copy(next, k.parts)
	for _, p := range parts {
		next = append(next, fmt.Sprint(p))
	}
	k.parts = next
	return k
}

func (k Key) Parts() []string {
	return append([]string(nil), k.parts...)
}

func (k Key) String() string {
	segs := make([]string, 0, len(k.parts)+2)
	segs = append(segs, k.Category, k.Scope)
	segs = append(segs, k.parts...)
	return strings.ToLower(strings.Join(segs, ":"))
}
