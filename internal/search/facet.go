package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"composer/internal/param"
	"composer/internal/viewmodel"
)

// 範囲ファセットの最小|最大の区切り
const FacetRangeValueSplitter = "|"

// 値の種類（表示の書式に使う）
type FacetValueType string

const (
	FacetValueTypeText     FacetValueType = "Text"
	FacetValueTypeNumber   FacetValueType = "Number"
	FacetValueTypeCurrency FacetValueType = "Currency"
)

// ファセットの設定
type FacetSetting struct {
	FieldName      string
	FacetType      viewmodel.FacetType
	FacetValueType FacetValueType
	IsSystem       bool
}

// 選択中ファセットの生成
type SelectedFacetProvider interface {
	CreateSelectedFacetList(filter param.SearchFilter, setting FacetSetting, culture language.Tag) ([]viewmodel.SelectedFacet, error)
}

func checkSetting(filter param.SearchFilter, setting FacetSetting, want viewmodel.FacetType) error {
	if !strings.EqualFold(setting.FieldName, filter.Name) {
		return param.Invalid("setting", fmt.Sprintf(
			"is for the facet '%s', whereas the filter is for the facet '%s'", setting.FieldName, filter.Name))
	}
	if setting.FacetType != want {
		return param.Invalid("setting", fmt.Sprintf(
			"is defined as '%s' which does not match '%s'", setting.FacetType, want))
	}
	return nil
}

// FindSetting は名前（大文字小文字無視）で設定を探す
func FindSetting(settings []FacetSetting, name string) (FacetSetting, bool) {
	for _, s := range settings {
		if strings.EqualFold(s.FieldName, name) {
			return s, true
		}
	}
	return FacetSetting{}, false
}
