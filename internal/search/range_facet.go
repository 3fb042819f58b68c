package search

import (
	"strings"

	"golang.org/x/text/language"

	"composer/internal/param"
	"composer/internal/viewmodel"
)

// 範囲の表示名
type RangeFormatter interface {
	GetFormattedRangeFacetValues(name, minValue, maxValue string, valueType FacetValueType, culture language.Tag) string
}

type RangeSelectedFacetProvider struct {
	formatter RangeFormatter
}

// DI
func NewRangeSelectedFacetProvider(formatter RangeFormatter) *RangeSelectedFacetProvider {
	return &RangeSelectedFacetProvider{formatter: formatter}
}

var _ SelectedFacetProvider = (*RangeSelectedFacetProvider)(nil)

// "min|max" を1件の選択中ファセットにする（max は省略可）
func (p *RangeSelectedFacetProvider) CreateSelectedFacetList(filter param.SearchFilter, setting FacetSetting, culture language.Tag) ([]viewmodel.SelectedFacet, error) {
	if err := checkSetting(filter, setting, viewmodel.FacetTypeRange); err != nil {
		return nil, err
	}

	values := strings.Split(filter.Value, FacetRangeValueSplitter)
	minValue := values[0]
	maxValue := ""
	if len(values) > 1 {
		maxValue = values[1]
	}

	return []viewmodel.SelectedFacet{{
		FieldName:    filter.Name,
		DisplayName:  p.formatter.GetFormattedRangeFacetValues(filter.Name, minValue, maxValue, setting.FacetValueType, culture),
		FacetType:    viewmodel.FacetTypeRange,
		IsRemovable:  !setting.IsSystem,
		MinimumValue: minValue,
		MaximumValue: maxValue,
	}}, nil
}
