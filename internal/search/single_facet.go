package search

import (
	"golang.org/x/text/language"

	"composer/internal/param"
	"composer/internal/viewmodel"
)

// 単一選択ファセット
type SingleSelectedFacetProvider struct{}

func NewSingleSelectedFacetProvider() *SingleSelectedFacetProvider {
	return &SingleSelectedFacetProvider{}
}

var _ SelectedFacetProvider = (*SingleSelectedFacetProvider)(nil)

func (p *SingleSelectedFacetProvider) CreateSelectedFacetList(filter param.SearchFilter, setting FacetSetting, _ language.Tag) ([]viewmodel.SelectedFacet, error) {
	if err := checkSetting(filter, setting, viewmodel.FacetTypeSingle); err != nil {
		return nil, err
	}
	return []viewmodel.SelectedFacet{{
		FieldName:   filter.Name,
		DisplayName: filter.Value,
		Value:       filter.Value,
		FacetType:   viewmodel.FacetTypeSingle,
		IsRemovable: !setting.IsSystem,
	}}, nil
}
