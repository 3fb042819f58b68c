package viewmodel

// ファセットの種類
type FacetType string

const (
	FacetTypeSingle   FacetType = "SingleSelect"
	FacetTypeMultiple FacetType = "MultiSelect"
	FacetTypeRange    FacetType = "Range"
)

type SelectedFacet struct {
	FieldName    string    `json:"fieldName"`
	DisplayName  string    `json:"displayName"`
	Value        string    `json:"value,omitempty"`
	FacetType    FacetType `json:"facetType"`
	IsRemovable  bool      `json:"isRemovable"`
	MinimumValue string    `json:"minimumValue,omitempty"`
	MaximumValue string    `json:"maximumValue,omitempty"`
}

type ProductSearchViewModel struct {
	ProductID        string `json:"productId"`
	DisplayName      string `json:"displayName"`
	Sku              string `json:"sku"`
	ListPrice        string `json:"listPrice"`
	DisplayPrice     string `json:"displayPrice"`
	IsOnSale         bool   `json:"isOnSale"`
	ImageURL         string `json:"imageUrl"`
	FallbackImageURL string `json:"fallbackImageUrl"`
	ProductURL       string `json:"productUrl"`
}

type SearchViewModel struct {
	Keywords       string                   `json:"keywords"`
	Products       []ProductSearchViewModel `json:"products"`
	SelectedFacets []SelectedFacet          `json:"selectedFacets"`
	TotalCount     int64                    `json:"totalCount"`
	Page           int                      `json:"page"`
	PageSize       int                      `json:"pageSize"`
	TotalPages     int                      `json:"totalPages"`
}
