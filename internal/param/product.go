package param

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"composer/internal/overture"
)

type GetProductParam struct {
	Scope       string
	ProductID   string
	CultureInfo language.Tag
}

func (p *GetProductParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotBlank("ProductId", p.ProductID).
		Culture("CultureInfo", p.CultureInfo).
		Err()
}

type GetProductDefinitionParam struct {
	Name        string
	CultureInfo language.Tag
}

func (p *GetProductDefinitionParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("Name", p.Name).
		Culture("CultureInfo", p.CultureInfo).
		Err()
}

// CalculatePrices / GetEffectivePrice 共通
type ProductPricesParam struct {
	Scope      string
	ProductIDs []string
}

func (p *ProductPricesParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotEmptyStrings("ProductIds", p.ProductIDs).
		Err()
}

// 選択中のファセット
type SearchFilter struct {
	Name  string
	Value string
}

type SearchParam struct {
	Scope         string
	CultureInfo   language.Tag
	Keywords      string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
	Filters       []SearchFilter
	BaseURL       string
}

func (p *SearchParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		Positive("Page", p.Page).
		Positive("PageSize", p.PageSize).
		AtMost("PageSize", p.PageSize, overture.MaxSearchPageSize).
		Err()
}

// リポジトリに渡す検索条件（ファセットは解釈済み）
type SearchProductsParam struct {
	Scope         string
	CultureInfo   language.Tag
	Keywords      string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
	MinPrice      decimal.NullDecimal
	MaxPrice      decimal.NullDecimal
}

func (p *SearchProductsParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		Positive("Page", p.Page).
		Positive("PageSize", p.PageSize).
		AtMost("PageSize", p.PageSize, overture.MaxSearchPageSize).
		Err()
}
