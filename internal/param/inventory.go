package param

import (
	"time"

	"golang.org/x/text/language"
)

type FindInventoryItemStatusParam struct {
	Scope               string
	CultureInfo         language.Tag
	Skus                []string
	Date                time.Time
	InventoryLocationID string
}

func (p *FindInventoryItemStatusParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotEmptyStrings("Skus", p.Skus).
		NotBlank("InventoryLocationId", p.InventoryLocationID).
		Err()
}

type GetInventoryItemsBySkuParam struct {
	Scope              string
	Sku                string
	Date               time.Time
	IncludeChildScopes bool
}

func (p *GetInventoryItemsBySkuParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotBlank("Sku", p.Sku).
		Err()
}

type GetProductSettingsParam struct {
	Scope string
}

func (p *GetProductSettingsParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").NotBlank("ScopeId", p.Scope).Err()
}
