package param

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

type GetCartParam struct {
	Scope           string
	CultureInfo     language.Tag
	CustomerID      uuid.UUID
	CartName        string
	CurrencyCode    string
	BaseURL         string
	ExecuteWorkflow bool
}

func (p *GetCartParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName).
		Err()
}

type AddLineItemParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	CartName    string
	ProductID   string
	VariantID   string
	Quantity    int
	BaseURL     string
}

func (p *AddLineItemParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName).
		NotBlank("ProductId", p.ProductID).
		Positive("Quantity", p.Quantity).
		Err()
}

type UpdateLineItemParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	CartName    string
	LineItemID  uuid.UUID
	Quantity    int
	GiftWrap    bool
	GiftMessage string
	BaseURL     string
}

func (p *UpdateLineItemParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName).
		NotEmptyID("LineItemId", p.LineItemID).
		Positive("Quantity", p.Quantity).
		Err()
}

type RemoveLineItemParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	CartName    string
	LineItemID  uuid.UUID
	BaseURL     string
}

func (p *RemoveLineItemParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName).
		NotEmptyID("LineItemId", p.LineItemID).
		Err()
}

// クーポン追加・削除
// 削除で CouponCode が空なら全クーポンが対象
type CouponParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	CartName    string
	CouponCode  string
	BaseURL     string
}

func (p *CouponParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName).
		NotBlank("CouponCode", p.CouponCode).
		Err()
}

type RemoveCouponsParam struct {
	Scope       string
	CustomerID  uuid.UUID
	CartName    string
	CouponCodes []string
}

func (p *RemoveCouponsParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	c := Check("param").
		NotBlank("ScopeId", p.Scope).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName)
	if p.CouponCodes == nil {
		c.fail("CouponCodes", "cannot be null")
	}
	return c.Err()
}

// ログイン時のカート統合
type MergeCartParam struct {
	Scope           string
	CartName        string
	GuestCustomerID uuid.UUID
	CustomerID      uuid.UUID
}

func (p *MergeCartParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotBlank("CartName", p.CartName).
		NotEmptyID("GuestCustomerId", p.GuestCustomerID).
		NotEmptyID("CustomerId", p.CustomerID).
		Err()
}
