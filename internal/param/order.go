package param

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"composer/internal/overture"
)

// カートから注文を作る
type CompleteCheckoutParam struct {
	Scope          string
	CultureInfo    language.Tag
	CustomerID     uuid.UUID
	CartName       string
	IdempotencyKey string
	BaseURL        string
}

func (p *CompleteCheckoutParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	c := Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("CartName", p.CartName)
	if len(p.IdempotencyKey) > 255 {
		c.fail("IdempotencyKey", "must be at most 255 characters")
	}
	return c.Err()
}

// 会員の注文一覧
type GetCustomerOrdersParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	Page        int
	PageSize    int
}

func (p *GetCustomerOrdersParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotEmptyID("CustomerId", p.CustomerID).
		Positive("Page", p.Page).
		Positive("PageSize", p.PageSize).
		AtMost("PageSize", p.PageSize, overture.MaxOrderPageSize).
		Err()
}

type GetOrderParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	OrderNumber string
	BaseURL     string
}

func (p *GetOrderParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("OrderNumber", p.OrderNumber).
		Err()
}

// 注文の持ち主を CustomerID に付け替える
type UpdateOrderCustomerParam struct {
	Scope       string
	OrderNumber string
	CustomerID  uuid.UUID
}

func (p *UpdateOrderCustomerParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		NotBlank("OrderNumber", p.OrderNumber).
		NotEmptyID("CustomerId", p.CustomerID).
		Err()
}
