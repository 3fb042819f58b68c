package param

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

type GetCustomerByIDParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
}

func (p *GetCustomerByIDParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		Err()
}

type GetCustomerByUsernameParam struct {
	Scope       string
	CultureInfo language.Tag
	Username    string
}

func (p *GetCustomerByUsernameParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotBlank("Username", p.Username).
		Err()
}

type GetLookupParam struct {
	LookupName string
}

func (p *GetLookupParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").NotBlank("LookupName", p.LookupName).Err()
}
