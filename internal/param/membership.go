package param

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

type LoginParam struct {
	Scope       string
	CultureInfo language.Tag
	Username    string
	Password    string
	ReturnURL   string
	// ログイン前のゲストID（カート統合に使う）
	GuestCustomerID uuid.UUID
}

func (p *LoginParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotBlank("Username", p.Username).
		NotBlank("Password", p.Password).
		Err()
}

type CreateUserParam struct {
	Scope            string
	CultureInfo      language.Tag
	Username         string
	Email            string
	FirstName        string
	LastName         string
	Password         string
	PasswordQuestion string
	PasswordAnswer   string
	ReturnURL        string
	GuestCustomerID  uuid.UUID
}

func (p *CreateUserParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotBlank("Email", p.Email).
		NotBlank("FirstName", p.FirstName).
		NotBlank("LastName", p.LastName).
		NotBlank("Password", p.Password).
		Err()
}

type ChangePasswordParam struct {
	Scope       string
	CultureInfo language.Tag
	CustomerID  uuid.UUID
	OldPassword string
	NewPassword string
	ReturnURL   string
}

func (p *ChangePasswordParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotEmptyID("CustomerId", p.CustomerID).
		NotBlank("OldPassword", p.OldPassword).
		NotBlank("NewPassword", p.NewPassword).
		Err()
}

type ResetPasswordParam struct {
	Scope       string
	CultureInfo language.Tag
	Ticket      string
	NewPassword string
	ReturnURL   string
}

func (p *ResetPasswordParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotBlank("Ticket", p.Ticket).
		NotBlank("NewPassword", p.NewPassword).
		Err()
}

type ForgotPasswordParam struct {
	Scope       string
	CultureInfo language.Tag
	Email       string
}

func (p *ForgotPasswordParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		NotBlank("Email", p.Email).
		Err()
}

type GetSignInHeaderParam struct {
	Scope               string
	CultureInfo         language.Tag
	CustomerID          uuid.UUID
	IsAuthenticated     bool
	EncryptedCustomerID string
}

func (p *GetSignInHeaderParam) Validate() error {
	if p == nil {
		return Nil("param")
	}
	return Check("param").
		NotBlank("ScopeId", p.Scope).
		Culture("CultureInfo", p.CultureInfo).
		Err()
}
