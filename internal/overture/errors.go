package overture

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// コマース側が返すエラーコード
const (
	CodeNotFound             = "NotFound"
	CodeInvalidOperation     = "InvalidOperation"
	CodeCouponNotFound       = "CouponNotFound"
	CodeLineItemNotFound     = "LineItemNotFound"
	CodeProductNotFound      = "ProductNotFound"
	CodeCustomerNotFound     = "CustomerNotFound"
	CodeInvalidCredentials   = "InvalidCredentials"
	CodeDuplicateUsername    = "DuplicateUserName"
	CodeDuplicateEmail       = "DuplicateEmail"
	CodeInvalidPassword      = "InvalidPassword"
	CodeInvalidEmail         = "InvalidEmail"
	CodeInvalidTicket        = "InvalidTicket"
	CodeUserRejected         = "UserRejected"
	CodeRequiresApproval     = "RequiresApproval"
	CodeInactiveAccount      = "InactiveAccount"
	CodeLookupNotFound       = "LookupNotFound"
	CodeScopeNotFound        = "ScopeNotFound"
	CodeDefinitionNotFound   = "ProductDefinitionNotFound"
	CodeInvalidCouponCode    = "InvalidCouponCode"
	CodeInsufficientQuantity = "InsufficientQuantity"
	CodeCountryNotFound      = "CountryNotFound"
	CodeOrderNotFound        = "OrderNotFound"
	CodeEmptyCart            = "EmptyCart"
	CodeInvalidCart          = "InvalidCart"
)

// コマースAPIの業務エラー
type Error struct {
	Code    string `json:"errorCode"`
	Message string `json:"errorMessage"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("overture: %s", e.Code)
	}
	return fmt.Sprintf("overture: %s: %s", e.Code, e.Message)
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// errがコマースエラーならそれを返す
func AsError(err error) (*Error, bool) {
	var oe *Error
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}

// errがcodeのコマースエラーか
func HasCode(err error, code string) bool {
	oe, ok := AsError(err)
	return ok && oe.Code == code
}

// 複数の失敗をまとめる
func Combine(errs ...error) error {
	return multierr.Combine(errs...)
}

// まとめられたエラーを展開する（単体ならそれ1つ）
func Errors(err error) []error {
	return multierr.Errors(err)
}
