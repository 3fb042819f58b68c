package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

// echo.Validator（リクエストDTOのタグを検証）
type RequestValidator struct {
	v *validator.Validate
}

func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーには json 名を出す
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &RequestValidator{v: v}
}

// InputError はどのフィールドが不正か
type InputError struct {
	Fields []string
	msg    string
}

func (e *InputError) Error() string { return e.msg }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fields := make([]string, 0, len(ves))
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		fields = append(fields, fe.Field())
		msgs = append(msgs, message(fe))
	}
	return &InputError{Fields: fields, msg: strings.Join(msgs, "; ")}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a uuid", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
