package param

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// 引数不正（リモート呼び出しの前に返す）
var ErrInvalidArgument = errors.New("invalid argument")

// どの引数のどのフィールドが不正か
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string { return e.Message }

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// 引数そのものが nil
func Nil(name string) error {
	return &ArgumentError{ParamName: name, Message: fmt.Sprintf("value cannot be nil. Parameter name: %s", name)}
}

// 単独の引数チェック用
func Invalid(name, message string) error {
	return &ArgumentError{ParamName: name, Message: fmt.Sprintf("%s %s", name, message)}
}

// 最初の違反だけを持つチェッカー
type Checker struct {
	object string
	err    error
}

func Check(object string) *Checker {
	return &Checker{object: object}
}

func (c *Checker) fail(field, reason string) *Checker {
	if c.err == nil {
		name := c.object + "." + field
		c.err = &ArgumentError{ParamName: name, Message: name + " " + reason}
	}
	return c
}

// 空・空白のみは不可
func (c *Checker) NotBlank(field, v string) *Checker {
	if strings.TrimSpace(v) == "" {
		return c.fail(field, "cannot be null or whitespace")
	}
	return c
}

func (c *Checker) NotEmptyID(field string, v uuid.UUID) *Checker {
	if v == uuid.Nil {
		return c.fail(field, "cannot be empty")
	}
	return c
}

// language.Und は未設定扱い
func (c *Checker) Culture(field string, tag language.Tag) *Checker {
	if tag == language.Und {
		return c.fail(field, "cannot be null")
	}
	return c
}

func (c *Checker) Positive(field string, v int) *Checker {
	if v <= 0 {
		return c.fail(field, "must be greater than 0")
	}
	return c
}

func (c *Checker) AtMost(field string, v, max int) *Checker {
	if v > max {
		return c.fail(field, fmt.Sprintf("must be less than or equal to %d", max))
	}
	return c
}

// nil と空のスライスは不可、要素も空白不可
func (c *Checker) NotEmptyStrings(field string, v []string) *Checker {
	if v == nil {
		return c.fail(field, "cannot be null")
	}
	if len(v) == 0 {
		return c.fail(field, "cannot be empty")
	}
	for _, s := range v {
		if strings.TrimSpace(s) == "" {
			return c.fail(field, "cannot contain null or whitespace values")
		}
	}
	return c
}

func (c *Checker) Err() error { return c.err }
