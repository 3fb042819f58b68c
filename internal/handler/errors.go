package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/localization"
	"composer/internal/overture"
	"composer/internal/param"
	"composer/internal/repository"
	"composer/internal/requestctx"
	"composer/internal/usecase"
	"composer/internal/validator"
	"composer/internal/viewmodel"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError はステータスが決まるエラーだけ JSON にする
// コマースエラーはそのまま返して HTTPErrorHandler に任せる
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	var ae *param.ArgumentError
	if errors.As(err, &ae) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ae.Message})
	}
	var ie *validator.InputError
	if errors.As(err, &ie) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ie.Error()})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	if _, ok := overture.AsError(err); ok {
		return err
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 文字列リソース
type Localizer interface {
	GetLocalizedString(p localization.GetLocalizedParam, args ...interface{}) string
}

// NewHTTPErrorHandler はハンドラから返ったエラーの最終変換
// 全てがコマースエラーなら一覧で 500、それ以外は従来の変換
func NewHTTPErrorHandler(localizer Localizer, logger *zap.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			respond(c, logger, he.Code, ErrorResponse{Error: msg})
			return
		}

		if vm, ok := aggregatedErrors(err, localizer, cultureOf(c)); ok {
			logger.Warn("commerce errors", zap.Int("count", len(vm.Errors)), zap.Error(err))
			respond(c, logger, http.StatusInternalServerError, vm)
			return
		}

		// writeError と同じ変換（ハンドラ外から来たもの）
		if werr := writeError(c, err); werr != nil {
			logger.Error("unhandled error", zap.Error(err))
			respond(c, logger, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}
}

// aggregatedErrors はまとめられたエラーが全てコマースエラーの時だけ表示用にする
func aggregatedErrors(err error, localizer Localizer, culture language.Tag) (*viewmodel.ErrorsViewModel, bool) {
	inner := overture.Errors(err)
	if len(inner) == 0 {
		return nil, false
	}

	vm := &viewmodel.ErrorsViewModel{Errors: make([]viewmodel.ErrorViewModel, 0, len(inner))}
	for _, e := range inner {
		oe, ok := overture.AsError(e)
		if !ok {
			return nil, false
		}
		localized := ""
		if localizer != nil {
			localized = localizer.GetLocalizedString(localization.GetLocalizedParam{
				Category:    "Errors",
				Key:         "L_" + oe.Code,
				CultureInfo: culture,
			})
		}
		if localized == "" {
			localized = oe.Message
		}
		vm.Errors = append(vm.Errors, viewmodel.ErrorViewModel{
			ErrorCode:             oe.Code,
			ErrorMessage:          oe.Message,
			LocalizedErrorMessage: localized,
		})
	}
	return vm, true
}

func cultureOf(c echo.Context) language.Tag {
	if cc := requestctx.Get(c); cc != nil {
		return cc.CultureInfo
	}
	return language.English
}

func respond(c echo.Context, logger *zap.Logger, status int, body interface{}) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.Error("write error response failed", zap.Error(err))
	}
}
