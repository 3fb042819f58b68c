package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"composer/internal/requestctx"
)

// middleware が入れた利用者の状態
func composerFrom(c echo.Context) (*requestctx.ComposerContext, bool) {
	cc := requestctx.Get(c)
	return cc, cc != nil
}

func missingContext(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "missing composer context"})
}
