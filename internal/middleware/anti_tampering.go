package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"composer/internal/requestctx"
)

// 認証とゲストの状態が食い違う cookie を捨てる
// 認証済みなのにゲスト → 認証を外す
// 未認証なのに会員、またはチケットと cookie の会員が違う → 両方外して新しいゲストにする
// XHR は 205 で画面の再読み込みを促す
func AntiCookieTampering(tickets *AuthTicket, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := requestctx.Get(c)
			if cc == nil {
				return next(c)
			}
			switch {
			case cc.IsAuthenticated && cc.IsGuest:
				logger.Info("auth ticket dropped for guest cookie", zap.String("username", cc.Username))
				tickets.Clear(c)
				cc.SignOut()
			case !cc.IsAuthenticated && !cc.IsGuest:
				logger.Info("composer cookie dropped for unauthenticated member", zap.String("customerId", cc.CustomerID.String()))
				tickets.Clear(c)
				cc.SignOut()
				cc.SetCustomer(uuid.New(), true)
			case cc.IsAuthenticated && cc.TicketCustomerID != cc.CustomerID:
				logger.Warn("auth ticket does not match composer cookie",
					zap.String("username", cc.Username),
					zap.String("customerId", cc.CustomerID.String()))
				tickets.Clear(c)
				cc.SignOut()
				cc.SetCustomer(uuid.New(), true)
			default:
				return next(c)
			}

			if isAjax(c.Request()) {
				return c.NoContent(http.StatusResetContent)
			}
			return next(c)
		}
	}
}

// RequireAuthenticated は未認証を 401 にする
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := requestctx.Get(c)
			if cc == nil || !cc.IsAuthenticated {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			return next(c)
		}
	}
}

func isAjax(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}
