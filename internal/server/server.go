package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"composer/internal/auth"
	"composer/internal/handler"
	"composer/internal/metrics"
	"composer/internal/middleware"
	"composer/internal/validator"
)

type Options struct {
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Cookies   *middleware.ComposerCookieStore
	Tickets   *middleware.AuthTicket
	IDs       auth.IDGenerator
	Defaults  middleware.ContextDefaults
	Localizer handler.Localizer
}

// New は middleware とエラー変換を組んだ echo を返す
// /api 以下だけ composer context を作る
func New(opts Options) *echo.Echo {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(opts.Localizer, logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
	}
	e.Use(middleware.RequestLogger(logger))
	e.Use(apiOnly(middleware.ComposerContext(opts.Cookies, opts.Tickets, opts.IDs, opts.Defaults, logger)))
	e.Use(apiOnly(middleware.AntiCookieTampering(opts.Tickets, logger)))
	return e
}

func apiOnly(mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, "/api/") {
				return next(c)
			}
			return wrapped(c)
		}
	}
}

// Start は ctx が終わるまで待ち受けて、終わったら接続を閉じる
func Start(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", addr))
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received; draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
