package webserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/internal/app"
	"github.com/talkincode/backoffice/pkg/common"
)

const (
	// AppContextKey is the echo context key holding app.AppContext
	AppContextKey = "appCtx"
	apiPrefix     = "/api/v1"
	shutdownWait  = 10 * time.Second
)

type WebServer struct {
	root   *echo.Echo
	api    *echo.Group
	appCtx app.AppContext
}

var server *WebServer

// Init creates the global web server. Route registration helpers are usable
// once Init has been called.
func Init(appCtx app.AppContext) {
	server = NewWebServer(appCtx)
}

func NewWebServer(appCtx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			zap.L().Error("panic recovered",
				zap.String("namespace", "web"),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
				zap.ByteString("stack", stack))
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: common.UUID}))
	e.Use(requestLogger())
	e.Use(appContextMiddleware(appCtx))

	e.GET("/healthz", func(c echo.Context) error {
		status := "ok"
		if !appCtx.BackendHealthy() {
			status = "degraded"
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  status,
			"backend": appCtx.Backend().BaseURL(),
		})
	})

	return &WebServer{root: e, api: e.Group(apiPrefix), appCtx: appCtx}
}

// AppContext returns the application context the global server was built with
func AppContext() app.AppContext {
	return server.appCtx
}

// Root returns the echo instance of the global server
func Root() *echo.Echo {
	return server.root
}

func ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.GET(path, h, m...)
}

func ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.POST(path, h, m...)
}

func ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.PUT(path, h, m...)
}

func ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.api.DELETE(path, h, m...)
}

// Listen serves until ctx is cancelled and then shuts down gracefully
func Listen(ctx context.Context) error {
	cfg := server.appCtx.Config().Web
	server.root.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	server.root.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("Prepare to start the web server %s", addr)
		errCh <- server.root.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	zap.S().Info("Shutting down the web server")
	return server.root.Shutdown(sctx)
}

// httpErrorHandler renders echo errors (unknown routes, bad methods) in the
// same envelope the API handlers use.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		msg = fmt.Sprint(he.Message)
	}
	code := http.StatusText(status)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("namespace", "web"), zap.Error(err))
	}
	_ = c.JSON(status, map[string]interface{}{
		"success": false,
		"code":    code,
		"message": msg,
	})
}
