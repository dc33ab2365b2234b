package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type crud interface {
	List(echo.Context) error
	Create(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
}

type authHandlers interface {
	DevLogin(echo.Context) error
	WhoAmI(echo.Context) error
}

type kbHandlers interface {
	IngestText(echo.Context) error
	IngestURL(echo.Context) error
	Search(echo.Context) error
	List(echo.Context) error
}

// Controllers are the handlers mounted by New.
type Controllers struct {
	Field     crud
	Livestock crud
	Chat      interface{ Chat(echo.Context) error }
	Auth      authHandlers
	Catalog   interface{ Get(echo.Context) error }
	Geo       interface{ Parse(echo.Context) error }
	Export    interface{ Farm(echo.Context) error }
	KB        kbHandlers
	Health    interface{ Health(echo.Context) error }
	Metrics   http.Handler
}

// New mounts every route. identity runs on /api only; /health and /metrics stay open.
func New(e *echo.Echo, identity echo.MiddlewareFunc, h Controllers, log *zap.Logger) *echo.Echo {
	e.HTTPErrorHandler = ErrorHandler(log)

	e.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	api := e.Group("/api", identity)

	api.GET("/fields", h.Field.List)
	api.POST("/fields", h.Field.Create)
	api.PATCH("/fields/:id", h.Field.Patch)
	api.DELETE("/fields/:id", h.Field.Delete)

	api.GET("/livestock", h.Livestock.List)
	api.POST("/livestock", h.Livestock.Create)
	api.PATCH("/livestock/:id", h.Livestock.Patch)
	api.DELETE("/livestock/:id", h.Livestock.Delete)

	api.POST("/chat", h.Chat.Chat)

	api.GET("/auth/whoami", h.Auth.WhoAmI)
	api.POST("/auth/devlogin", h.Auth.DevLogin)

	api.GET("/catalog", h.Catalog.Get)
	api.GET("/coordinates/parse", h.Geo.Parse)
	api.GET("/export/farm.xlsx", h.Export.Farm)

	// KB endpoints
	api.POST("/kb/ingest", h.KB.IngestText)
	api.POST("/kb/ingest/url", h.KB.IngestURL)
	api.GET("/kb/search", h.KB.Search)
	api.GET("/kb/docs", h.KB.List)
	return e
}

// ErrorHandler renders framework errors (unknown route, wrong method, body
// too large, panics) with the same {"error": ...} shape as the handlers.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, echo.Map{"error": msg})
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}
