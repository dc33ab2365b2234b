// Package server assembles repositories, services and controllers into the
// HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agriai/config"
	"agriai/pkg/ai"
	"agriai/pkg/events"
	"agriai/pkg/idgen"
	"agriai/pkg/kb/embedder"
	"agriai/pkg/kb/scrape"
	"agriai/pkg/logging"
	"agriai/pkg/metrics"
	"agriai/pkg/middleware"
	"agriai/router"

	authCtrlImp "agriai/pkg/auth/controllerImp"
	"agriai/pkg/catalog"
	catalogCtrlImp "agriai/pkg/catalog/controllerImp"
	chatCtrlImp "agriai/pkg/chat/controllerImp"
	chatSvcImp "agriai/pkg/chat/serviceImp"
	exportCtrlImp "agriai/pkg/export/controllerImp"
	fieldCtrlImp "agriai/pkg/field/controllerImp"
	fieldRepoImp "agriai/pkg/field/repositoryImp"
	fieldSvcImp "agriai/pkg/field/serviceImp"
	geoCtrlImp "agriai/pkg/geo/controllerImp"
	healthCtrlImp "agriai/pkg/health/controllerImp"
	kbCtrlImp "agriai/pkg/kb/controllerImp"
	kbRepoImp "agriai/pkg/kb/repositoryImp"
	kbSvcImp "agriai/pkg/kb/serviceImp"
	livestockCtrlImp "agriai/pkg/livestock/controllerImp"
	livestockRepoImp "agriai/pkg/livestock/repositoryImp"
	livestockSvcImp "agriai/pkg/livestock/serviceImp"
	userRepoImp "agriai/pkg/user/repositoryImp"
	userSvcImp "agriai/pkg/user/serviceImp"
)

// Options replace the providers New would otherwise build from the config.
type Options struct {
	Generator ai.Generator
	Embedder  embedder.Embedder
	Publisher events.Publisher
}

type Server struct {
	Echo *echo.Echo
	cfg  config.AppConfig
	pub  events.Publisher
	log  *zap.Logger
}

func New(ctx context.Context, cfg config.AppConfig, db *gorm.DB, log *zap.Logger, opts Options) (*Server, error) {
	gen := opts.Generator
	if gen == nil {
		if cfg.GeminiAPIKey != "" {
			g, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return nil, err
			}
			gen = g
		} else {
			log.Warn("GEMINI_API_KEY not set, chat answers come from the mock generator")
			gen = ai.NewMock()
		}
	}

	emb := opts.Embedder
	if emb == nil && cfg.GeminiAPIKey != "" {
		e, err := embedder.NewGemini(ctx, cfg.GeminiAPIKey, cfg.EmbedModel)
		if err != nil {
			return nil, err
		}
		emb = e
	}

	pub := opts.Publisher
	if pub == nil {
		p, err := events.New(cfg.NATSURL)
		if err != nil {
			log.Warn("events disabled", zap.Error(err))
			p = &events.NoopPublisher{}
		}
		pub = p
	}

	extras := map[string]healthCtrlImp.Checker{}
	if ck, ok := pub.(healthCtrlImp.Checker); ok {
		extras["events"] = ck
	}
	m := metrics.New()
	pub = events.Observed(pub, m.ObservePublish)

	cat, err := catalog.New(cfg.DefaultLang)
	if err != nil {
		return nil, err
	}

	// Repos/Services
	users := userSvcImp.NewUserService(userRepoImp.New(db))
	fields := fieldSvcImp.NewFieldService(fieldRepoImp.New(db), pub, log)
	livestock := livestockSvcImp.NewLivestockService(livestockRepoImp.New(db), pub, log)
	chat := chatSvcImp.NewChatService(ai.NewClient(gen, log), fields, livestock)
	kb := kbSvcImp.New(kbRepoImp.New(db), emb, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: idgen.RequestID}))
	e.Use(m.Middleware())
	e.Use(logging.RequestLogger(log))
	e.Use(echoMiddleware.BodyLimit("2M"))

	if fi, err := os.Stat(cfg.StaticDir); err == nil && fi.IsDir() {
		e.Static("/", cfg.StaticDir)
	}

	identity := middleware.Identity(users, middleware.IdentityConfig{
		Strict:       cfg.AuthStrict,
		DemoUsername: cfg.DemoUsername,
	}, log)

	router.New(e, identity, router.Controllers{
		Field:     fieldCtrlImp.New(fields, log),
		Livestock: livestockCtrlImp.New(livestock, log),
		Chat:      chatCtrlImp.New(chat, log),
		Auth:      authCtrlImp.NewAuthController(users, cfg.DemoUsername, log),
		Catalog:   catalogCtrlImp.New(cat),
		Geo:       geoCtrlImp.New(),
		Export:    exportCtrlImp.New(cat, fields, livestock, log),
		KB:        kbCtrlImp.New(kb, scrape.New(cfg.KBAllowedDomains, cfg.KBMaxBytes), log),
		Health:    healthCtrlImp.NewHealthCtrl(db, extras),
		Metrics:   m.Handler(log),
	}, log)

	return &Server{Echo: e, cfg: cfg, pub: pub, log: log}, nil
}

// Start blocks serving on the configured port until Shutdown.
func (s *Server) Start() error {
	s.log.Info("listening", zap.String("addr", ":"+s.cfg.Port))
	if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the event publisher.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Echo.Shutdown(ctx)
	if cerr := s.pub.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
