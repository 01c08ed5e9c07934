package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	intentHTTP "github.com/pKa1/loveSonia/internal/intent/delivery/http"
	tgDelivery "github.com/pKa1/loveSonia/internal/intent/delivery/telegram"
	"github.com/pKa1/loveSonia/internal/middleware"
	"github.com/pKa1/loveSonia/internal/realtime"
	"github.com/pKa1/loveSonia/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	gatherer    prometheus.Gatherer
	middleware  middleware.Middleware

	// Intent domain
	intentHandler   intentHTTP.Handler
	telegramHandler tgDelivery.Handler
	realtimeHandler *realtime.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Gatherer    prometheus.Gatherer // nil serves prometheus.DefaultGatherer
	Middleware  middleware.Middleware

	// Intent domain; nil handlers skip their routes
	IntentHandler   intentHTTP.Handler
	TelegramHandler tgDelivery.Handler
	RealtimeHandler *realtime.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}
	if cfg.Middleware.Limiter() == nil {
		cfg.Middleware = middleware.New(logger, middleware.Config{})
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		gatherer:        cfg.Gatherer,
		middleware:      cfg.Middleware,
		intentHandler:   cfg.IntentHandler,
		telegramHandler: cfg.TelegramHandler,
		realtimeHandler: cfg.RealtimeHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
