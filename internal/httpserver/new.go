package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"trade-custody/internal/item/audit"
	"trade-custody/internal/item/repository"
	"trade-custody/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	swaggerEnabled  bool
	rateLimitPerMin int

	// Item domain
	itemRepo  repository.Repository
	auditSink audit.Sink
	readyFn   func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	SwaggerEnabled  bool
	RateLimitPerMin int

	// Item domain
	ItemRepository repository.Repository
	AuditSink      audit.Sink

	// ReadyCheck reports whether backing services are reachable. Optional.
	ReadyCheck func() error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		swaggerEnabled:  cfg.SwaggerEnabled,
		rateLimitPerMin: cfg.RateLimitPerMin,
		itemRepo:        cfg.ItemRepository,
		auditSink:       cfg.AuditSink,
		readyFn:         cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.auditSink == nil {
		srv.auditSink = audit.NewLogSink(logger)
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	return nil
}
