package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/graceful"
	commonhttp "bitbucket.org/Amartha/go-recon-matching/internal/common/http"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/http/middleware"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/metrics"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	"bitbucket.org/Amartha/go-recon-matching/internal/deliveries/http/health"
	v1matching "bitbucket.org/Amartha/go-recon-matching/internal/deliveries/http/v1/matching"
	v1rules "bitbucket.org/Amartha/go-recon-matching/internal/deliveries/http/v1/rules"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Error(ctx, "[SHUTDOWN] HTTP server error", xlog.Err(err))
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router, mostly for tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title GO RECON MATCHING API DOCUMENTATION
// @version 1.0
// @description Reconciliation matching engine: rules, auto matching runs, manual matches and unmatching.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	metrics metrics.Metrics,
	healthDeps map[string]health.Pinger,
	matchingService services.MatchingService,
	ruleService services.RuleService,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	if conf.App.HTTPTimeout > 0 {
		app.Use(echomiddleware.ContextTimeout(conf.App.HTTPTimeout))
	}
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", xlog.GetCorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	if !conf.Environment().IsProd() {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(metrics.EchoMiddleware(conf.App.Name))
	app.GET("/metrics", metrics.EchoHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup, healthDeps)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1matching.New(v1Group, matchingService)
	v1rules.New(v1Group, ruleService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	xlog.Info(ctx, "[HTTP] routes registered", xlog.Int("routes", len(app.Routes())))

	return svc
}
