package health

import (
	"context"
	nethttp "net/http"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type healthHandler struct {
	deps map[string]Pinger
}

// New health handler will initialize the health/ resources endpoint.
// Each dependency is pinged by the readiness probe only.
func New(app *echo.Group, deps map[string]Pinger) {
	hh := healthHandler{deps: deps}
	health := app.Group("/health")
	health.GET("", hh.healthCheck)
	health.GET("/ready", hh.readiness)
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}

	DoHealthCheckReadinessResponse struct {
		Kind         string            `json:"kind" example:"health"`
		Status       string            `json:"status" example:"ready"`
		Dependencies map[string]string `json:"dependencies"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}

// readiness godoc
// @Summary 	Get the status of the server dependencies
// @Produce		json
// @Success 200 {object} DoHealthCheckReadinessResponse
// @Failure 503 {object} DoHealthCheckReadinessResponse
// @Router /health/ready [get]
func (hh healthHandler) readiness(c echo.Context) error {
	res := DoHealthCheckReadinessResponse{
		Kind:         "health",
		Status:       "ready",
		Dependencies: make(map[string]string, len(hh.deps)),
	}
	code := nethttp.StatusOK
	for name, dep := range hh.deps {
		if err := dep.Ping(c.Request().Context()); err != nil {
			res.Dependencies[name] = err.Error()
			res.Status = "not ready"
			code = nethttp.StatusServiceUnavailable
			continue
		}
		res.Dependencies[name] = "ok"
	}

	return http.RestSuccessResponse(c, code, res)
}
