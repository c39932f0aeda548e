package metrics

import (
	"database/sql"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	EchoMiddleware(serviceName string) echo.MiddlewareFunc
	EchoHandler() echo.HandlerFunc
	PrometheusRegisterer() prometheus.Registerer
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetMatchingPrometheus() *MatchingPrometheusMetrics
}

type metrics struct {
	reg              prometheus.Registerer
	gatherer         prometheus.Gatherer
	publisherMetrics *PublisherPrometheusMetrics
	matchingMetrics  *MatchingPrometheusMetrics
}

func New() Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry is New on a private registry, mostly for tests.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) Metrics {
	return &metrics{
		reg:              reg,
		gatherer:         gatherer,
		publisherMetrics: newPublisherPrometheusMetrics(reg),
		matchingMetrics:  newMatchingPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  FlattenName(serviceName),
		Subsystem:  "http",
		Registerer: m.reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

func (m *metrics) EchoHandler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: m.gatherer})
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisherMetrics
}

func (m *metrics) GetMatchingPrometheus() *MatchingPrometheusMetrics {
	return m.matchingMetrics
}
