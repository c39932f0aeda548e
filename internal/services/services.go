package services

import (
	"bitbucket.org/Amartha/go-recon-matching/internal/common/idgenerator"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/matching"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/metrics"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/publisher"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	"bitbucket.org/Amartha/go-recon-matching/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	matchNotificationPub publisher.Publisher
	idgenerator          idgenerator.Generator
	metrics              metrics.Metrics

	common service

	Matching *matchingService
	Rule     *ruleService
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	matchNotificationPub publisher.Publisher,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	conf.Matching = conf.Matching.WithDefaults()

	srv := &Services{
		conf:                 conf,
		sqlRepo:              sqlRepo,
		cacheRepo:            cacheRepo,
		matchNotificationPub: matchNotificationPub,
		idgenerator:          idgenerator,
		metrics:              metrics,
	}
	srv.common.srv = srv
	srv.Matching = (*matchingService)(&srv.common)
	srv.Rule = (*ruleService)(&srv.common)

	return srv
}

func (s *Services) limits() matching.Limits {
	return matching.Limits{
		MaxGroupSideSize: s.conf.Matching.MaxGroupSideSize,
		MaxBucketSize:    s.conf.Matching.MaxBucketSize,
	}
}

// matchingMetrics is nil safe so services can run without a registry.
func (s *Services) matchingMetrics() *metrics.MatchingPrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetMatchingPrometheus()
}
