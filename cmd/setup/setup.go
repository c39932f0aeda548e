package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/cache"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/graceful"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/idgenerator"
	cMetrics "bitbucket.org/Amartha/go-recon-matching/internal/common/metrics"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/publisher"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/config"
	"bitbucket.org/Amartha/go-recon-matching/internal/deliveries/http/health"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/repositories"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const clientCachePrefix = "go-recon-matching:client"

type Setup struct {
	Config     config.Config
	NewRelic   *newrelic.Application
	WriteDB    *sql.DB
	ReadDB     *sql.DB
	Cache      *redis.Client
	RepoCache  repositories.CacheRepository
	Service    *services.Services
	Metrics    cMetrics.Metrics
	HealthDeps map[string]health.Pinger
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", ".", "./config"),
	)
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	if !cfg.Environment().VerboseLogging() {
		logLevel = xlog.InfoLogLevel()
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		err = fmt.Errorf("failed connect to redis: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return rdb.Close() })

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	// register redis prometheus metrics
	err = mtc.RegisterRedis(rdb, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	// register repository
	var repoOpts []repositories.RepositoryOption
	if cfg.Matching.UseRedisCache {
		repoOpts = append(repoOpts, repositories.WithClientCache(cache.NewRedisClient[models.Client](rdb, clientCachePrefix)))
	}
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg, repoOpts...)
	cacheRepo := repositories.NewCacheRepository(rdb)

	matchNotificationPub := publisher.NewNoopPublisher()
	if cfg.MessageBroker.EnableMatchNotification {
		producer, errProducer := publisher.NewKafkaSyncProducer(cfg.MessageBroker.Brokers, publisher.WithClientID(cfg.App.Name))
		if errProducer != nil {
			err = fmt.Errorf("unable to create client kafka sync producer: %w", errProducer)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		matchNotificationPub = publisher.NewPublisher(producer, cfg.MessageBroker.TopicMatchNotification, mtc.GetPublisherPrometheus())
	}

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		matchNotificationPub,
		idgenerator.New(),
		mtc,
	)

	return &Setup{
		Config:    cfg,
		NewRelic:  newRelic,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     rdb,
		RepoCache: cacheRepo,
		Service:   srv,
		Metrics:   mtc,
		HealthDeps: map[string]health.Pinger{
			"postgres-write": health.PingFunc(writeDB.PingContext),
			"postgres-read":  health.PingFunc(readDB.PingContext),
			"redis": health.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
		},
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if !cfg.Environment().IsProd() {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
