package config

import (
	"time"
)

type (
	Config struct {
		App                App                      `json:"app"`
		Postgres           Postgres                 `json:"postgres"`
		Redis              Redis                    `json:"redis"`
		SecretKey          string                   `json:"secret_key"`
		NewRelicLicenseKey string                   `json:"new_relic_license_key"`
		MessageBroker      MessageBroker            `json:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
		Matching           MatchingConfig           `json:"matching"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	MessageBroker struct {
		Brokers                 []string `json:"brokers"`
		TopicMatchNotification  string   `json:"topic_match_notification"`
		EnableMatchNotification bool     `json:"enable_match_notification"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		InitialInterval   time.Duration `json:"initial_interval"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	// MatchingConfig holds the search limits of the matching engine and the
	// knobs of the commit path.
	MatchingConfig struct {
		// MaxGroupSideSize caps how many transactions one side of a
		// many_to_one / many_to_many group may contain.
		MaxGroupSideSize int `json:"max_group_side_size"`

		// MaxBucketSize is the largest date bucket searched for N:1 and N:N
		// groups, bigger buckets are skipped and reported in the run stats.
		MaxBucketSize int `json:"max_bucket_size"`

		RunLockTTL        time.Duration `json:"run_lock_ttl"`
		CommitTimeout     time.Duration `json:"commit_timeout"`
		WorkerConcurrency int           `json:"worker_concurrency"`
		ClientCacheTTL    time.Duration `json:"client_cache_ttl"`
		UseRedisCache     bool          `json:"use_redis_cache"`
	}
)

const (
	DefaultMaxGroupSideSize  = 6
	DefaultMaxBucketSize     = 32
	DefaultRunLockTTL        = 5 * time.Minute
	DefaultWorkerConcurrency = 4
	DefaultClientCacheTTL    = time.Minute
)

// WithDefaults fills zero values of the matching section.
func (m MatchingConfig) WithDefaults() MatchingConfig {
	if m.MaxGroupSideSize <= 0 {
		m.MaxGroupSideSize = DefaultMaxGroupSideSize
	}
	if m.MaxBucketSize <= 0 {
		m.MaxBucketSize = DefaultMaxBucketSize
	}
	if m.RunLockTTL <= 0 {
		m.RunLockTTL = DefaultRunLockTTL
	}
	if m.WorkerConcurrency <= 0 {
		m.WorkerConcurrency = DefaultWorkerConcurrency
	}
	if m.ClientCacheTTL <= 0 {
		m.ClientCacheTTL = DefaultClientCacheTTL
	}
	return m
}
