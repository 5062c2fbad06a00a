package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/labstack/echo/v4"
	clowder "github.com/redhatinsights/app-common-go/pkg/api/v1"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const DefaultAppName = "domain-sync"

const (
	HeaderRequestId     = "x-rh-insights-request-id"
	RequestIdLoggingKey = "request_id"
)

type Configuration struct {
	Database            Database
	Logging             Logging
	Loaded              bool
	Options             Options
	Kafka               Kafka
	Cloudwatch          Cloudwatch
	Metrics             Metrics
	Clients             Clients            `mapstructure:"clients"`
	Sentry              Sentry             `mapstructure:"sentry"`
	NotificationsClient cloudevents.Client `mapstructure:"notification_client"`
}

type Clients struct {
	Registry Registry `mapstructure:"registry"`
	Redis    Redis    `mapstructure:"redis"`
}

// Registry holds the settings of the remote hosting provider that owns the
// authoritative domain list.
type Registry struct {
	Server               string
	Token                string
	SiteID               string        `mapstructure:"site_id"`
	Timeout              time.Duration `mapstructure:"timeout"`
	RetryAttempts        int           `mapstructure:"retry_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
}

type Database struct {
	Driver            string
	Host              string
	Port              int
	User              string
	Password          string
	Name              string
	CACertPath        string        `mapstructure:"ca_cert_path"`
	PoolLimit         int           `mapstructure:"pool_limit"`
	SlowQueryDuration time.Duration `mapstructure:"slow_query_duration"`
}

type Logging struct {
	Level   string
	Console bool
	Color   bool
}

type Cloudwatch struct {
	Region  string
	Key     string
	Secret  string
	Session string
	Group   string
	Stream  string
}

type Redis struct {
	Host       string
	Port       int
	Username   string
	Password   string
	DB         int
	Expiration Expiration
}

type Expiration struct {
	SiteInfo time.Duration `mapstructure:"site_info"`
}

type Sentry struct {
	Dsn string
}

type Kafka struct {
	Bootstrap struct {
		Servers string
	}
	Topic  string
	Capath string
	Sasl   struct {
		Username  string
		Password  string
		Mechanism string
		Protocol  string
	}
}

// https://stackoverflow.com/questions/54844546/how-to-unmarshal-golang-viper-snake-case-values
type Options struct {
	// Cron expression for the in-process reconcile schedule, empty disables it
	SyncSchedule    string        `mapstructure:"sync_schedule"`
	SyncConcurrency int           `mapstructure:"sync_concurrency"`
	OwnerLock       string        `mapstructure:"owner_lock"`
	OwnerLockTTL    time.Duration `mapstructure:"owner_lock_ttl"`
}

type Metrics struct {
	// Defines the path to the metrics server that the app should be configured to
	// listen on for metric traffic.
	Path string `mapstructure:"path"`

	// Defines the metrics port that the app should be configured to listen on for
	// metric traffic.
	Port int `mapstructure:"port"`
}

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

const (
	OwnerLockLocal    = "local"
	OwnerLockRedis    = "redis"
	OwnerLockPostgres = "postgres"
)

const (
	DefaultRegistryServer       = "https://api.netlify.com/api/v1"
	DefaultRegistryTimeout      = 30 * time.Second
	DefaultRetryAttempts        = 3
	DefaultRetryInitialInterval = 200 * time.Millisecond
	DefaultSyncConcurrency      = 4
	DefaultOwnerLockTTL         = 2 * time.Minute
	DefaultNotificationsTopic   = "platform.notifications.ingress"
)

var LoadedConfig Configuration

func Get() *Configuration {
	if !LoadedConfig.Loaded {
		Load()
	}
	return &LoadedConfig
}

func RedisUrl() string {
	return fmt.Sprintf("%s:%d", Get().Clients.Redis.Host, Get().Clients.Redis.Port)
}

func readConfigFile(v *viper.Viper) {
	v.SetConfigName("config.yaml")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs/")
	v.AddConfigPath("../../configs/")
	v.AddConfigPath("../../../configs")

	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		v.AddConfigPath(path)
	}
	err := v.ReadInConfig()
	if err != nil {
		log.Logger.Warn().Msgf("config.yaml file not loaded: %s", err.Error())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Loaded", true)
	// In viper you have to set defaults, otherwise loading from ENV doesn't work
	//   without a config file present
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.pool_limit", 20)
	v.SetDefault("database.slow_query_duration", 2*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.color", false)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.port", 9000)
	v.SetDefault("sentry.dsn", "")

	v.SetDefault("clients.registry.server", DefaultRegistryServer)
	v.SetDefault("clients.registry.token", os.Getenv("NETLIFY_ACCESS_TOKEN"))
	v.SetDefault("clients.registry.site_id", os.Getenv("NETLIFY_SITE_ID"))
	v.SetDefault("clients.registry.timeout", DefaultRegistryTimeout)
	v.SetDefault("clients.registry.retry_attempts", DefaultRetryAttempts)
	v.SetDefault("clients.registry.retry_initial_interval", DefaultRetryInitialInterval)

	v.SetDefault("options.sync_schedule", "")
	v.SetDefault("options.sync_concurrency", DefaultSyncConcurrency)
	v.SetDefault("options.owner_lock", OwnerLockLocal)
	v.SetDefault("options.owner_lock_ttl", DefaultOwnerLockTTL)

	v.SetDefault("cloudwatch.region", "")
	v.SetDefault("cloudwatch.group", "")
	v.SetDefault("cloudwatch.stream", DefaultLogwatchStream())
	v.SetDefault("cloudwatch.session", "")
	v.SetDefault("cloudwatch.secret", "")
	v.SetDefault("cloudwatch.key", "")

	v.SetDefault("clients.redis.host", "")
	v.SetDefault("clients.redis.port", "")
	v.SetDefault("clients.redis.username", "")
	v.SetDefault("clients.redis.password", "")
	v.SetDefault("clients.redis.db", 0)
	v.SetDefault("clients.redis.expiration.site_info", 1*time.Minute)

	v.SetDefault("kafka.bootstrap.servers", "")
	v.SetDefault("kafka.topic", DefaultNotificationsTopic)
	v.SetDefault("kafka.capath", "")
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")
	v.SetDefault("kafka.sasl.mechanism", "")
	v.SetDefault("kafka.sasl.protocol", "")
}

func Load() {
	var err error
	v := viper.New()

	readConfigFile(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if clowder.IsClowderEnabled() {
		cfg := clowder.LoadedConfig

		v.Set("database.driver", DriverPostgres)
		v.Set("database.host", cfg.Database.Hostname)
		v.Set("database.port", cfg.Database.Port)
		v.Set("database.user", cfg.Database.Username)
		v.Set("database.password", cfg.Database.Password)
		v.Set("database.name", cfg.Database.Name)

		v.Set("cloudwatch.region", cfg.Logging.Cloudwatch.Region)
		v.Set("cloudwatch.group", cfg.Logging.Cloudwatch.LogGroup)
		v.Set("cloudwatch.secret", cfg.Logging.Cloudwatch.SecretAccessKey)
		v.Set("cloudwatch.key", cfg.Logging.Cloudwatch.AccessKeyId)

		if cfg.InMemoryDb != nil {
			v.Set("clients.redis.host", cfg.InMemoryDb.Hostname)
			v.Set("clients.redis.port", cfg.InMemoryDb.Port)
			if cfg.InMemoryDb.Username != nil {
				v.Set("clients.redis.username", *cfg.InMemoryDb.Username)
			}
			if cfg.InMemoryDb.Password != nil {
				v.Set("clients.redis.password", *cfg.InMemoryDb.Password)
			}
		}

		if len(clowder.KafkaServers) > 0 {
			v.Set("kafka.bootstrap.servers", strings.Join(clowder.KafkaServers, ","))
			addClowderKafkaSettings(v, cfg)
		}

		path, err := cfg.RdsCa()
		if err == nil {
			v.Set("database.ca_cert_path", path)
		} else {
			log.Error().Err(err).Msg("Cannot read RDS CA cert")
		}

		// Read configuration for instrumentation
		v.Set("metrics.path", cfg.MetricsPath)
		v.Set("metrics.port", cfg.MetricsPort)
	}

	err = v.Unmarshal(&LoadedConfig)
	if err != nil {
		panic(err)
	}

	if LoadedConfig.Clients.Redis.Host == "" {
		log.Warn().Msg("Caching is disabled.")
	}
	if LoadedConfig.Clients.Registry.SiteID == "" {
		log.Warn().Msg("No registry site id configured, reconciliation will fail")
	}

	if LoadedConfig.Kafka.Bootstrap.Servers != "" {
		LoadedConfig.NotificationsClient = SetupNotifications(strings.Split(LoadedConfig.Kafka.Bootstrap.Servers, ","), LoadedConfig)
	} else {
		log.Warn().Msg("kafka.bootstrap.servers is empty, notifications are disabled")
	}
}

func addClowderKafkaSettings(v *viper.Viper, cfg *clowder.AppConfig) {
	if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 {
		return
	}
	broker := cfg.Kafka.Brokers[0]
	if broker.Authtype != nil && broker.Sasl != nil {
		v.Set("kafka.sasl.username", *broker.Sasl.Username)
		v.Set("kafka.sasl.password", *broker.Sasl.Password)
		v.Set("kafka.sasl.mechanism", *broker.Sasl.SaslMechanism)
		v.Set("kafka.sasl.protocol", *broker.Sasl.SecurityProtocol)
	}
	if broker.Cacert != nil {
		caPath, err := cfg.KafkaCa(broker)
		if err != nil {
			log.Error().Err(err).Msg("Cannot read kafka CA cert")
		} else {
			v.Set("kafka.capath", caPath)
		}
	}
}

// DBLevel returns the level used for database logs, never more verbose than info
func DBLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(Get().Logging.Level)
	if err != nil || level < zerolog.InfoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func DefaultLogwatchStream() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return DefaultAppName
	}
	return hostname
}

func ProgramString() string {
	return strings.Join(os.Args, " ")
}

func CustomHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message ce.ErrorResponse

	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	if errResp, ok := err.(ce.ErrorResponse); ok {
		code = ce.GetGeneralResponseCode(errResp)
		message = errResp
	} else if he, ok := err.(*echo.HTTPError); ok {
		errResp := ce.NewErrorResponseFromEchoError(he)
		code = errResp.Errors[0].Status
		message = errResp
	} else {
		code = http.StatusInternalServerError
		message = ce.NewErrorResponse(code, "", http.StatusText(http.StatusInternalServerError))
	}

	// Send response
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}
	if err != nil {
		log.Logger.Error().Err(err).Msg("could not write error response")
	}
}
