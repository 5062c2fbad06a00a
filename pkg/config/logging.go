package config

import (
	"fmt"
	"io"
	"os"
	"time"

	zlogsentry "github.com/archdx/zerolog-sentry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/getsentry/sentry-go"
	cww "github.com/lzap/cloudwatchwriter2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func ConfigureLogging() {
	conf := Get()
	level, err := zerolog.ParseLevel(conf.Logging.Level)
	if err != nil {
		log.Error().Err(err).Msg("")
		level = zerolog.InfoLevel
	}

	writers := []io.Writer{}
	if conf.Logging.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !conf.Logging.Color})
	} else {
		writers = append(writers, os.Stderr)
	}

	if conf.Cloudwatch.Key != "" {
		cloudWatchLogger, err := newCloudWatchLogger(conf.Cloudwatch)
		if err != nil {
			log.Fatal().Err(err).Msg("ERROR setting up cloudwatch")
		}
		writers = append(writers, cloudWatchLogger)
	}

	if conf.Sentry.Dsn != "" {
		sentryWriter, err := newSentryWriter(conf.Sentry)
		if err != nil {
			log.Error().Err(err).Msg("ERROR setting up sentry")
		} else {
			writers = append(writers, sentryWriter)
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &log.Logger
}

// ConfigureSentry initialises the sentry hub used for panic and exception
// capture. It is a no-op without a dsn.
func ConfigureSentry() {
	dsn := Get().Sentry.Dsn
	if dsn == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: DefaultAppName,
	})
	if err != nil {
		log.Error().Err(err).Msg("sentry initialization failed")
	}
}

// FlushSentry waits for buffered sentry events to be sent
func FlushSentry() {
	if Get().Sentry.Dsn != "" {
		sentry.Flush(2 * time.Second)
	}
}

func newSentryWriter(sentryConfig Sentry) (io.Writer, error) {
	w, err := zlogsentry.New(sentryConfig.Dsn,
		zlogsentry.WithLevels(zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("zlogsentry.New: %w", err)
	}
	return w, nil
}

func newCloudWatchLogger(cwConfig Cloudwatch) (io.Writer, error) {
	cloudWatchWriter, err := cww.NewWithClient(newCloudWatchClient(cwConfig), 2000*time.Millisecond, cwConfig.Group, cwConfig.Stream)

	if err != nil {
		return log.Logger, fmt.Errorf("cloudwatchwriter.NewWithClient: %w", err)
	}

	return cloudWatchWriter, nil
}

func newCloudWatchClient(cwConfig Cloudwatch) *cloudwatchlogs.Client {
	cache := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
		cwConfig.Key, cwConfig.Secret, cwConfig.Session))

	return cloudwatchlogs.New(cloudwatchlogs.Options{
		Region:      cwConfig.Region,
		Credentials: cache,
	})
}
