package appconfig

import (
	"time"

	"github.com/vetbase/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP server would listen on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9820"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver on how to construct one.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server used for the shared list caches.
	// See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/2"`

	// NatsURL is the URL of the NATS server carrying the audit event stream.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// SentryDSN is the DSN of the Sentry project. Leaving this empty disables Sentry.
	SentryDSN string `split_words:"true"`

	// AttachmentsS3Bucket is the bucket clinical visit attachments are stored in.
	AttachmentsS3Bucket string `split_words:"true" default:"vetbase-attachments"`

	// AttachmentsS3Region is the region of the attachments bucket.
	AttachmentsS3Region string `split_words:"true" default:"us-east-1"`

	// AWSAccessKey is the access key used for the attachments bucket.
	AWSAccessKey string `split_words:"true"`

	// AWSSecretKey is the secret key used for the attachments bucket.
	AWSSecretKey string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// AuditWorkerEnabled is a flag to indicate whether to consume the audit
	// event stream in this process.
	AuditWorkerEnabled bool `split_words:"true" default:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
