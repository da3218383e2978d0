package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	// a .env file in the working directory is loaded into the environment
	// before the config is read, so env overrides work in development.
	_ "github.com/joho/godotenv/autoload"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// external services and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS, "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// UploadTimeout replaces RequestTimeout for upload and categorize requests
		UploadTimeout time.Duration `env:"HTTP_UPLOAD_TIMEOUT" env-default:"2m" yaml:"uploadTimeout"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"studyshare" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ApplicationName is reported to the server for every connection
		ApplicationName string `env:"DATABASE_APPLICATION_NAME" env-default:"studyshare" yaml:"applicationName"`
		// StatementTimeout aborts long running statements, zero disables it
		StatementTimeout time.Duration `env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s" yaml:"statementTimeout"`
	} `yaml:"database"`

	// Auth contains session token verification and identity provider settings
	Auth struct {
		// PublicKeyPEM is the PEM encoded RSA public key that signs session tokens (Clerk "JWT public key")
		PublicKeyPEM string `env:"AUTH_PUBLIC_KEY_PEM" env-default:"" yaml:"publicKeyPem"`
		// PrivateKeyPEM signs development tokens with the jwt command. Never set in production.
		PrivateKeyPEM string `env:"AUTH_PRIVATE_KEY_PEM" env-default:"" yaml:"privateKeyPem"`
		// Issuer is matched against the iss claim when set
		Issuer string `env:"AUTH_ISSUER" env-default:"" yaml:"issuer"`
		// ClerkSecretKey enables profile lookups through the Clerk user API
		ClerkSecretKey string `env:"CLERK_SECRET_KEY" env-default:"" yaml:"clerkSecretKey"`
		// AdminUserIDs are subjects that always get the admin role
		AdminUserIDs []string `env:"AUTH_ADMIN_USER_IDS" env-separator:"," yaml:"adminUserIds"`
	} `yaml:"auth"`

	// Storage contains the object storage (Cloudflare R2) settings
	Storage struct {
		AccountID       string `env:"R2_ACCOUNT_ID" env-default:"" yaml:"accountId"`
		// Endpoint overrides the R2 endpoint, e.g. localhost:9000 for a local MinIO
		Endpoint        string `env:"R2_ENDPOINT" env-default:"" yaml:"endpoint"`
		AccessKeyID     string `env:"R2_ACCESS_KEY_ID" env-default:"" yaml:"accessKeyId"`
		SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY" env-default:"" yaml:"secretAccessKey"`
		Bucket          string `env:"R2_BUCKET" env-default:"studyshare" yaml:"bucket"`
		Insecure        bool   `env:"R2_INSECURE" env-default:"false" yaml:"insecure"`
		// PresignTTL is how long download links stay valid
		PresignTTL time.Duration `env:"R2_PRESIGN_TTL" env-default:"15m" yaml:"presignTtl"`
		// MaxUploadBytes caps the total size of the files of one upload
		MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" env-default:"26214400" yaml:"maxUploadBytes"`
	} `yaml:"storage"`

	// Conversion contains the DOCX to PDF settings
	Conversion struct {
		// SinhalaFont and TamilFont are TrueType files, e.g. Noto Sans Sinhala. DOCX text in a
		// script without a font is rejected.
		SinhalaFont string `env:"CONVERT_SINHALA_FONT" env-default:"" yaml:"sinhalaFont"`
		TamilFont   string `env:"CONVERT_TAMIL_FONT" env-default:"" yaml:"tamilFont"`
		// MaxDocxTextBytes caps the uncompressed text of a DOCX upload
		MaxDocxTextBytes int64 `env:"CONVERT_MAX_DOCX_TEXT_BYTES" env-default:"33554432" yaml:"maxDocxTextBytes"`
	} `yaml:"conversion"`

	// LLM contains the OpenRouter settings used for categorization and moderation
	LLM struct {
		BaseURL string `env:"OPENROUTER_BASE_URL" env-default:"https://openrouter.ai/api/v1" yaml:"baseUrl"`
		APIKey  string `env:"OPENROUTER_API_KEY" env-default:"" yaml:"apiKey"`
		// Model reads attached PDFs and images
		Model string `env:"OPENROUTER_MODEL" env-default:"google/gemini-2.0-flash-001" yaml:"model"`
		// TextModel handles text-only prompts such as message moderation
		TextModel string        `env:"OPENROUTER_TEXT_MODEL" env-default:"google/gemini-2.0-flash-001" yaml:"textModel"`
		Timeout   time.Duration `env:"OPENROUTER_TIMEOUT" env-default:"45s" yaml:"timeout"`
		// SamplePages is the number of leading pages sent to the model
		SamplePages int `env:"LLM_SAMPLE_PAGES" env-default:"3" yaml:"samplePages"`
		// MaxTextChars caps the extracted text added to prompts
		MaxTextChars int    `env:"LLM_MAX_TEXT_CHARS" env-default:"4000" yaml:"maxTextChars"`
		SiteURL      string `env:"OPENROUTER_SITE_URL" env-default:"" yaml:"siteUrl"`
		SiteName     string `env:"OPENROUTER_SITE_NAME" env-default:"StudyShare" yaml:"siteName"`
	} `yaml:"llm"`

	// RateLimit bounds AI calls made on behalf of a single user
	RateLimit struct {
		PerMinute float64 `env:"AI_RATE_PER_MINUTE" env-default:"6" yaml:"perMinute"`
		Burst     int     `env:"AI_RATE_BURST" env-default:"3" yaml:"burst"`
	} `yaml:"rateLimit"`

	// Moderation contains the admin dashboard thresholds
	Moderation struct {
		// DownvoteThreshold is the net downvote count that moves a document to the downvoted section
		DownvoteThreshold int `env:"MODERATION_DOWNVOTE_THRESHOLD" env-default:"5" yaml:"downvoteThreshold"`
	} `yaml:"moderation"`

	// Worker contains background job settings
	Worker struct {
		// MaxWorkers is the number of concurrent jobs per queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts bounds retries of a job
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
		// DeletedRetention is how long soft-deleted documents keep their files
		DeletedRetention time.Duration `env:"WORKER_DELETED_RETENTION" env-default:"168h" yaml:"deletedRetention"`
		// PurgeInterval is how often the purge job runs
		PurgeInterval time.Duration `env:"WORKER_PURGE_INTERVAL" env-default:"1h" yaml:"purgeInterval"`
	} `yaml:"worker"`

	// Email contains the notification email settings. Emails are disabled without an API key.
	Email struct {
		ResendAPIKey string `env:"RESEND_API_KEY" env-default:"" yaml:"resendApiKey"`
		From         string `env:"EMAIL_FROM" env-default:"StudyShare <notifications@studyshare.lk>" yaml:"from"`
		// SiteURL is used to build links in emails
		SiteURL string `env:"PUBLIC_SITE_URL" env-default:"http://localhost:3000" yaml:"siteUrl"`
	} `yaml:"email"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
