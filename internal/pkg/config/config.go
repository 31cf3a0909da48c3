package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Idempotency IdempotencyConfig
	Sweep       SweepConfig
	Exit        ExitConfig
	Conflict    ConflictConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// Bounds each statement so a stuck sweep or lock wait cannot pin a connection.
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Idempotency-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Guatemala"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string        `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"12h"`
	Issuer              string        `envconfig:"JWT_ISSUER" default:"fieldsync-auth"`
	Leeway              time.Duration `envconfig:"JWT_LEEWAY" default:"2m"`
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type SweepConfig struct {
	Enabled  bool          `envconfig:"SWEEP_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"10m"`
}

type ExitConfig struct {
	AuthDeadline time.Duration `envconfig:"EXIT_AUTH_DEADLINE" default:"5m"`
}

// The two windows are policy inputs; neither blocks a resolution.
type ConflictConfig struct {
	CreatorEditWindow time.Duration `envconfig:"CONFLICT_CREATOR_EDIT_WINDOW" default:"24h"`
	CrewEditWindow    time.Duration `envconfig:"CONFLICT_CREW_EDIT_WINDOW" default:"12h"`
	MineLimit         int           `envconfig:"CONFLICT_MINE_LIMIT" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects windows that would make the sync rules meaningless.
func (c Config) Validate() error {
	switch {
	case c.Exit.AuthDeadline <= 0:
		return fmt.Errorf("EXIT_AUTH_DEADLINE must be positive, got %s", c.Exit.AuthDeadline)
	case c.Idempotency.TTL <= 0:
		return fmt.Errorf("IDEMPOTENCY_TTL must be positive, got %s", c.Idempotency.TTL)
	case c.Sweep.Enabled && c.Sweep.Interval <= 0:
		return fmt.Errorf("SWEEP_INTERVAL must be positive when sweeping is enabled, got %s", c.Sweep.Interval)
	case c.Conflict.CreatorEditWindow < 0 || c.Conflict.CrewEditWindow < 0:
		return fmt.Errorf("conflict edit windows must not be negative")
	case c.Conflict.MineLimit <= 0:
		return fmt.Errorf("CONFLICT_MINE_LIMIT must be positive, got %d", c.Conflict.MineLimit)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-fieldsync",
			AccessTokenDuration: "1h",
			Issuer:              "fieldsync-auth",
			Leeway:              30 * time.Second,
		},
		Idempotency: IdempotencyConfig{
			TTL: 24 * time.Hour,
		},
		Sweep: SweepConfig{
			Enabled:  false,
			Interval: time.Minute,
		},
		Exit: ExitConfig{
			AuthDeadline: 5 * time.Minute,
		},
		Conflict: ConflictConfig{
			CreatorEditWindow: 24 * time.Hour,
			CrewEditWindow:    12 * time.Hour,
			MineLimit:         20,
		},
	}
}
