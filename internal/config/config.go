package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/cardwise/perktrack/internal/domain/benefits"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	DB      DBConfig      `toml:"db"`
	Web     WebConfig     `toml:"web"`
	Engine  EngineConfig  `toml:"engine"`
	Tracing TracingConfig `toml:"tracing"`
	Spaces  SpacesConfig  `toml:"spaces"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host         string   `toml:"host"`
	Port         int      `toml:"port"`
	User         string   `toml:"user"`
	Password     string   `toml:"password"`
	Database     string   `toml:"database"`
	SSLMode      string   `toml:"ssl_mode"`
	PoolSize     int      `toml:"pool_size"`
	MaxIdleConns int      `toml:"max_idle_conns"`
	MaxLifetime  int      `toml:"max_lifetime"`
	SlowQuery    Duration `toml:"slow_query"`
	QueryTimeout Duration `toml:"query_timeout"`
}

type WebConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowOrigins   []string `toml:"allow_origins"`
	RequestTimeout Duration `toml:"request_timeout"`

	// LedgerRateLimit caps redeem and unredeem calls per user per minute.
	// A negative value disables the limit.
	LedgerRateLimit int `toml:"ledger_rate_limit"`
}

func (w WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

type EngineConfig struct {
	AutoRedeemMode   string   `toml:"auto_redeem_mode"`
	CatalogCacheSize int      `toml:"catalog_cache_size"`
	CatalogCacheTTL  Duration `toml:"catalog_cache_ttl"`
}

type TracingConfig struct {
	Enabled        bool   `toml:"enabled"`
	ServiceName    string `toml:"service_name"`
	JaegerEndpoint string `toml:"jaeger_endpoint"`
}

type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	Endpoint string `toml:"endpoint"`
	Root     string `toml:"root"`
}

func (s SpacesConfig) Configured() bool {
	return s.Key != "" && s.Secret != "" && s.Bucket != ""
}

// Duration reads values like "5m" or "750ms" from TOML strings.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (c *Config) applyDefaults() {
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.DB.Host == "" {
		c.DB.Host = "localhost"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.DB.PoolSize == 0 {
		c.DB.PoolSize = 10
	}
	if c.DB.SlowQuery.Duration == 0 {
		c.DB.SlowQuery.Duration = 250 * time.Millisecond
	}
	if c.DB.QueryTimeout.Duration == 0 {
		c.DB.QueryTimeout.Duration = 10 * time.Second
	}

	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	if len(c.Web.AllowOrigins) == 0 {
		c.Web.AllowOrigins = []string{"*"}
	}
	if c.Web.RequestTimeout.Duration == 0 {
		c.Web.RequestTimeout.Duration = 15 * time.Second
	}
	if c.Web.LedgerRateLimit == 0 {
		c.Web.LedgerRateLimit = 120
	}

	if c.Engine.AutoRedeemMode == "" {
		c.Engine.AutoRedeemMode = string(benefits.AutoRedeemEager)
	}
	if c.Engine.CatalogCacheSize == 0 {
		c.Engine.CatalogCacheSize = 256
	}
	if c.Engine.CatalogCacheTTL.Duration == 0 {
		c.Engine.CatalogCacheTTL.Duration = 5 * time.Minute
	}

	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "perktrack"
	}
	if c.Tracing.JaegerEndpoint == "" {
		c.Tracing.JaegerEndpoint = "http://localhost:14268/api/traces"
	}

	if c.Spaces.Region == "" {
		c.Spaces.Region = "us-east-1"
	}
	if c.Spaces.Root == "" {
		c.Spaces.Root = "reports"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.DB.User == "" {
		errs = append(errs, errors.New("db.user is required"))
	}
	if c.DB.Database == "" {
		errs = append(errs, errors.New("db.database is required"))
	}
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		errs = append(errs, fmt.Errorf("db.port %d is out of range", c.DB.Port))
	}
	if c.Web.Port < 1 || c.Web.Port > 65535 {
		errs = append(errs, fmt.Errorf("web.port %d is out of range", c.Web.Port))
	}
	if _, err := benefits.ParseAutoRedeemMode(c.Engine.AutoRedeemMode); err != nil {
		errs = append(errs, fmt.Errorf("engine.auto_redeem_mode: %w", err))
	}
	if c.Engine.CatalogCacheSize < 0 {
		errs = append(errs, errors.New("engine.catalog_cache_size must not be negative"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not text or json", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
