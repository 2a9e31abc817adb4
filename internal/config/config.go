package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Version is set during build via ldflags
var Version = "dev"

type Config struct {
	App         AppConfig         `mapstructure:"app"`
	ESignatures ESignaturesConfig `mapstructure:"esignatures"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

type ESignaturesConfig struct {
	APISecret string        `mapstructure:"api_secret"`
	BaseURL   string        `mapstructure:"base_url"` // Empty means https://{secret}:@esignatures.io/api/
	Timeout   time.Duration `mapstructure:"timeout"`  // Seconds; 0 keeps the net/http default (none)
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	Password         string        `mapstructure:"password"`
	DB               int           `mapstructure:"db"`
	TemplateCacheTTL time.Duration `mapstructure:"template_cache_ttl"` // Seconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "esignatures-gateway")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.env", "production")
	v.SetDefault("esignatures.api_secret", "")
	v.SetDefault("esignatures.base_url", "")
	v.SetDefault("esignatures.timeout", 30)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.template_cache_ttl", 300)
	v.SetDefault("logging.level", "info")
	v.SetDefault("metrics.path", "/metrics")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Convert second-based values to durations
	cfg.ESignatures.Timeout = cfg.ESignatures.Timeout * time.Second
	cfg.Redis.TemplateCacheTTL = cfg.Redis.TemplateCacheTTL * time.Second

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
