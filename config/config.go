package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LINE channel
	Line LineConfig

	// Upstream services
	ICook  ICookConfig
	Market MarketConfig
	Sensor SensorConfig

	// Deployment variant
	Features FeaturesConfig

	Cache CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LineConfig holds the LINE Messaging API channel credentials.
type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
}

// ICookConfig holds the recipe catalog API settings.
type ICookConfig struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	RequestsPerSec float64
}

// MarketConfig holds the market order-lookup API settings.
type MarketConfig struct {
	URL        string
	SigningKey string
	Timeout    time.Duration
}

// SensorConfig holds the tea-field telemetry API settings.
type SensorConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

// FeaturesConfig gates the deployment-variant intents.
// The recipe bot and the tea-field bot share one binary; the variant
// keywords are only recognized when enabled here.
type FeaturesConfig struct {
	News   bool
	Sensor bool
}

type CacheConfig struct {
	KeywordTTL time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LINE channel
	cfg.Line.ChannelSecret = viper.GetString("line.channel_secret")
	cfg.Line.ChannelAccessToken = viper.GetString("line.channel_access_token")
	if secret := viper.GetString("channel_secret"); secret != "" {
		cfg.Line.ChannelSecret = secret
	}
	if token := viper.GetString("channel_access_token"); token != "" {
		cfg.Line.ChannelAccessToken = token
	}

	// iCook catalog
	cfg.ICook.BaseURL = viper.GetString("icook.base_url")
	cfg.ICook.UserAgent = viper.GetString("icook.user_agent")
	cfg.ICook.Timeout = viper.GetDuration("icook.timeout")
	cfg.ICook.RequestsPerSec = viper.GetFloat64("icook.requests_per_sec")

	// Market orders
	cfg.Market.URL = viper.GetString("market.url")
	cfg.Market.SigningKey = viper.GetString("market.signing_key")
	cfg.Market.Timeout = viper.GetDuration("market.timeout")
	if marketURL := viper.GetString("market_api"); marketURL != "" {
		cfg.Market.URL = marketURL
	}
	if key := viper.GetString("key"); key != "" {
		cfg.Market.SigningKey = key
	}

	// Sensor telemetry
	cfg.Sensor.URL = viper.GetString("sensor.url")
	cfg.Sensor.AccessToken = viper.GetString("sensor.access_token")
	cfg.Sensor.Timeout = viper.GetDuration("sensor.timeout")

	// Variant features
	cfg.Features.News = viper.GetBool("features.news")
	cfg.Features.Sensor = viper.GetBool("features.sensor")

	cfg.Cache.KeywordTTL = viper.GetDuration("cache.keyword_ttl")

	if cfg.Line.ChannelSecret == "" || cfg.Line.ChannelAccessToken == "" {
		return nil, fmt.Errorf("LINE channel credentials are required (line.channel_secret, line.channel_access_token)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("icook.base_url", "https://icook.tw")
	viper.SetDefault("icook.user_agent", "tw.icook.chatbot")
	viper.SetDefault("icook.timeout", "5s")
	viper.SetDefault("icook.requests_per_sec", 5.0)

	viper.SetDefault("market.timeout", "5s")
	viper.SetDefault("sensor.timeout", "5s")

	viper.SetDefault("features.news", false)
	viper.SetDefault("features.sensor", false)

	viper.SetDefault("cache.keyword_ttl", "10m")
}
