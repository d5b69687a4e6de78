package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Feed     FeedConfig
	Notify   NotifyConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type FeedConfig struct {
	Brokers     []string
	Topic       string
	Group       string
	DedupWindow time.Duration
}

type NotifyConfig struct {
	TTL          time.Duration
	SoundCommand string
	SoundFile    string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "30s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "rompefaja")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "rompefaja")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("FEED_BROKERS", "localhost:9092")
	viper.SetDefault("FEED_TOPIC", "orders.created")
	viper.SetDefault("FEED_GROUP", "rompefaja-engine")
	viper.SetDefault("FEED_DEDUP_WINDOW", "5s")
	viper.SetDefault("NOTIFY_TTL", "5s")
	viper.SetDefault("NOTIFY_SOUND_COMMAND", "aplay")
	viper.SetDefault("NOTIFY_SOUND_FILE", "assets/notification-rompefaja.wav")
	viper.SetDefault("LOG_LEVEL", "info")

	readTimeout, err := time.ParseDuration(viper.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	writeTimeout, err := time.ParseDuration(viper.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	idleTimeout, err := time.ParseDuration(viper.GetString("SERVER_IDLE_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	dedupWindow, err := time.ParseDuration(viper.GetString("FEED_DEDUP_WINDOW"))
	if err != nil {
		return nil, err
	}

	notifyTTL, err := time.ParseDuration(viper.GetString("NOTIFY_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("SERVER_PORT"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Feed: FeedConfig{
			Brokers:     splitBrokers(viper.GetString("FEED_BROKERS")),
			Topic:       viper.GetString("FEED_TOPIC"),
			Group:       viper.GetString("FEED_GROUP"),
			DedupWindow: dedupWindow,
		},
		Notify: NotifyConfig{
			TTL:          notifyTTL,
			SoundCommand: viper.GetString("NOTIFY_SOUND_COMMAND"),
			SoundFile:    viper.GetString("NOTIFY_SOUND_FILE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

// splitBrokers turns a comma-separated broker list into its entries. An env
// value is always a single string, so the split happens here.
func splitBrokers(value string) []string {
	parts := strings.Split(value, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			brokers = append(brokers, part)
		}
	}
	return brokers
}
