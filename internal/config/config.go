package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Artifact source kinds.
const (
	SourceFile      = "file"
	SourcePostgres  = "postgres"
	SourceConfigMap = "configmap"
	SourceRedis     = "redis"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	Metrics    MetricsConfig
	Artifact   ArtifactConfig
	Database   DatabaseConfig
	Kubernetes KubernetesConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Environment string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MetricsConfig struct {
	Enabled bool
}

type ArtifactConfig struct {
	Source  string
	Path    string
	Name    string
	Preload bool
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type KubernetesConfig struct {
	InCluster      bool
	KubeConfigPath string
	Namespace      string
	ConfigMap      string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_ENVIRONMENT", "Production")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("ARTIFACT_SOURCE", SourceFile)
	v.SetDefault("ARTIFACT_PATH", "artifacts/model.json")
	v.SetDefault("ARTIFACT_NAME", "real_estate")
	v.SetDefault("ARTIFACT_PRELOAD", true)
	v.SetDefault("ARTIFACT_TIMEOUT", "30s")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "price_prediction")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 1)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("KUBERNETES_IN_CLUSTER", false)
	v.SetDefault("KUBERNETES_KUBECONFIG", "")
	v.SetDefault("KUBERNETES_NAMESPACE", "model-serving")
	v.SetDefault("KUBERNETES_CONFIGMAP", "price-model")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	// Env
	v.AutomaticEnv()

	source := strings.ToLower(v.GetString("ARTIFACT_SOURCE"))
	switch source {
	case SourceFile, SourcePostgres, SourceConfigMap, SourceRedis:
	default:
		return nil, fmt.Errorf("unsupported ARTIFACT_SOURCE %q", source)
	}

	artifactTimeout, err := time.ParseDuration(v.GetString("ARTIFACT_TIMEOUT"))
	if err != nil {
		artifactTimeout = 30 * time.Second
	}
	connLifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		connLifetime = 5 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("SERVER_HOST"),
			Port:        v.GetInt("SERVER_PORT"),
			Environment: v.GetString("SERVER_ENVIRONMENT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Artifact: ArtifactConfig{
			Source:  source,
			Path:    v.GetString("ARTIFACT_PATH"),
			Name:    v.GetString("ARTIFACT_NAME"),
			Preload: v.GetBool("ARTIFACT_PRELOAD"),
			Timeout: artifactTimeout,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		Kubernetes: KubernetesConfig{
			InCluster:      v.GetBool("KUBERNETES_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBERNETES_KUBECONFIG"),
			Namespace:      v.GetString("KUBERNETES_NAMESPACE"),
			ConfigMap:      v.GetString("KUBERNETES_CONFIGMAP"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	return cfg, nil
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
