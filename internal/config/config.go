package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	SourceTMDB     = "tmdb"
	SourceDatabase = "database"
)

type Config struct {
	Server   ServerConfig
	Page     PageConfig
	TMDB     TMDBConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PageConfig drives the server-rendered home page.
type PageConfig struct {
	MoviesAPIURL string `validate:"required,url"`
	TitleSuffix  string
}

type TMDBConfig struct {
	APIKey      string `validate:"required"`
	BaseURL     string `validate:"required,url"`
	Language    string
	HTTPTimeout time.Duration
}

type CatalogConfig struct {
	Source string `validate:"oneof=tmdb database"`
	Limit  int    `validate:"min=1,max=100"`
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

func Load() *Config {
	source := strings.ToLower(getEnvOrDefault("MOVIES_SOURCE", SourceTMDB))

	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "3000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Page: PageConfig{
			MoviesAPIURL: getEnvOrDefault("PAGE_MOVIES_API_URL", "http://localhost:3000/api/movies"),
			TitleSuffix:  getEnvOrDefault("PAGE_TITLE_SUFFIX", "Next Movies"),
		},
		TMDB: TMDBConfig{
			APIKey:      os.Getenv("TMDB_API_KEY"),
			BaseURL:     getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			Language:    getEnvOrDefault("TMDB_LANGUAGE", "en-US"),
			HTTPTimeout: getDurationOrDefault("TMDB_HTTP_TIMEOUT", 30*time.Second),
		},
		Catalog: CatalogConfig{
			Source: source,
			Limit:  getIntOrDefault("CATALOG_LIMIT", 20),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "movie_db"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
	}
}

// UsesDatabase reports whether the movies API is backed by the synced catalog.
func (c *Config) UsesDatabase() bool {
	return c.Catalog.Source == SourceDatabase
}

// DSN returns the PostgreSQL connection string for the catalog database.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.UsesDatabase() && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required when MOVIES_SOURCE=%s", SourceDatabase)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
