package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Log        Log
	AdminToken string
	CORS       CORS
}

type Server struct {
	Host        string
	Port        int
	PortRetries int
	GinMode     string
}

type Database struct {
	Driver       string // "postgres" or "sqlite"
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type Log struct {
	Level  string
	Format string
}

type CORS struct {
	AllowedOrigins []string
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 4000)
	v.SetDefault("SERVER_PORT_RETRIES", 5)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Host = v.GetString("SERVER_HOST")
	config.Server.Port = v.GetInt("SERVER_PORT")
	config.Server.PortRetries = v.GetInt("SERVER_PORT_RETRIES")
	config.Server.GinMode = strings.ToLower(v.GetString("GIN_MODE"))

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.URL = v.GetString("DATABASE_URL")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Database.MaxIdleConns = v.GetInt("DATABASE_MAX_IDLE_CONNS")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Format = v.GetString("LOG_FORMAT")

	config.AdminToken = v.GetString("ADMIN_TOKEN")
	config.CORS.AllowedOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("host", config.Server.Host).
		Int("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Bool("admin_token_set", config.AdminToken != "").
		Strs("cors_origins", config.CORS.AllowedOrigins).
		Msg("Config loaded")
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want postgres or sqlite)", c.Database.Driver)
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q (want debug, release or test)", c.Server.GinMode)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	if c.Server.PortRetries < 0 {
		c.Server.PortRetries = 0
	}
	return nil
}

// DSN returns the connection string for the configured driver. DATABASE_URL wins
// over the individual parts; for sqlite it is a file path (or sqlite URI) and
// always gets foreign keys switched on, since cascading deletes depend on them.
func (d Database) DSN() string {
	if d.Driver == "sqlite" {
		name := d.URL
		if name == "" {
			name = d.Name
		}
		if name == "" {
			name = "quiz.db"
		}
		return withSQLiteForeignKeys(name)
	}
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func withSQLiteForeignKeys(dsn string) string {
	path, query, hasQuery := strings.Cut(dsn, "?")
	if hasQuery {
		for _, param := range strings.Split(query, "&") {
			key, _, _ := strings.Cut(param, "=")
			if key == "_foreign_keys" || key == "_fk" {
				return dsn
			}
		}
		return path + "?" + query + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
