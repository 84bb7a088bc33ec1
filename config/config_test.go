package config

import (
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Fatalf("expected default port 4000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("expected default driver postgres, got %q", cfg.Database.Driver)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected no admin token by default")
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_NAME", "/tmp/quiz-test.db")
	t.Setenv("ADMIN_TOKEN", "s3cret")
	t.Setenv("CORS_ORIGINS", " http://a.example , https://*.vercel.app ,, ")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected driver to be lower-cased, got %q", cfg.Database.Driver)
	}
	if got := cfg.Database.DSN(); got != "/tmp/quiz-test.db?_foreign_keys=on" {
		t.Fatalf("unexpected sqlite DSN %q", got)
	}
	if cfg.AdminToken != "s3cret" {
		t.Fatalf("unexpected admin token %q", cfg.AdminToken)
	}
	want := []string{"http://a.example", "https://*.vercel.app"}
	if strings.Join(cfg.CORS.AllowedOrigins, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestNewConfigRejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")

	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{
		Driver:   "postgres",
		Host:     "db",
		Port:     "5432",
		User:     "quiz",
		Password: "p@ss",
		Name:     "quizzes",
		SSLMode:  "require",
	}
	got := d.DSN()
	if got != "postgres://quiz:p%40ss@db:5432/quizzes?sslmode=require" {
		t.Fatalf("unexpected DSN %q", got)
	}

	d.URL = "postgres://override"
	if d.DSN() != "postgres://override" {
		t.Fatalf("DATABASE_URL should take precedence, got %q", d.DSN())
	}
}

func TestDatabaseDSNSQLiteAlwaysEnablesForeignKeys(t *testing.T) {
	cases := []struct {
		name string
		db   Database
		want string
	}{
		{"default file", Database{Driver: "sqlite"}, "quiz.db?_foreign_keys=on"},
		{"url path", Database{Driver: "sqlite", URL: "/data/quiz.db", Name: "ignored.db"}, "/data/quiz.db?_foreign_keys=on"},
		{"url with params", Database{Driver: "sqlite", URL: "file:quiz.db?cache=shared"}, "file:quiz.db?cache=shared&_foreign_keys=on"},
		{"explicit setting kept", Database{Driver: "sqlite", URL: "quiz.db?_foreign_keys=off"}, "quiz.db?_foreign_keys=off"},
		{"short alias kept", Database{Driver: "sqlite", URL: "quiz.db?_fk=1"}, "quiz.db?_fk=1"},
	}
	for _, tc := range cases {
		if got := tc.db.DSN(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNewConfigRejectsUnknownGinMode(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GIN_MODE", "production")

	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for unknown gin mode")
	}
}
