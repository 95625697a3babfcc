package config

import (
	"cmp"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultDBHost = "localhost"
	defaultDBPort = "5432"
	defaultDBName = "bookshelf"
	defaultDBUser = "postgres"
	defaultPort   = 8080
)

// Config is the fully resolved process configuration. It is loaded once in
// main and passed down; nothing below cmd reads the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	ServerPort int
	Debug      bool
}

func Load() (Config, error) {
	cfg := Config{
		DBHost:     cmp.Or(os.Getenv("DB_HOST"), defaultDBHost),
		DBPort:     cmp.Or(os.Getenv("DB_PORT"), defaultDBPort),
		DBName:     cmp.Or(os.Getenv("DB_NAME"), defaultDBName),
		DBUser:     cmp.Or(os.Getenv("DB_USER"), defaultDBUser),
		DBPassword: os.Getenv("DB_PASSWORD"),
		ServerPort: defaultPort,
		Debug:      os.Getenv("DEBUG") == "1",
	}
	if p := os.Getenv("SERVER_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_PORT %q: %w", p, err)
		}
		cfg.ServerPort = port
	}
	return cfg, nil
}

// DSN builds a connection string for the configured server. An empty dbname
// targets the configured database; provisioning passes "postgres" to reach
// the maintenance database before the target one exists.
func (c Config) DSN(dbname string) string {
	if dbname == "" {
		dbname = c.DBName
	}
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		c.DBHost, c.DBPort, dbname, c.DBUser, c.DBPassword)
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}
