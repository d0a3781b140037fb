package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"bikeaccessories/internal/domain"
)

type Config struct {
	Port      string
	StoreDSN  string
	SeedFile  string
	LogFile   string
	RateLimit int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "bikeaccessories.db"
	} // sqlite file in project root; "memory" keeps nothing across restarts
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./bikeaccessories.log"
	}
	rate := 60
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT")); err == nil && v > 0 {
		rate = v
	}

	cfg := Config{
		Port:      port,
		StoreDSN:  dsn,
		SeedFile:  os.Getenv("SEED_FILE"),
		LogFile:   logFile,
		RateLimit: rate,
	}
	return cfg
}

// Log prints the effective settings. Call it once flags are parsed.
func (c Config) Log() {
	log.Printf("[config] PORT=%s STORE_DSN=%s SEED_FILE=%s LOG_FILE=%s RATE_LIMIT=%d",
		c.Port, redact(c.StoreDSN), c.SeedFile, c.LogFile, c.RateLimit)
}

// BindFlags registers command-line overrides on fs, defaulting to the
// values already in c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "HTTP listen port")
	fs.StringVar(&c.StoreDSN, "store", c.StoreDSN, `storage backend: sqlite file, postgres:// URL or "memory"`)
	fs.StringVar(&c.SeedFile, "seed", c.SeedFile, "YAML file with the default inventory and places")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, `log file, in addition to stdout ("" disables)`)
	fs.IntVar(&c.RateLimit, "rate-limit", c.RateLimit, "requests per minute per client")
}

// redact hides the password of a URL-style DSN.
func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}

// Seed replaces the built-in default inventory and places. A nil field
// keeps the built-in collection.
type Seed struct {
	Inventory []domain.InventoryItem `yaml:"inventory"`
	Places    []domain.Place         `yaml:"places"`
}

// LoadSeed reads a YAML seed file. An empty path yields an empty Seed.
func LoadSeed(path string) (Seed, error) {
	var s Seed
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read seed: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return s, nil
}
