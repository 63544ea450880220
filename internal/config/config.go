// Package config loads runtime settings from the environment.
// A .env file, when present, seeds variables that are not already set.
package config

import (
    "errors"
    "fmt"
    "io/fs"
    "net"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"

    "github.com/tinoosan/hello-api/internal/errs"
)

const (
    DefaultHost            = "0.0.0.0"
    DefaultPort            = 8000
    DefaultShutdownTimeout = 10 * time.Second
)

// Config holds everything the process needs to start serving.
type Config struct {
    Host            string
    Port            int
    LogLevel        string
    LogFormat       string
    MetricsEnabled  bool
    CORSOrigins     []string
    ShutdownTimeout time.Duration
}

// Addr is the listen address for http.Server.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) }

// LoadEnvFile merges variables from path into the process environment.
// Existing variables win. A missing file is not an error.
func LoadEnvFile(path string) error {
    if path == "" {
        return nil
    }
    if err := godotenv.Load(path); err != nil {
        if errors.Is(err, fs.ErrNotExist) {
            return nil
        }
        return fmt.Errorf("load %s: %w", path, err)
    }
    return nil
}

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
    return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to resolve variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
    get := func(key, fallback string) string {
        if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
            return strings.TrimSpace(v)
        }
        return fallback
    }

    cfg := Config{
        Host:            get("HOST", DefaultHost),
        LogLevel:        strings.ToLower(get("LOG_LEVEL", "info")),
        LogFormat:       strings.ToLower(get("LOG_FORMAT", "json")),
        CORSOrigins:     splitList(get("CORS_ALLOWED_ORIGINS", "*")),
        ShutdownTimeout: DefaultShutdownTimeout,
    }

    port, err := strconv.Atoi(get("PORT", strconv.Itoa(DefaultPort)))
    if err != nil {
        return Config{}, fmt.Errorf("PORT: %w", errs.ErrInvalid)
    }
    cfg.Port = port

    metrics, err := strconv.ParseBool(get("METRICS_ENABLED", "true"))
    if err != nil {
        return Config{}, fmt.Errorf("METRICS_ENABLED: %w", errs.ErrInvalid)
    }
    cfg.MetricsEnabled = metrics

    if raw := get("SHUTDOWN_TIMEOUT", ""); raw != "" {
        d, err := time.ParseDuration(raw)
        if err != nil {
            return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", errs.ErrInvalid)
        }
        cfg.ShutdownTimeout = d
    }

    if err := cfg.Validate(); err != nil {
        return Config{}, err
    }
    return cfg, nil
}

// Validate checks ranges and enumerations. Errors wrap errs.ErrInvalid.
func (c Config) Validate() error {
    if c.Port < 1 || c.Port > 65535 {
        return fmt.Errorf("port %d out of range: %w", c.Port, errs.ErrInvalid)
    }
    switch c.LogLevel {
    case "debug", "info", "warn", "warning", "error", "err":
    default:
        return fmt.Errorf("log level %q: %w", c.LogLevel, errs.ErrInvalid)
    }
    switch c.LogFormat {
    case "json", "text":
    default:
        return fmt.Errorf("log format %q: %w", c.LogFormat, errs.ErrInvalid)
    }
    if c.ShutdownTimeout <= 0 {
        return fmt.Errorf("shutdown timeout %s: %w", c.ShutdownTimeout, errs.ErrInvalid)
    }
    return nil
}

func splitList(s string) []string {
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
