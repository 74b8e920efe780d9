package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvPrefix is prepended to every flag's environment variable.
const EnvPrefix = "MOMWATCH_"

// Config holds everything the commands need.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// ServerConfig configures the HTTP dashboard.
type ServerConfig struct {
	Addr            string
	Mode            string // gin mode: debug, release, test
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DataConfig locates the dataset files.
type DataConfig struct {
	Dir string
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string
	Format string // text or json
}

// EnvName maps a flag name to its environment variable: data-dir → MOMWATCH_DATA_DIR.
func EnvName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.Replace(flag, "-", "_", -1))
}

// RegisterGlobal binds the flags shared by every command.
func (c *Config) RegisterGlobal(app *kingpin.Application) {
	flag(app.Flag("data-dir", "Directory holding the dataset CSV files."), "data-dir").
		Default(".").StringVar(&c.Data.Dir)
	flag(app.Flag("log-level", "Log level: debug, info, warn, error."), "log-level").
		Default("info").EnumVar(&c.Log.Level, "debug", "info", "warn", "warning", "error")
	flag(app.Flag("log-format", "Log format: text or json."), "log-format").
		Default("text").EnumVar(&c.Log.Format, "text", "json")
}

// RegisterServer binds the serve command's flags.
func (c *Config) RegisterServer(cmd *kingpin.CmdClause) {
	flag(cmd.Flag("addr", "Address the dashboard listens on."), "addr").
		Default(":8501").StringVar(&c.Server.Addr)
	flag(cmd.Flag("gin-mode", "Gin mode: debug, release or test."), "gin-mode").
		Default("release").EnumVar(&c.Server.Mode, "debug", "release", "test")
	flag(cmd.Flag("cors-origin", "Allowed CORS origin for the JSON API (repeatable)."), "cors-origin").
		StringsVar(&c.Server.CORSOrigins)
	flag(cmd.Flag("read-timeout", "HTTP read timeout."), "read-timeout").
		Default("15s").DurationVar(&c.Server.ReadTimeout)
	flag(cmd.Flag("write-timeout", "HTTP write timeout."), "write-timeout").
		Default("15s").DurationVar(&c.Server.WriteTimeout)
	flag(cmd.Flag("idle-timeout", "HTTP idle timeout."), "idle-timeout").
		Default("60s").DurationVar(&c.Server.IdleTimeout)
	flag(cmd.Flag("shutdown-timeout", "Grace period for in-flight requests on shutdown."), "shutdown-timeout").
		Default("30s").DurationVar(&c.Server.ShutdownTimeout)
}

func flag(f *kingpin.FlagClause, name string) *kingpin.FlagClause {
	return f.Envar(EnvName(name))
}

// Validate checks values kingpin cannot.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return errors.New("data directory must not be empty")
	}
	if c.Server.Addr != "" {
		for name, d := range map[string]time.Duration{
			"read-timeout":     c.Server.ReadTimeout,
			"write-timeout":    c.Server.WriteTimeout,
			"idle-timeout":     c.Server.IdleTimeout,
			"shutdown-timeout": c.Server.ShutdownTimeout,
		} {
			if d <= 0 {
				return errors.Errorf("%s must be positive, got %s", name, d)
			}
		}
	}
	for _, origin := range c.Server.CORSOrigins {
		if origin == "" {
			return errors.New("cors origin must not be empty")
		}
	}
	return nil
}
