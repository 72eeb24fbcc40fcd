// Package config loads site settings from defaults, an optional YAML file
// and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/priyanka7411/portfolio/internal/contact"
)

// Config is the complete site configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Resume  ResumeConfig  `yaml:"resume"`
	Session SessionConfig `yaml:"session"`
	SMTP    SMTPConfig    `yaml:"smtp"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // gin mode: debug, release or test
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type ResumeConfig struct {
	Path         string `yaml:"path"`
	DownloadName string `yaml:"download_name"`
}

type SessionConfig struct {
	CookieName    string        `yaml:"cookie_name"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	SecureCookie  bool          `yaml:"secure_cookie"`
}

// SMTPConfig enables mail delivery of contact messages when User and Pass
// are both set.
type SMTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	To   string `yaml:"to"`
}

// Contact converts the settings for the contact package.
func (c SMTPConfig) Contact() contact.SMTPConfig {
	return contact.SMTPConfig{Host: c.Host, Port: c.Port, User: c.User, Pass: c.Pass, To: c.To}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Mode: "release"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Resume: ResumeConfig{
			Path:         "Priyanka Malavade.pdf",
			DownloadName: "Priyanka_Malavade_Resume.pdf",
		},
		Session: SessionConfig{
			CookieName:    "portfolio_session",
			IdleTimeout:   30 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
			To:   "priyasmalavade@gmail.com",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and environment overrides, then
// validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Defaults it is.
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be a number, got %q", v)
		}
		c.Server.Port = port
	}
	str("GIN_MODE", &c.Server.Mode)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("RESUME_PATH", &c.Resume.Path)
	str("SMTP_HOST", &c.SMTP.Host)
	str("SMTP_PORT", &c.SMTP.Port)
	str("SMTP_USER", &c.SMTP.User)
	str("SMTP_PASS", &c.SMTP.Pass)
	str("TO_EMAIL", &c.SMTP.To)

	if v, ok := lookup("SESSION_IDLE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: SESSION_IDLE_TIMEOUT: %w", err)
		}
		c.Session.IdleTimeout = d
	}
	return nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config error: 'server.mode' must be debug, release or test, got %q", c.Server.Mode)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config error: 'log.format' must be text or json, got %q", c.Log.Format)
	}
	if c.Resume.Path == "" {
		return fmt.Errorf("config error: 'resume.path' is required")
	}
	if c.Resume.DownloadName == "" {
		return fmt.Errorf("config error: 'resume.download_name' is required")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("config error: 'session.cookie_name' is required")
	}
	if c.Session.IdleTimeout <= 0 || c.Session.SweepInterval <= 0 {
		return fmt.Errorf("config error: session timeouts must be positive")
	}
	if (c.SMTP.User == "") != (c.SMTP.Pass == "") {
		return fmt.Errorf("config error: 'smtp.user' and 'smtp.pass' must be set together")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
