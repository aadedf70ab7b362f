package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kyriakid1s/portfolio/pkg/typewriter"
	"gopkg.in/yaml.v3"
)

// Config is the content of portfolio.yaml.
type Config struct {
	Site       Site               `yaml:"site" json:"site"`
	Server     Server             `yaml:"server" json:"server"`
	SMTP       SMTP               `yaml:"smtp" json:"smtp"`
	RateLimit  RateLimit          `yaml:"rate_limit" json:"rate_limit"`
	Intro      []typewriter.Entry `yaml:"intro" json:"intro"`
	ContentDir string             `yaml:"content_dir" json:"content_dir"`
}

// Site holds the copy rendered on the HTML pages.
type Site struct {
	Name     string    `yaml:"name" json:"name"`
	Title    string    `yaml:"title" json:"title"`
	Tagline  string    `yaml:"tagline" json:"tagline"`
	About    []string  `yaml:"about" json:"about"`
	Projects []Project `yaml:"projects" json:"projects"`
	Links    []Link    `yaml:"links" json:"links"`
}

type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	URL         string   `yaml:"url" json:"url"`
	Tags        []string `yaml:"tags" json:"tags"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

// SMTP configures the contact relay. An empty Host disables it.
type SMTP struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	To       string `yaml:"to" json:"to"`
	TLS      string `yaml:"tls" json:"tls"`
}

// Enabled reports whether a relay is configured.
func (s SMTP) Enabled() bool { return s.Host != "" }

type RateLimit struct {
	Limit    int      `yaml:"limit" json:"limit"`
	Window   Duration `yaml:"window" json:"window"`
	RedisURL string   `yaml:"redis_url" json:"redis_url"`
	Prefix   string   `yaml:"prefix" json:"prefix"`
}

// Duration accepts Go duration strings ("1h", "90s") in YAML and JSON.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1h\": %w", err)
	}
	return d.parse(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Site: Site{
			Name:    "kyriakid1s",
			Title:   "Dimitris Kyriakidis",
			Tagline: "Full Stack Developer",
			About: []string{
				"I build APIs, backend architecture and the databases behind them.",
			},
			Links: []Link{
				{Label: "GitHub", URL: "https://github.com/kyriakid1s"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/dimitriskyriakidiskortsekidis"},
			},
		},
		Server: Server{Addr: ":8080"},
		SMTP:   SMTP{Port: 587, TLS: "mandatory"},
		RateLimit: RateLimit{
			Limit:  5,
			Window: Duration(time.Hour),
			Prefix: "portfolio:",
		},
		ContentDir: "content",
	}
}

// Load reads a configuration file (YAML or JSON, by extension) over the defaults
// and applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if strings.ToLower(filepath.Ext(path)) == ".json" {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Environment variables that override the file.
const (
	EnvEmailUser     = "EMAIL_USER"
	EnvEmailPassword = "EMAIL_PASSWORD"
	EnvEmailTo       = "EMAIL_TO"
	EnvSMTPHost      = "SMTP_HOST"
	EnvSMTPPort      = "SMTP_PORT"
	EnvRedisURL      = "REDIS_URL"
	EnvAddr          = "PORTFOLIO_ADDR"
	EnvContentDir    = "PORTFOLIO_CONTENT_DIR"
)

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvEmailUser, &c.SMTP.Username)
	set(EnvEmailPassword, &c.SMTP.Password)
	set(EnvEmailTo, &c.SMTP.To)
	set(EnvSMTPHost, &c.SMTP.Host)
	set(EnvRedisURL, &c.RateLimit.RedisURL)
	set(EnvAddr, &c.Server.Addr)
	set(EnvContentDir, &c.ContentDir)

	if v, ok := lookup(EnvSMTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSMTPPort, err)
		}
		c.SMTP.Port = port
	}

	// Gmail-style setups only provide the account; it doubles as the sender.
	if c.SMTP.Username != "" && c.SMTP.Host == "" {
		c.SMTP.Host = "smtp.gmail.com"
	}
	return nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.ContentDir == "" {
		errs = append(errs, errors.New("content_dir is required"))
	}
	if c.RateLimit.Limit <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.limit must be positive, got %d", c.RateLimit.Limit))
	}
	if c.RateLimit.Window.Std() <= 0 {
		errs = append(errs, errors.New("rate_limit.window must be positive"))
	}
	if c.SMTP.Enabled() {
		if c.SMTP.Username == "" && c.SMTP.From == "" {
			errs = append(errs, errors.New("smtp.from or smtp.username is required when smtp.host is set"))
		}
		if c.SMTP.Port < 0 || c.SMTP.Port > 65535 {
			errs = append(errs, fmt.Errorf("smtp.port %d is out of range", c.SMTP.Port))
		}
	}
	return errors.Join(errs...)
}
