package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vilaca/portfolio-stats/internal/api/codeforces"
	"github.com/vilaca/portfolio-stats/internal/api/github"
	"github.com/vilaca/portfolio-stats/internal/api/leetcode"
)

// Config holds application configuration.
// Values come from defaults, then an optional YAML file, then environment variables.
type Config struct {
	Port int `yaml:"port" env:"PORT"`

	// RequestTimeout bounds every outbound statistics request.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`

	GitHub     SourceConfig     `yaml:"github" envPrefix:"GITHUB_"`
	LeetCode   SourceConfig     `yaml:"leetcode" envPrefix:"LEETCODE_"`
	Codeforces CodeforcesConfig `yaml:"codeforces" envPrefix:"CODEFORCES_"`
}

// SourceConfig locates one profile on one statistics API.
type SourceConfig struct {
	URL    string `yaml:"url" env:"URL"`
	Handle string `yaml:"handle" env:"HANDLE"`
}

// CodeforcesConfig adds the recent submission count to SourceConfig.
type CodeforcesConfig struct {
	URL               string `yaml:"url" env:"URL"`
	Handle            string `yaml:"handle" env:"HANDLE"`
	RecentSubmissions int    `yaml:"recent_submissions" env:"RECENT_SUBMISSIONS"`
}

// Default returns the configuration for the portfolio owner's public profiles.
func Default() *Config {
	return &Config{
		Port:           8080,
		RequestTimeout: 10 * time.Second,
		GitHub: SourceConfig{
			URL:    github.DefaultBaseURL,
			Handle: github.DefaultHandle,
		},
		LeetCode: SourceConfig{
			URL:    leetcode.DefaultBaseURL,
			Handle: leetcode.DefaultHandle,
		},
		Codeforces: CodeforcesConfig{
			URL:               codeforces.DefaultBaseURL,
			Handle:            codeforces.DefaultHandle,
			RecentSubmissions: codeforces.DefaultSubmissionCount,
		},
	}
}

// Load loads configuration. path may be empty, in which case no file is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields whose environment variable is set.
// Unset variables leave the default or file value in place.
func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.GitHub.Handle == "" {
		errs = append(errs, errors.New("github handle is required"))
	}
	if c.LeetCode.Handle == "" {
		errs = append(errs, errors.New("leetcode handle is required"))
	}
	if c.Codeforces.Handle == "" {
		errs = append(errs, errors.New("codeforces handle is required"))
	}
	if n := c.Codeforces.RecentSubmissions; n < 5 || n > 10 {
		errs = append(errs, fmt.Errorf("codeforces recent submissions must be between 5 and 10, got %d", n))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
