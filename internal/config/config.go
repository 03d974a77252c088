package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2330
	defaultEnv        = "development"
	defaultContentDir = "content/posts"
	defaultLocale     = "ko"
	defaultSiteTitle  = "hanlog"
	defaultSiteURL    = "http://localhost:3000"
)

func defaultLocales() []string { return []string{"ko", "en"} }

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	Content        ContentConfig `yaml:"content"`
	Cache          CacheConfig   `yaml:"cache"`
	Site           SiteConfig    `yaml:"site"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	LogLevel       string        `yaml:"log_level"`
}

// SiteConfig describes the public front-end the feeds and sitemap point at.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// ContentConfig locates the content directory and enumerates its locales.
type ContentConfig struct {
	Dir           string   `yaml:"dir"`
	Locales       []string `yaml:"locales"`
	DefaultLocale string   `yaml:"default_locale"`
}

// CacheConfig tunes the content snapshot cache.
type CacheConfig struct {
	Enable bool `yaml:"enable"`
	Watch  bool `yaml:"watch"`
}

type rawAppConfig struct {
	Port               int              `yaml:"port"`
	Env                string           `yaml:"env"`
	NodeEnv            string           `yaml:"node_env"`
	Content            rawContentConfig `yaml:"content"`
	ContentDir         string           `yaml:"content_dir"`
	PostsDir           string           `yaml:"posts_dir"`
	Locales            []string         `yaml:"locales"`
	DefaultLocale      string           `yaml:"default_locale"`
	Cache              rawCacheConfig   `yaml:"cache"`
	Site               rawSiteConfig    `yaml:"site"`
	SiteURL            string           `yaml:"site_url"`
	AllowedOrigins     []string         `yaml:"allowed_origins"`
	CORSAllowedOrigins []string         `yaml:"cors_allowed_origins"`
	LogLevel           string           `yaml:"log_level"`
}

type rawContentConfig struct {
	Dir           string   `yaml:"dir"`
	Locales       []string `yaml:"locales"`
	DefaultLocale string   `yaml:"default_locale"`
}

type rawCacheConfig struct {
	Enable *bool `yaml:"enable"`
	Watch  *bool `yaml:"watch"`
}

type rawSiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Load reads and validates the YAML config file. A missing file is not an
// error: the defaults describe a runnable development setup.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && configPath == "" {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if len(cfg.Content.Locales) == 0 {
		return nil, fmt.Errorf("empty content.locales in %q", path)
	}
	if !containsLocale(cfg.Content.Locales, cfg.Content.DefaultLocale) {
		return nil, fmt.Errorf("default locale %q not in content.locales %v in %q",
			cfg.Content.DefaultLocale, cfg.Content.Locales, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Content: ContentConfig{
			Dir:           defaultContentDir,
			Locales:       defaultLocales(),
			DefaultLocale: defaultLocale,
		},
		Cache: CacheConfig{
			Enable: true,
			Watch:  false,
		},
		Site: SiteConfig{
			Title: defaultSiteTitle,
			URL:   defaultSiteURL,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}

	if v := strings.TrimSpace(raw.Content.Dir); v != "" {
		cfg.Content.Dir = v
	}
	if v := strings.TrimSpace(raw.ContentDir); v != "" {
		cfg.Content.Dir = v
	}
	if v := strings.TrimSpace(raw.PostsDir); v != "" {
		cfg.Content.Dir = v
	}

	switch {
	case raw.Content.Locales != nil:
		cfg.Content.Locales = normalizeLocales(raw.Content.Locales)
	case raw.Locales != nil:
		cfg.Content.Locales = normalizeLocales(raw.Locales)
	}
	if v := strings.TrimSpace(raw.Content.DefaultLocale); v != "" {
		cfg.Content.DefaultLocale = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.DefaultLocale); v != "" {
		cfg.Content.DefaultLocale = strings.ToLower(v)
	}

	if raw.Cache.Enable != nil {
		cfg.Cache.Enable = *raw.Cache.Enable
	}
	if raw.Cache.Watch != nil {
		cfg.Cache.Watch = *raw.Cache.Watch
	}

	if v := strings.TrimSpace(raw.Site.Title); v != "" {
		cfg.Site.Title = v
	}
	if v := strings.TrimSpace(raw.Site.Description); v != "" {
		cfg.Site.Description = v
	}
	if v := strings.TrimSpace(raw.Site.URL); v != "" {
		cfg.Site.URL = v
	}
	if v := strings.TrimSpace(raw.SiteURL); v != "" {
		cfg.Site.URL = v
	}
	cfg.Site.URL = strings.TrimRight(cfg.Site.URL, "/")

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	cfg.Env = normalizeEnv(cfg.Env)
}

func normalizeLocales(locales []string) []string {
	out := make([]string, 0, len(locales))
	seen := map[string]struct{}{}
	for _, l := range locales {
		code := strings.ToLower(strings.TrimSpace(l))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

func containsLocale(locales []string, code string) bool {
	for _, l := range locales {
		if l == code {
			return true
		}
	}
	return false
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
