package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string   `env:"LISTEN_ADDR"`
	Port              string   `env:"PORT" envDefault:"8080"`
	DatabasePath      string   `env:"DATABASE_PATH" envDefault:"cloudmlm.db"`
	SessionSecret     string   `env:"SESSION_SECRET" envDefault:"cloudmlm-dev-secret"`
	GinMode           string   `env:"GIN_MODE" envDefault:"release"`
	LogLevel          string   `env:"LOG_LEVEL" envDefault:"info"`
	SiteName          string   `env:"SITE_NAME" envDefault:"Cloud MLM Software"`
	SiteBaseURL       string   `env:"SITE_BASE_URL" envDefault:"https://cloudmlmsoftware.com"`
	DefaultLocale     string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	SupportedLocales  []string `env:"SUPPORTED_LOCALES" envSeparator:"," envDefault:"en,es,de,it,pt,zh,ar"`
	SuperRootUserName string   `env:"SUPER_ROOT_USER_NAME"`
	SuperRootPassword string   `env:"SUPER_ROOT_PASSWORD"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *AppConfig) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}

	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}

	c.DatabasePath = strings.TrimSpace(c.DatabasePath)
	if c.DatabasePath == "" {
		c.DatabasePath = "cloudmlm.db"
	}

	c.SessionSecret = strings.TrimSpace(c.SessionSecret)
	if c.SessionSecret == "" {
		c.SessionSecret = "cloudmlm-dev-secret"
	}

	c.GinMode = strings.TrimSpace(c.GinMode)
	if c.GinMode == "" {
		c.GinMode = "release"
	}

	c.SiteBaseURL = strings.TrimRight(strings.TrimSpace(c.SiteBaseURL), "/")
	c.SiteName = strings.TrimSpace(c.SiteName)
	c.SuperRootUserName = strings.TrimSpace(c.SuperRootUserName)
	c.SuperRootPassword = strings.TrimSpace(c.SuperRootPassword)

	locales := make([]string, 0, len(c.SupportedLocales))
	seen := make(map[string]struct{}, len(c.SupportedLocales))
	for _, raw := range c.SupportedLocales {
		code := strings.ToLower(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		locales = append(locales, code)
	}
	if len(locales) == 0 {
		locales = []string{"en"}
	}
	c.SupportedLocales = locales

	c.DefaultLocale = strings.ToLower(strings.TrimSpace(c.DefaultLocale))
	if _, ok := seen[c.DefaultLocale]; !ok {
		c.DefaultLocale = locales[0]
	}
}
