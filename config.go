package siteforge

import (
	"fmt"
	"log/slog"
	"net/url"
)

const (
	DefaultBaseURL = "https://api.siteforge.dev"
)

// Config is the configuration for a Client.
type Config struct {
	// BaseURL of the SiteForge API. Required.
	BaseURL string

	// Logger receives structured events (requests, upload outcomes,
	// purge progress). Defaults to slog.Default().
	Logger *slog.Logger
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoBaseURL
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("siteforge: invalid base url %q", c.BaseURL)
	}

	return nil
}
