package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateAdvisor(); err != nil {
		return err
	}
	if err := c.validateStorefront(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateAdvisor() error {
	parsed, err := url.Parse(c.Advisor.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("advisor.base_url must be an absolute URL, got %q", c.Advisor.BaseURL)
	}
	if c.Advisor.Model == "" {
		return errors.New("advisor.model must be set")
	}
	if c.Advisor.TimeoutSeconds <= 0 {
		return errors.New("advisor.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateStorefront() error {
	if c.Storefront.DataDir == "" {
		return errors.New("storefront.data_dir must be set")
	}
	if c.Storefront.PaymentMethod == "" {
		return errors.New("storefront.payment_method must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
