package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeAPI(); err != nil {
		return err
	}
	if err := c.normalizeAdvisor(); err != nil {
		return err
	}
	c.normalizeVoice()
	if err := c.normalizeStorefront(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAPI() error {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultAPIBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultAPITimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeAdvisor() error {
	if c.Advisor.APIKey == "" {
		if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.Advisor.APIKey = value
		}
	}
	c.Advisor.APIKey = strings.TrimSpace(c.Advisor.APIKey)
	c.Advisor.BaseURL = strings.TrimRight(strings.TrimSpace(c.Advisor.BaseURL), "/")
	if c.Advisor.BaseURL == "" {
		c.Advisor.BaseURL = defaultAdvisorBaseURL
	}
	c.Advisor.Model = strings.TrimSpace(c.Advisor.Model)
	if c.Advisor.Model == "" {
		c.Advisor.Model = defaultAdvisorModel
	}
	if c.Advisor.TimeoutSeconds <= 0 {
		c.Advisor.TimeoutSeconds = defaultAdvisorTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeVoice() {
	c.Voice.Language = strings.TrimSpace(c.Voice.Language)
	if c.Voice.Language == "" {
		c.Voice.Language = defaultVoiceLanguage
	}
}

func (c *Config) normalizeStorefront() error {
	if strings.TrimSpace(c.Storefront.DataDir) == "" {
		c.Storefront.DataDir = defaultDataDir
	}
	var err error
	if c.Storefront.DataDir, err = ExpandPath(c.Storefront.DataDir); err != nil {
		return fmt.Errorf("storefront.data_dir: %w", err)
	}
	c.Storefront.PaymentMethod = strings.ToUpper(strings.TrimSpace(c.Storefront.PaymentMethod))
	if c.Storefront.PaymentMethod == "" {
		c.Storefront.PaymentMethod = defaultPaymentMethod
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
