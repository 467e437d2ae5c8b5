package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"smartboutique/internal/advisor"
	"smartboutique/internal/cart"
	"smartboutique/internal/catalog"
	"smartboutique/internal/checkout"
	"smartboutique/internal/config"
	"smartboutique/internal/logging"
	"smartboutique/internal/services"
	"smartboutique/internal/session"
	"smartboutique/internal/storefront"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// requestContext tags the command's context with a correlation id. Outgoing
// backend and advisor requests carry it as the X-Request-ID header.
func requestContext(cmd *cobra.Command) context.Context {
	return services.WithRequestID(cmd.Context(), uuid.NewString())
}

func (c *commandContext) sessionManager() (*session.Manager, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return session.NewManager(cfg), nil
}

// newStorefront assembles a storefront session wired to the configured
// backend, cart database, and advisor. The returned cleanup closes the cart
// store.
func (c *commandContext) newStorefront() (*storefront.Session, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := catalog.NewClient(cfg.API.BaseURL,
		catalog.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second))
	if err != nil {
		return nil, nil, err
	}

	cartStore, err := cart.OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	sess := storefront.NewSession(storefront.Params{
		Catalog:   catalog.NewStore(client),
		Persister: cartStore,
		Submitter: checkout.NewSubmitter(cfg.API.BaseURL, cfg.CheckoutLockPath(),
			checkout.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second)),
		Advisor: advisor.NewClient(advisor.Config{
			APIKey:         cfg.Advisor.APIKey,
			BaseURL:        cfg.Advisor.BaseURL,
			Model:          cfg.Advisor.Model,
			TimeoutSeconds: cfg.Advisor.TimeoutSeconds,
		}),
		Logger:        logger,
		PaymentMethod: cfg.Storefront.PaymentMethod,
	})

	cleanup := func() {
		_ = cartStore.Close()
	}
	return sess, cleanup, nil
}

// loadedStorefront builds a session and loads the catalog plus the persisted
// cart before handing it to the command.
func (c *commandContext) loadedStorefront(ctx context.Context) (*storefront.Session, func(), error) {
	sess, cleanup, err := c.newStorefront()
	if err != nil {
		return nil, nil, err
	}
	if err := sess.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return sess, cleanup, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
