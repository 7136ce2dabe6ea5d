package main

import (
	"context"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"animora/internal/catalog"
	"animora/internal/config"
	"animora/internal/library"
	"animora/internal/logging"
	"animora/internal/tracker"
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

// withEngine opens the store, loads the mirror, runs fn, and closes the
// store again. Every command that touches the library goes through here
// so the lock is held only for the duration of one invocation.
func (c *commandContext) withEngine(cmd *cobra.Command, fn func(context.Context, *tracker.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := tracker.New(store, tracker.NewSession(cfg), logger)
	ctx := cmd.Context()
	if err := engine.Load(ctx); err != nil {
		return err
	}
	return fn(ctx, engine)
}

// withBrowser builds the configured catalog provider behind the
// stale-response guard and hands it to fn.
func (c *commandContext) withBrowser(cmd *cobra.Command, fn func(context.Context, *catalog.Browser, *config.Config) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	provider, err := catalog.NewProvider(cfg)
	if err != nil {
		return err
	}
	return fn(cmd.Context(), catalog.NewBrowser(provider, logger), cfg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
