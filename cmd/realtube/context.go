package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/abelbrown/realtube/internal/catalog"
	"github.com/abelbrown/realtube/internal/config"
	"github.com/abelbrown/realtube/internal/store"
	"github.com/abelbrown/realtube/internal/subscriptions"
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
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			c.configErr = fmt.Errorf("create data dir: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withRecords opens the database for the duration of fn.
func (c *commandContext) withRecords(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	return fn(db)
}

// withSubscriptions opens the subscription set for the duration of fn.
// No session lock is taken.
func (c *commandContext) withSubscriptions(fn func(*subscriptions.Store, *store.Store) error) error {
	return c.withRecords(func(db *store.Store) error {
		return fn(subscriptions.Open(db, nil), db)
	})
}

func (c *commandContext) loadCatalog() (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return openCatalog(cfg)
}

func openCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogFile, err)
	}
	return cat, nil
}
