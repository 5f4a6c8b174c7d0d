package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"scoutbase/internal/config"
	"scoutbase/internal/logging"
	"scoutbase/internal/review"
	"scoutbase/internal/store"
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

// session bundles everything a command needs for one run against the
// database.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *store.Store
	manager *review.Manager
}

// openSession loads config, builds the logger, takes the database session
// lock, and loads the tables. Callers must invoke close when done.
func (c *commandContext) openSession(ctx context.Context) (*session, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	manager, err := review.Open(ctx, cfg, st, logger)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	s := &session{cfg: cfg, log: logger, store: st, manager: manager}
	return s, func() { _ = st.Close() }, nil
}
