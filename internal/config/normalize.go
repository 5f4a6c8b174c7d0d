package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScouting()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Database) == "" {
		c.Paths.Database = defaultDatabase
	}
	if c.Paths.Database, err = expandPath(c.Paths.Database); err != nil {
		return fmt.Errorf("paths.database: %w", err)
	}
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		c.Paths.SourceDir = defaultSourceDir
	}
	if c.Paths.SourceDir, err = expandPath(c.Paths.SourceDir); err != nil {
		return fmt.Errorf("paths.source_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.BoardDir) == "" {
		c.Paths.BoardDir = defaultBoardDir
	}
	if c.Paths.BoardDir, err = expandPath(c.Paths.BoardDir); err != nil {
		return fmt.Errorf("paths.board_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScouting() {
	if c.Scouting.DefaultBoard == "" {
		if value, ok := os.LookupEnv("SCOUTBASE_DEFAULT_BOARD"); ok {
			c.Scouting.DefaultBoard = value
		}
	}
	c.Scouting.DefaultBoard = strings.TrimSpace(c.Scouting.DefaultBoard)
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
