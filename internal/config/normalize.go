package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeStorage(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeClient()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeStorage() error {
	if strings.TrimSpace(c.Storage.Database) == "" {
		c.Storage.Database = defaultDatabase
	}
	var err error
	if c.Storage.Database, err = expandPath(c.Storage.Database); err != nil {
		return fmt.Errorf("storage.database: %w", err)
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
	c.Server.Token = strings.TrimSpace(c.Server.Token)
}

func (c *Config) normalizeClient() {
	if value, ok := os.LookupEnv("SHOWBOAT_URL"); ok && strings.TrimSpace(value) != "" {
		c.Client.RemoteURL = value
	}
	c.Client.RemoteURL = strings.TrimSpace(c.Client.RemoteURL)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
