package main

import (
	"strings"
	"sync"

	"showboat/internal/chunk"
	"showboat/internal/client"
	"showboat/internal/config"
)

type commandContext struct {
	configFlag *string
	urlFlag    *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, urlFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		urlFlag:    urlFlag,
	}
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
		c.config = cfg
	})
	return c.config, c.configErr
}

// remoteURL resolves the receive endpoint: flag, then SHOWBOAT_URL (already
// folded into config during normalization), then the config file value.
func (c *commandContext) remoteURL() (string, error) {
	if c.urlFlag != nil && strings.TrimSpace(*c.urlFlag) != "" {
		return strings.TrimSpace(*c.urlFlag), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Client.RemoteURL, nil
}

func (c *commandContext) newClient() (*client.Client, error) {
	remote, err := c.remoteURL()
	if err != nil {
		return nil, err
	}
	return client.New(remote)
}

// openStore opens the local chunk database for admin commands. Callers own
// the returned store and must close it.
func (c *commandContext) openStore() (*chunk.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return chunk.Open(cfg)
}
