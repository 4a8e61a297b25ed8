package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.LogFile == "" && c.Paths.ProjectDir == "" {
		return errors.New("paths.log_file or paths.project_dir must be set")
	}
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateLimits() error {
	if c.Limits.MaxTailLines < 1 {
		return fmt.Errorf("limits.max_tail_lines must be at least 1, got %d", c.Limits.MaxTailLines)
	}
	if c.Limits.DefaultTailLines < 1 || c.Limits.DefaultTailLines > c.Limits.MaxTailLines {
		return fmt.Errorf("limits.default_tail_lines must be between 1 and limits.max_tail_lines (%d), got %d",
			c.Limits.MaxTailLines, c.Limits.DefaultTailLines)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
