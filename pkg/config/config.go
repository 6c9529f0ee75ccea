package config

import (
	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/paths"
)

// Config is the effective savedata configuration
type Config struct {
	Storage StorageConfig `koanf:"storage" toml:"storage"`
	Backup  BackupConfig  `koanf:"backup" toml:"backup"`
	Log     LogConfig     `koanf:"log" toml:"log"`
}

// StorageConfig locates and formats stored documents
type StorageConfig struct {
	Dir      string `koanf:"dir" toml:"dir"`
	Subdir   string `koanf:"subdir" toml:"subdir"`
	Filename string `koanf:"filename" toml:"filename"`
	Indent   int    `koanf:"indent" toml:"indent"`
}

// BackupConfig controls backups taken before a document is overwritten
type BackupConfig struct {
	Enabled bool `koanf:"enabled" toml:"enabled"`
	Keep    int  `koanf:"keep" toml:"keep"`
}

// LogConfig controls the log file
type LogConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks values that cannot be expressed by the types alone
func (c *Config) Validate() error {
	if c.Storage.Indent < 0 {
		return errors.Newf(errors.ErrConfigValid, "storage.indent must not be negative, got %d", c.Storage.Indent)
	}
	if c.Backup.Keep < 0 {
		return errors.Newf(errors.ErrConfigValid, "backup.keep must not be negative, got %d", c.Backup.Keep)
	}
	if err := paths.ValidateFilename(c.Storage.Filename); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "storage.filename is invalid")
	}
	return nil
}
