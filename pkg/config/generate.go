package config

import (
	"bytes"

	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = "# savedata configuration\n# Generated by savedatactl. Remove keys to fall back to the defaults.\n\n"

// Generate renders cfg as a TOML document
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// DefaultContent returns the embedded default configuration file verbatim
func DefaultContent() string {
	return string(defaultConfig)
}
