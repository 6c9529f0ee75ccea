package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to a config file in a temp dir and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{ConfigFile: writeConfig(t, "")})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Storage.Dir)
	assert.Equal(t, "saved_data", cfg.Storage.Subdir)
	assert.Equal(t, "home-tools-data.json", cfg.Storage.Filename)
	assert.Equal(t, 2, cfg.Storage.Indent)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, 10, cfg.Backup.Keep)
	assert.True(t, cfg.Log.File)
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
dir = "/srv/tools"
filename = "clubs.json"

[backup]
keep = 3
`)

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "/srv/tools", cfg.Storage.Dir)
	assert.Equal(t, "clubs.json", cfg.Storage.Filename)
	assert.Equal(t, 3, cfg.Backup.Keep)
	// untouched keys keep their defaults
	assert.Equal(t, "saved_data", cfg.Storage.Subdir)
	assert.True(t, cfg.Backup.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[storage]
dir = "/from/file"
`)
	t.Setenv("SAVEDATA_STORAGE_DIR", "/from/env")
	t.Setenv("SAVEDATA_BACKUP_ENABLED", "false")
	t.Setenv("SAVEDATA_BACKUP_KEEP", "4")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Storage.Dir)
	assert.False(t, cfg.Backup.Enabled)
	assert.Equal(t, 4, cfg.Backup.Keep)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("SAVEDATA_STORAGE_DIR", "/from/env")

	cfg, err := Load(LoadOptions{
		ConfigFile: writeConfig(t, ""),
		Overrides:  map[string]interface{}{"storage.dir": "/from/flag"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Storage.Dir)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) LoadOptions
		wantCode errors.ErrorCode
	}{
		{
			name: "explicit config file missing",
			setup: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")}
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "malformed toml",
			setup: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeConfig(t, "[storage\ndir=")}
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "negative indent",
			setup: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeConfig(t, "[storage]\nindent = -1\n")}
			},
			wantCode: errors.ErrConfigValid,
		},
		{
			name: "negative keep",
			setup: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeConfig(t, "[backup]\nkeep = -2\n")}
			},
			wantCode: errors.ErrConfigValid,
		},
		{
			name: "filename with separator",
			setup: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeConfig(t, "[storage]\nfilename = \"../x.json\"\n")}
			},
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.setup(t))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("SAVEDATA_STORAGE_DIR", "/ignored")

	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Storage.Dir)
	assert.Equal(t, "home-tools-data.json", cfg.Storage.Filename)
}

func TestGenerate(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Storage.Dir = "/srv/data"
	cfg.Backup.Keep = 0

	out, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# savedata configuration")

	var parsed Config
	require.NoError(t, toml.Unmarshal(out, &parsed))
	assert.Equal(t, *cfg, parsed)

	// The generated file must load back through the regular loader
	path := writeConfig(t, string(out))
	loaded, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", loaded.Storage.Dir)
	assert.Equal(t, 0, loaded.Backup.Keep)
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "[storage]")
	assert.Contains(t, DefaultContent(), `filename = "home-tools-data.json"`)
}
