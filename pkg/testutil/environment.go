// pkg/testutil/environment.go
// DEPENDENCIES: datastore, filesystem, paths
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/savedata/pkg/datastore"
	"github.com/arthur-debert/savedata/pkg/filesystem"
	"github.com/arthur-debert/savedata/pkg/paths"
	"github.com/arthur-debert/savedata/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in a temp directory
)

// TestEnvironment wires a store to its filesystem and paths
type TestEnvironment struct {
	// BaseDir is the storage base; documents live in Paths.DataDir()
	BaseDir string

	// ConfigFile is an empty config file, only set for EnvIsolated
	ConfigFile string

	FS    types.FS
	Paths paths.Paths
	Clock *Clock
	Store *datastore.Store

	Type EnvType

	t *testing.T
}

// Options tunes the store created for the environment
type Options = datastore.Options

// NewTestEnvironment creates an environment with backups enabled and
// unlimited, two-space indentation and a deterministic clock.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()
	return NewTestEnvironmentWithOptions(t, envType, Options{Indent: 2, Backup: true})
}

// NewTestEnvironmentWithOptions creates an environment whose store uses opts.
// A nil opts.Now is replaced by the environment's Clock.
func NewTestEnvironmentWithOptions(t *testing.T, envType EnvType, opts Options) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:     t,
		Type:  envType,
		Clock: NewClock(),
	}

	switch envType {
	case EnvMemoryOnly:
		env.setupMemoryEnvironment()
	case EnvIsolated:
		env.setupIsolatedEnvironment()
	}

	p, err := paths.New(env.BaseDir, "")
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	if opts.Now == nil {
		opts.Now = env.Clock.Now
	}
	env.Store = datastore.New(env.FS, p, opts)
	return env
}

// setupMemoryEnvironment configures a pure in-memory environment
func (env *TestEnvironment) setupMemoryEnvironment() {
	env.BaseDir = "/virtual/base"
	env.FS = filesystem.NewMemory()
}

// setupIsolatedEnvironment configures a real filesystem in a temp directory
// and redirects HOME and the XDG base directories into it.
func (env *TestEnvironment) setupIsolatedEnvironment() {
	tempDir := env.t.TempDir()
	home := filepath.Join(tempDir, "home")

	// Registered before Setenv so it runs after the variables are restored
	env.t.Cleanup(xdg.Reload)

	env.t.Setenv("HOME", home)
	env.t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	env.t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	env.t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	env.t.Setenv("SAVEDATA_LOG_FILE", "false")
	env.t.Setenv("NO_COLOR", "1")
	xdg.Reload()

	env.BaseDir = filepath.Join(tempDir, "base")
	env.ConfigFile = filepath.Join(tempDir, "config.toml")
	env.FS = filesystem.NewOS()

	if err := os.WriteFile(env.ConfigFile, nil, 0644); err != nil {
		env.t.Fatalf("Failed to create config file: %v", err)
	}
}

// DocumentPath returns where filename is stored
func (env *TestEnvironment) DocumentPath(filename string) string {
	return env.Paths.DocumentPath(filename)
}

// WriteDocument writes raw bytes as the stored file for filename,
// bypassing the store. Useful to plant corrupt documents.
func (env *TestEnvironment) WriteDocument(filename string, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(env.Paths.DataDir(), 0755); err != nil {
		env.t.Fatalf("Failed to create data directory: %v", err)
	}
	if err := env.FS.WriteFile(env.DocumentPath(filename), []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", filename, err)
	}
}

// WriteBackup writes raw bytes as a backup file named name
func (env *TestEnvironment) WriteBackup(name string, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(env.Paths.BackupDir(), 0755); err != nil {
		env.t.Fatalf("Failed to create backup directory: %v", err)
	}
	if err := env.FS.WriteFile(env.Paths.BackupPath(name), []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write backup %s: %v", name, err)
	}
}

// ReadDocument returns the raw stored file for filename
func (env *TestEnvironment) ReadDocument(filename string) string {
	env.t.Helper()
	raw, err := env.FS.ReadFile(env.DocumentPath(filename))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", filename, err)
	}
	return string(raw)
}
