package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/savedata/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for savedata under each XDG root
	AppDirName = "savedata"

	// DefaultSubdir is the subdirectory holding stored documents
	DefaultSubdir = "saved_data"

	// BackupDirName is the subdirectory of the data dir holding backups
	BackupDirName = "backups"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "savedata.log"
)

// Paths provides centralized path management for savedata
type Paths interface {
	BaseDir() string
	DataDir() string
	BackupDir() string
	DocumentPath(filename string) string
	BackupPath(name string) string
}

type paths struct {
	baseDir string
	dataDir string
}

// New creates a Paths rooted at baseDir/subdir. An empty baseDir falls back
// to $XDG_DATA_HOME/savedata and an empty subdir to DefaultSubdir.
func New(baseDir, subdir string) (Paths, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	baseDir = expandHome(baseDir)

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", baseDir)
	}

	if subdir == "" {
		subdir = DefaultSubdir
	}
	if filepath.IsAbs(subdir) {
		return nil, errors.Newf(errors.ErrInvalidInput, "subdirectory must be relative: %s", subdir)
	}
	cleaned := filepath.Clean(subdir)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return nil, errors.Newf(errors.ErrInvalidInput, "subdirectory escapes base directory: %s", subdir)
	}

	return &paths{
		baseDir: absBase,
		dataDir: filepath.Join(absBase, cleaned),
	}, nil
}

// BaseDir returns the resolved base directory
func (p *paths) BaseDir() string {
	return p.baseDir
}

// DataDir returns the directory stored documents live in
func (p *paths) DataDir() string {
	return p.dataDir
}

// BackupDir returns the directory backups live in
func (p *paths) BackupDir() string {
	return filepath.Join(p.dataDir, BackupDirName)
}

// DocumentPath returns the full path for a dataset file.
// The filename is expected to have passed ValidateFilename.
func (p *paths) DocumentPath(filename string) string {
	return filepath.Join(p.dataDir, filename)
}

// BackupPath returns the full path for a backup file
func (p *paths) BackupPath(name string) string {
	return filepath.Join(p.BackupDir(), name)
}

// DefaultBaseDir returns $XDG_DATA_HOME/savedata
func DefaultBaseDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ConfigFilePath returns $XDG_CONFIG_HOME/savedata/config.toml
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// LogFilePath returns $XDG_STATE_HOME/savedata/savedata.log
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
