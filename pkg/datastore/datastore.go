package datastore

import (
	"encoding/json"
	"time"

	"github.com/arthur-debert/savedata/pkg/types"
)

// DataStore manages savedata's documents on the filesystem.
type DataStore interface {
	// Save writes data as the new contents of filename.
	Save(data json.RawMessage, filename string) error

	// Load returns the data last saved to filename.
	Load(filename string) (json.RawMessage, error)

	// Info reports the on-disk state of filename.
	Info(filename string) (types.DocumentInfo, error)

	// List returns the names of all stored datasets.
	List() ([]string, error)

	// ListBackups returns the backups of filename, newest first.
	ListBackups(filename string) ([]types.BackupInfo, error)

	// Restore replaces filename with the contents of a backup.
	Restore(backupName, filename string) error
}

// Options tunes a Store
type Options struct {
	// DefaultFilename is used when an operation is given an empty filename.
	DefaultFilename string

	// Indent is the number of spaces used to indent stored documents.
	Indent int

	// Backup enables copying the previous document aside before a save.
	Backup bool

	// KeepBackups limits routine backups per dataset. 0 keeps all.
	KeepBackups int

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// DefaultFilename is the dataset used when nothing else is configured
const DefaultFilename = "home-tools-data.json"

// EmptyData returns the value Load yields when there is nothing to load
func EmptyData() json.RawMessage {
	return json.RawMessage("{}")
}
