package types

import (
	"encoding/json"
	"time"
)

// StoredDocument is the envelope written to disk on every save.
// Data is opaque and never inspected.
type StoredDocument struct {
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// DocumentStatus describes the state of a dataset file on disk
type DocumentStatus string

const (
	StatusOK      DocumentStatus = "ok"
	StatusMissing DocumentStatus = "missing"
	StatusCorrupt DocumentStatus = "corrupt"
)

// DocumentInfo reports what is known about a stored dataset
type DocumentInfo struct {
	Filename  string         `json:"filename"`
	Path      string         `json:"path"`
	Status    DocumentStatus `json:"status"`
	Timestamp string         `json:"timestamp,omitempty"`
	Size      int64          `json:"size"`
	Modified  *time.Time     `json:"modified,omitempty"`
	Backups   int            `json:"backups"`
}

// BackupKind distinguishes routine backups from pre-restore snapshots
type BackupKind string

const (
	BackupKindBackup        BackupKind = "backup"
	BackupKindBeforeRestore BackupKind = "before-restore"
)

// BackupInfo describes one backup file
type BackupInfo struct {
	Name    string     `json:"name"`
	Path    string     `json:"path"`
	Kind    BackupKind `json:"kind"`
	Created time.Time  `json:"created"`
	Size    int64      `json:"size"`
}
