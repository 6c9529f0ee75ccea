package datastore

import (
	"testing"
	"time"

	"github.com/arthur-debert/savedata/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestBackupName(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.FixedZone("CEST", 2*60*60))

	assert.Equal(t, "data-backup-20250601T103045.123456789Z.json",
		backupName("data.json", types.BackupKindBackup, at))
	assert.Equal(t, "data-before-restore-20250601T103045.123456789Z",
		backupName("data", types.BackupKindBeforeRestore, at))
}

func TestParseBackupName(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 30, 45, 5, time.UTC)

	tests := []struct {
		name     string
		filename string
		backup   string
		wantKind types.BackupKind
		wantOK   bool
	}{
		{name: "routine backup", filename: "data.json", backup: backupName("data.json", types.BackupKindBackup, at), wantKind: types.BackupKindBackup, wantOK: true},
		{name: "snapshot", filename: "data.json", backup: backupName("data.json", types.BackupKindBeforeRestore, at), wantKind: types.BackupKindBeforeRestore, wantOK: true},
		{name: "no extension", filename: "data", backup: backupName("data", types.BackupKindBackup, at), wantKind: types.BackupKindBackup, wantOK: true},
		{name: "other dataset sharing a prefix", filename: "data.json", backup: backupName("data-old.json", types.BackupKindBackup, at)},
		{name: "other extension", filename: "data.json", backup: backupName("data.txt", types.BackupKindBackup, at)},
		{name: "bad stamp", filename: "data.json", backup: "data-backup-today.json"},
		{name: "unknown kind", filename: "data.json", backup: "data-copy-20250601T103045.000000005Z.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, created, ok := parseBackupName(tt.filename, tt.backup)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
			if tt.wantOK {
				assert.True(t, created.Equal(at))
			}
		})
	}
}
