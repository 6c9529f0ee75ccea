package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/logging"
	"github.com/arthur-debert/savedata/pkg/paths"
	"github.com/arthur-debert/savedata/pkg/types"
)

// backupStampLayout sorts lexicographically in time order
const backupStampLayout = "20060102T150405.000000000Z"

// backupName builds "<stem>-<kind>-<stamp><ext>" for filename
func backupName(filename string, kind types.BackupKind, at time.Time) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	return fmt.Sprintf("%s-%s-%s%s", stem, kind, at.UTC().Format(backupStampLayout), ext)
}

// parseBackupName is the inverse of backupName. It reports false for names
// that are not backups of filename.
func parseBackupName(filename, name string) (types.BackupKind, time.Time, bool) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	prefix := stem + "-"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
		return "", time.Time{}, false
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)

	for _, kind := range []types.BackupKind{types.BackupKindBackup, types.BackupKindBeforeRestore} {
		kindPrefix := string(kind) + "-"
		if !strings.HasPrefix(middle, kindPrefix) {
			continue
		}
		at, err := time.Parse(backupStampLayout, strings.TrimPrefix(middle, kindPrefix))
		if err != nil {
			return "", time.Time{}, false
		}
		return kind, at, true
	}
	return "", time.Time{}, false
}

// backupCurrent copies the current contents of filename into the backups
// directory. It returns the backup name, or "" when there was nothing to copy.
func (s *Store) backupCurrent(filename string, kind types.BackupKind) (string, error) {
	logger := logging.GetLogger("datastore")

	current, err := s.fs.ReadFile(s.paths.DocumentPath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("filename", filename).Msg("No previous document to back up")
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrBackup, "failed to read %s for backup", filename)
	}

	if err := s.fs.MkdirAll(s.paths.BackupDir(), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "failed to create backup directory %s", s.paths.BackupDir())
	}

	name := backupName(filename, kind, s.opts.Now())
	if err := s.fs.WriteFile(s.paths.BackupPath(name), current, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackup, "failed to write backup %s", name)
	}
	logger.Info().Str("filename", filename).Str("backup", name).Msg("Backed up previous document")

	if kind == types.BackupKindBackup {
		if err := s.prune(filename); err != nil {
			logger.Warn().Err(err).Str("filename", filename).Msg("Failed to prune old backups")
		}
	}
	return name, nil
}

// prune removes routine backups of filename beyond the configured limit.
// Pre-restore snapshots are never pruned.
func (s *Store) prune(filename string) error {
	if s.opts.KeepBackups <= 0 {
		return nil
	}
	logger := logging.GetLogger("datastore")

	backups, err := s.ListBackups(filename)
	if err != nil {
		return err
	}

	kept := 0
	for _, b := range backups {
		if b.Kind != types.BackupKindBackup {
			continue
		}
		kept++
		if kept <= s.opts.KeepBackups {
			continue
		}
		if err := s.fs.Remove(b.Path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrBackup, "failed to remove backup %s", b.Name)
		}
		logger.Debug().Str("backup", b.Name).Msg("Pruned backup")
	}
	return nil
}

// ListBackups returns the backups of filename, newest first
func (s *Store) ListBackups(filename string) ([]types.BackupInfo, error) {
	filename, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(s.paths.BackupDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []types.BackupInfo{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrBackup, "failed to read backup directory %s", s.paths.BackupDir())
	}

	backups := []types.BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind, created, ok := parseBackupName(filename, entry.Name())
		if !ok {
			continue
		}
		info := types.BackupInfo{
			Name:    entry.Name(),
			Path:    s.paths.BackupPath(entry.Name()),
			Kind:    kind,
			Created: created,
		}
		if fi, err := entry.Info(); err == nil {
			info.Size = fi.Size()
		}
		backups = append(backups, info)
	}

	sort.Slice(backups, func(i, j int) bool {
		if backups[i].Created.Equal(backups[j].Created) {
			return backups[i].Name > backups[j].Name
		}
		return backups[i].Created.After(backups[j].Created)
	})
	return backups, nil
}

// Restore replaces filename with the contents of the named backup. The
// current document, if any, is first kept as a before-restore snapshot.
func (s *Store) Restore(backupName, filename string) error {
	logger := logging.GetLogger("datastore")
	done := logging.LogOperationStart(logger, "restore")
	defer done()

	filename, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := paths.ValidateFilename(backupName); err != nil {
		return err
	}
	if _, _, ok := parseBackupName(filename, backupName); !ok {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a backup of %s", backupName, filename).
			WithDetail("backup", backupName)
	}

	backupPath := s.paths.BackupPath(backupName)
	raw, err := s.fs.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotFound, "backup %s does not exist", backupName).
				WithDetail("path", backupPath)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read backup %s", backupName)
	}
	if _, err := decodeDocument(raw); err != nil {
		return errors.Wrapf(err, errors.ErrCorrupt, "backup %s is not a valid document", backupName)
	}

	snapshot, err := s.backupCurrent(filename, types.BackupKindBeforeRestore)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(s.paths.DataDir(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create data directory %s", s.paths.DataDir())
	}
	path := s.paths.DocumentPath(filename)
	if err := s.fs.WriteFile(path, raw, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	logger.Info().
		Str("backup", backupName).
		Str("snapshot", snapshot).
		Str("path", path).
		Msg("Document restored from backup")
	return nil
}
