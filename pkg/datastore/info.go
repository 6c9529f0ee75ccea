package datastore

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/types"
)

// Info reports the on-disk state of filename. Missing and corrupt
// documents are reported through Status, not as errors.
func (s *Store) Info(filename string) (types.DocumentInfo, error) {
	filename, err := s.resolve(filename)
	if err != nil {
		return types.DocumentInfo{}, err
	}

	path := s.paths.DocumentPath(filename)
	info := types.DocumentInfo{
		Filename: filename,
		Path:     path,
		Status:   types.StatusMissing,
	}

	backups, err := s.ListBackups(filename)
	if err != nil {
		return info, err
	}
	info.Backups = len(backups)

	st, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return info, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	modified := st.ModTime()
	info.Size = st.Size()
	info.Modified = &modified

	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return info, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	fields, err := decodeDocument(raw)
	if err != nil {
		info.Status = types.StatusCorrupt
		return info, nil
	}

	info.Status = types.StatusOK
	if ts, ok := fields["timestamp"]; ok {
		var timestamp string
		if json.Unmarshal(ts, &timestamp) == nil {
			info.Timestamp = timestamp
		}
	}
	return info, nil
}

// List returns the sorted names of stored datasets
func (s *Store) List() ([]string, error) {
	entries, err := s.fs.ReadDir(s.paths.DataDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read data directory %s", s.paths.DataDir())
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
