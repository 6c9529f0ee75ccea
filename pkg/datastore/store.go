package datastore

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/logging"
	"github.com/arthur-debert/savedata/pkg/paths"
	"github.com/arthur-debert/savedata/pkg/types"
)

// Store is the filesystem-backed DataStore
type Store struct {
	fs    types.FS
	paths paths.Paths
	opts  Options
}

var _ DataStore = (*Store)(nil)

// New creates a Store writing through fs into the directories of p
func New(fs types.FS, p paths.Paths, opts Options) *Store {
	if opts.DefaultFilename == "" {
		opts.DefaultFilename = DefaultFilename
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		fs:    fs,
		paths: p,
		opts:  opts,
	}
}

// Save writes a StoredDocument holding data to filename, replacing any
// previous contents. An empty filename selects the default dataset.
func (s *Store) Save(data json.RawMessage, filename string) error {
	logger := logging.GetLogger("datastore")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	filename, err := s.resolve(filename)
	if err != nil {
		return err
	}

	if !json.Valid(data) {
		return errors.New(errors.ErrInvalidInput, "data is not valid JSON").
			WithDetail("filename", filename)
	}

	if err := s.fs.MkdirAll(s.paths.DataDir(), 0755); err != nil {
		logger.Error().Err(err).Str("dir", s.paths.DataDir()).Msg("Failed to create data directory")
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create data directory %s", s.paths.DataDir())
	}

	payload, err := s.encode(types.StoredDocument{
		Timestamp: s.opts.Now().Format(time.RFC3339Nano),
		Data:      data,
	})
	if err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("Failed to encode document")
		return errors.Wrap(err, errors.ErrEncode, "failed to encode document")
	}

	if s.opts.Backup {
		if _, err := s.backupCurrent(filename, types.BackupKindBackup); err != nil {
			// A failed backup does not block the save.
			logger.Warn().Err(err).Str("filename", filename).Msg("Failed to back up previous document")
		}
	}

	path := s.paths.DocumentPath(filename)
	if err := s.fs.WriteFile(path, payload, 0644); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to write document")
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Int("bytes", len(payload)).Msg("Document saved")
	return nil
}

// Load returns the data field of the document stored in filename.
//
// A document without a data field yields an empty object and no error. A
// missing, unreadable or malformed file yields an empty object together with
// a NOT_FOUND, FILE_ACCESS or CORRUPT error respectively.
func (s *Store) Load(filename string) (json.RawMessage, error) {
	logger := logging.GetLogger("datastore")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	filename, err := s.resolve(filename)
	if err != nil {
		return EmptyData(), err
	}

	path := s.paths.DocumentPath(filename)
	raw, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("path", path).Msg("Document does not exist")
			return EmptyData(), errors.Newf(errors.ErrNotFound, "document %s does not exist", filename).
				WithDetail("path", path)
		}
		logger.Warn().Err(err).Str("path", path).Msg("Failed to read document")
		return EmptyData(), errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}

	fields, err := decodeDocument(raw)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Document is corrupt")
		return EmptyData(), errors.Wrapf(err, errors.ErrCorrupt, "document %s is not valid", filename).
			WithDetail("path", path)
	}

	data, ok := fields["data"]
	if !ok {
		logger.Debug().Str("path", path).Msg("Document has no data field")
		return EmptyData(), nil
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Document loaded")
	return data, nil
}

// resolve applies the default filename and validates the result
func (s *Store) resolve(filename string) (string, error) {
	if filename == "" {
		filename = s.opts.DefaultFilename
	}
	if err := paths.ValidateFilename(filename); err != nil {
		return "", err
	}
	return filename, nil
}

// encode renders a document as UTF-8 JSON without escaping HTML or non-ASCII characters
func (s *Store) encode(doc types.StoredDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if s.opts.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", s.opts.Indent))
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeDocument parses raw as a JSON object, keeping field values raw
func decodeDocument(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New(errors.ErrDecode, "document is null")
	}
	return fields, nil
}
