package protocol

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/logging"
)

// Action names understood by the adapter
const (
	ActionSave = "save"
	ActionLoad = "load"
)

// Messages for requests that never reach the store
const (
	MsgNoAction      = "No action specified"
	MsgInvalidAction = "Invalid action"
)

// Saver persists a document under a dataset name
type Saver interface {
	Save(data json.RawMessage, filename string) error
}

// Loader reads a document back
type Loader interface {
	Load(filename string) (json.RawMessage, error)
}

// Store is what the adapter needs from the datastore
type Store interface {
	Saver
	Loader
}

// Adapter turns one invocation into one envelope
type Adapter struct {
	store    Store
	out      io.Writer
	filename string
}

// New creates an Adapter that operates on the default dataset of store
// and writes envelopes to out.
func New(store Store, out io.Writer) *Adapter {
	return &Adapter{store: store, out: out}
}

// WithFilename makes the adapter operate on filename instead of the
// store's default dataset.
func (a *Adapter) WithFilename(filename string) *Adapter {
	a.filename = filename
	return a
}

// Handle dispatches on args[0], writes the resulting envelope and returns it.
// Arguments after the action are ignored.
func (a *Adapter) Handle(args []string, in io.Reader) Envelope {
	logger := logging.GetLogger("protocol")

	var env Envelope
	switch {
	case len(args) == 0:
		err := errors.New(errors.ErrNoAction, MsgNoAction)
		logger.Warn().Err(err).Msg("Rejected request")
		env = Failed(err.Message)
	case args[0] == ActionSave:
		env = a.save(in)
	case args[0] == ActionLoad:
		env = a.load()
	default:
		err := errors.New(errors.ErrInvalidAction, MsgInvalidAction).WithDetail("action", args[0])
		logger.Warn().Err(err).Str("action", args[0]).Msg("Rejected request")
		env = Failed(err.Message)
	}

	if err := Write(a.out, env); err != nil {
		logger.Error().Err(err).Msg("Failed to write response")
	}
	return env
}

func (a *Adapter) save(in io.Reader) Envelope {
	logger := logging.GetLogger("protocol")

	raw, err := io.ReadAll(in)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read request")
		return FailedWith(err)
	}

	var data json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn().Err(err).Int("bytes", len(raw)).Msg("Request is not valid JSON")
		return FailedWith(err)
	}

	if err := a.store.Save(data, a.filename); err != nil {
		logger.Error().Err(err).Msg("Save failed")
		return FailedWith(err)
	}
	return Succeeded(nil)
}

func (a *Adapter) load() Envelope {
	logger := logging.GetLogger("protocol")

	data, err := a.store.Load(a.filename)
	if err != nil {
		// Callers only ever see the empty document for these; the log keeps the difference.
		switch errors.GetErrorCode(err) {
		case errors.ErrNotFound:
			logger.Info().Err(err).Msg("Nothing saved yet, returning empty document")
		case errors.ErrCorrupt, errors.ErrFileAccess:
			logger.Warn().Err(err).Msg("Stored document unusable, returning empty document")
		default:
			logger.Error().Err(err).Msg("Load failed")
			return FailedWith(err)
		}
	}
	if data == nil {
		data = json.RawMessage("{}")
	}
	return Succeeded(data)
}
