// pkg/datastore/info_test.go
// TEST TYPE: DataStore Tests
// DEPENDENCIES: afero in-memory filesystem
// PURPOSE: Dataset inspection and listing

package datastore_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/arthur-debert/savedata/pkg/datastore"
	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/testutil"
	"github.com/arthur-debert/savedata/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_Missing(t *testing.T) {
	store, _, p := setupStore(t, datastore.Options{})

	info, err := store.Info("")
	require.NoError(t, err)
	assert.Equal(t, datastore.DefaultFilename, info.Filename)
	assert.Equal(t, p.DocumentPath(datastore.DefaultFilename), info.Path)
	assert.Equal(t, types.StatusMissing, info.Status)
	assert.Nil(t, info.Modified)
	assert.Zero(t, info.Backups)
}

func TestInfo_OK(t *testing.T) {
	clock := testutil.NewClock()
	store, _, _ := setupStore(t, datastore.Options{Backup: true, Now: clock.Now})

	require.NoError(t, store.Save(json.RawMessage(`{"v":1}`), "doc.json"))
	require.NoError(t, store.Save(json.RawMessage(`{"v":2}`), "doc.json"))

	info, err := store.Info("doc.json")
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, info.Status)
	// The last clock reading named the backup; the timestamp was taken just before
	assert.Equal(t, clock.Last().Add(-time.Second).Format(time.RFC3339Nano), info.Timestamp)
	assert.Positive(t, info.Size)
	assert.NotNil(t, info.Modified)
	assert.Equal(t, 1, info.Backups)
}

func TestInfo_Corrupt(t *testing.T) {
	store, memFS, p := setupStore(t, datastore.Options{})
	require.NoError(t, memFS.MkdirAll(p.DataDir(), 0755))
	require.NoError(t, memFS.WriteFile(p.DocumentPath("doc.json"), []byte(`not json`), 0644))

	info, err := store.Info("doc.json")
	require.NoError(t, err)
	assert.Equal(t, types.StatusCorrupt, info.Status)
	assert.Equal(t, int64(len("not json")), info.Size)
	assert.Empty(t, info.Timestamp)
}

func TestInfo_InvalidFilename(t *testing.T) {
	store, _, _ := setupStore(t, datastore.Options{})

	_, err := store.Info("..")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestList(t *testing.T) {
	store, _, _ := setupStore(t, datastore.Options{Backup: true})

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.Save(json.RawMessage(`{}`), "zeta.json"))
	require.NoError(t, store.Save(json.RawMessage(`{}`), "alpha.json"))
	require.NoError(t, store.Save(json.RawMessage(`{}`), "alpha.json"))

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.json", "zeta.json"}, names, "backups directory is not a dataset")
}
