// pkg/protocol/adapter_test.go
// TEST TYPE: Protocol Tests
// DEPENDENCIES: in-memory datastore
// PURPOSE: One request in, one envelope out

package protocol_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/savedata/pkg/datastore"
	"github.com/arthur-debert/savedata/pkg/errors"
	"github.com/arthur-debert/savedata/pkg/protocol"
	"github.com/arthur-debert/savedata/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *datastore.Store {
	t.Helper()
	return testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).Store
}

// run handles one request and returns the raw output line
func run(t *testing.T, store protocol.Store, stdin string, args ...string) (protocol.Envelope, string) {
	t.Helper()
	var out bytes.Buffer
	env := protocol.New(store, &out).Handle(args, strings.NewReader(stdin))

	line := out.String()
	require.True(t, strings.HasSuffix(line, "\n"), "envelope must end with a newline")
	require.Equal(t, 1, strings.Count(line, "\n"), "exactly one line must be written, got %q", line)
	return env, line
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no action", args: nil, want: `{"success":false,"error":"No action specified"}`},
		{name: "unknown action", args: []string{"foo"}, want: `{"success":false,"error":"Invalid action"}`},
		{name: "action is case sensitive", args: []string{"SAVE"}, want: `{"success":false,"error":"Invalid action"}`},
		{name: "empty action", args: []string{""}, want: `{"success":false,"error":"Invalid action"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{}
			env, line := run(t, store, `{"ignored":true}`, tt.args...)

			assert.JSONEq(t, tt.want, line)
			assert.False(t, env.Success)
			assert.Zero(t, store.calls, "store must not be touched")
		})
	}
}

func TestHandle_SaveThenLoad(t *testing.T) {
	store := newMemoryStore(t)

	_, line := run(t, store, `{"groups":[]}`, "save")
	assert.JSONEq(t, `{"success":true}`, line)

	env, line := run(t, store, "", "load")
	assert.JSONEq(t, `{"success":true,"data":{"groups":[]}}`, line)
	assert.JSONEq(t, `{"groups":[]}`, string(env.Data))
}

func TestHandle_LoadWithNothingSaved(t *testing.T) {
	_, line := run(t, newMemoryStore(t), "", "load")
	assert.JSONEq(t, `{"success":true,"data":{}}`, line)
}

func TestHandle_LoadMasksUnusableDocuments(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: errors.New(errors.ErrNotFound, "missing")},
		{name: "corrupt", err: errors.New(errors.ErrCorrupt, "corrupt")},
		{name: "unreadable", err: errors.New(errors.ErrFileAccess, "permission denied")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{loadData: datastore.EmptyData(), loadErr: tt.err}
			_, line := run(t, store, "", "load")
			assert.JSONEq(t, `{"success":true,"data":{}}`, line)
		})
	}
}

func TestHandle_LoadFailure(t *testing.T) {
	store := &recordingStore{loadErr: errors.New(errors.ErrInvalidInput, "bad filename")}

	env, line := run(t, store, "", "load")
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "bad filename")
	assert.NotContains(t, line, `"data"`)
}

func TestHandle_LoadNullData(t *testing.T) {
	store := newMemoryStore(t)
	run(t, store, `null`, "save")

	_, line := run(t, store, "", "load")
	assert.JSONEq(t, `{"success":true,"data":null}`, line)
}

func TestHandle_SaveMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
	}{
		{name: "not json", stdin: "not-json"},
		{name: "empty input", stdin: ""},
		{name: "two documents", stdin: `{} {}`},
		{name: "truncated", stdin: `{"groups":[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{}
			env, line := run(t, store, tt.stdin, "save")

			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
			assert.Zero(t, store.calls)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(line), &decoded))
			assert.Equal(t, false, decoded["success"])
			assert.Equal(t, env.Error, decoded["error"])
		})
	}
}

func TestHandle_SaveFailure(t *testing.T) {
	store := &recordingStore{saveErr: errors.New(errors.ErrFileWrite, "disk full")}

	env, _ := run(t, store, `{"a":1}`, "save")
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "disk full")
}

func TestHandle_ExtraArgumentsIgnored(t *testing.T) {
	store := &recordingStore{}
	_, line := run(t, store, `{"a":1}`, "save", "extra", "--stuff")

	assert.JSONEq(t, `{"success":true}`, line)
	assert.JSONEq(t, `{"a":1}`, string(store.saved))
}

func TestHandle_NonASCIIAndHTML(t *testing.T) {
	store := newMemoryStore(t)
	run(t, store, `{"name":"أدوات المنزل","note":"<b>&</b>"}`, "save")

	_, line := run(t, store, "", "load")
	assert.Contains(t, line, "أدوات المنزل")
	assert.Contains(t, line, "<b>&</b>")
}

func TestHandle_WithFilename(t *testing.T) {
	store := &recordingStore{}
	var out bytes.Buffer

	protocol.New(store, &out).WithFilename("other.json").Handle([]string{"save"}, strings.NewReader(`1`))
	assert.Equal(t, "other.json", store.filename)
}

func TestHandle_ReadFailure(t *testing.T) {
	store := &recordingStore{}
	var out bytes.Buffer

	env := protocol.New(store, &out).Handle([]string{"save"}, failingReader{})
	assert.False(t, env.Success)
	assert.Equal(t, "stdin closed", env.Error)
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, protocol.Write(&out, protocol.Failed("a < b")))
	assert.Equal(t, "{\"success\":false,\"error\":\"a < b\"}\n", out.String())
}

// recordingStore is a protocol.Store with canned results
type recordingStore struct {
	calls    int
	saved    json.RawMessage
	filename string
	saveErr  error
	loadData json.RawMessage
	loadErr  error
}

func (s *recordingStore) Save(data json.RawMessage, filename string) error {
	s.calls++
	s.saved = data
	s.filename = filename
	return s.saveErr
}

func (s *recordingStore) Load(filename string) (json.RawMessage, error) {
	s.calls++
	s.filename = filename
	return s.loadData, s.loadErr
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, stderrors.New("stdin closed")
}
