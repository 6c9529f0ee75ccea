package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"protocol.md":          {Data: []byte("# Protocol\n\nOne envelope per call")},
		"data-dir.txt":         {Data: []byte("Where documents live")},
		"notes.json":           {Data: []byte(`{"ignored":true}`)},
		"advanced/backups.md":  {Data: []byte("# Backups")},
		"advanced/drafts.txxt": {Data: []byte("draft")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testSource(), Options{})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"backups", "data-dir", "protocol"}, tm.ListTopics())

		topic, ok := tm.GetTopic("protocol")
		require.True(t, ok)
		assert.Equal(t, "# Protocol\n\nOne envelope per call", topic.Content)
		assert.Equal(t, "protocol.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testSource(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"drafts"}, tm.ListTopics())
	})

	t.Run("empty source", func(t *testing.T) {
		tm := New(fstest.MapFS{}, Options{})
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testSource(), Options{})
	require.NoError(t, tm.Scan())

	tests := []struct {
		query string
		found bool
	}{
		{"data-dir", true},
		{"--data-dir", true},
		{"-data-dir", true},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
		})
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + format
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "test app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "info", Short: "Show info", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testSource(), Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInitialize_HelpCommand(t *testing.T) {
	t.Run("renders a topic", func(t *testing.T) {
		root, out := newTestRoot(t)
		root.SetArgs([]string{"help", "protocol"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# PROTOCOL\n\nONE ENVELOPE PER CALL.md", out.String())
	})

	t.Run("lists topics", func(t *testing.T) {
		root, out := newTestRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Available help topics:")
		assert.Contains(t, out.String(), "  backups\n")
		assert.Contains(t, out.String(), "'app help <topic>'")
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newTestRoot(t)
		root.SetArgs([]string{"help", "info"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Show info")
	})

	t.Run("no arguments shows root help", func(t *testing.T) {
		root, out := newTestRoot(t)
		root.SetArgs([]string{"help"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "test app")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"), "non-markdown passes through")

	rendered := r.Render("# Title\n\nSome **bold** text", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "bold")
}
