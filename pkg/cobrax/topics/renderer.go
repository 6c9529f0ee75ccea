package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render returns content formatted for the terminal. format is the
	// topic file's extension, e.g. ".md".
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns content as is
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
