// Package ui renders savedatactl results as styled terminal output, plain
// text or JSON.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/savedata/pkg/ui/json"
	"github.com/arthur-debert/savedata/pkg/ui/terminal"
	"github.com/arthur-debert/savedata/pkg/ui/text"
)

// Renderer is implemented by every output format
type Renderer interface {
	// RenderResult renders a command result such as types.DocumentInfo
	RenderResult(result interface{}) error

	// RenderError renders an error
	RenderError(err error) error

	// RenderMessage renders a one-line message
	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format writing to output.
// FormatAuto is resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
