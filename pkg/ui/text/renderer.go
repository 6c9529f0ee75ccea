// Package text renders results as plain text with no styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/arthur-debert/savedata/pkg/types"
)

// Renderer writes plain text
type Renderer struct {
	output io.Writer
}

// New creates a text renderer writing to output
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders the result types savedatactl produces
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case types.DocumentInfo:
		return r.renderInfo(v)
	case types.DatasetList:
		return r.renderDatasets(v)
	case types.BackupList:
		return r.renderBackups(v)
	case types.RestoreResult:
		return r.RenderMessage(RestoreMessage(v))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders err on one line
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", err)
	return werr
}

// RenderMessage renders msg on one line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderInfo(info types.DocumentInfo) error {
	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	for _, field := range InfoFields(info) {
		fmt.Fprintf(tw, "%s:\t%s\n", field.Label, field.Value)
	}
	return tw.Flush()
}

func (r *Renderer) renderDatasets(list types.DatasetList) error {
	if len(list.Datasets) == 0 {
		return r.RenderMessage(fmt.Sprintf("No datasets in %s", list.DataDir))
	}
	for _, name := range list.Datasets {
		if _, err := fmt.Fprintln(r.output, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderBackups(list types.BackupList) error {
	if len(list.Backups) == 0 {
		return r.RenderMessage(fmt.Sprintf("No backups of %s", list.Filename))
	}
	tw := tabwriter.NewWriter(r.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tCREATED\tSIZE")
	for _, b := range list.Backups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Name, b.Kind, FormatTime(b.Created), FormatSize(b.Size))
	}
	return tw.Flush()
}

// Field is one labelled line of a DocumentInfo report
type Field struct {
	Label string
	Value string
}

// InfoFields lists the lines shown for info, in display order
func InfoFields(info types.DocumentInfo) []Field {
	fields := []Field{
		{Label: "Dataset", Value: info.Filename},
		{Label: "Path", Value: info.Path},
		{Label: "Status", Value: string(info.Status)},
	}
	if info.Timestamp != "" {
		fields = append(fields, Field{Label: "Saved", Value: info.Timestamp})
	}
	if info.Status != types.StatusMissing {
		fields = append(fields, Field{Label: "Size", Value: FormatSize(info.Size)})
	}
	if info.Modified != nil {
		fields = append(fields, Field{Label: "Modified", Value: FormatTime(*info.Modified)})
	}
	fields = append(fields, Field{Label: "Backups", Value: fmt.Sprintf("%d", info.Backups)})
	return fields
}

// RestoreMessage describes a completed restore
func RestoreMessage(r types.RestoreResult) string {
	return fmt.Sprintf("Restored %s from %s", r.Filename, r.Backup)
}

// FormatSize renders a byte count for humans
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatTime renders t in local time to the second
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
