// Package terminal renders results with colors and tables for interactive use
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/savedata/pkg/types"
	"github.com/arthur-debert/savedata/pkg/ui/styles"
	"github.com/arthur-debert/savedata/pkg/ui/text"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer writes styled output
type Renderer struct {
	output io.Writer
}

// New creates a terminal renderer writing to output
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
		return r.println(styles.Render("Success", "✓ "+text.RestoreMessage(v)))
	default:
		return r.println(fmt.Sprintf("%+v", result))
	}
}

// RenderError renders err in the Error style
func (r *Renderer) RenderError(err error) error {
	return r.println(styles.Render("Error", "Error:") + " " + err.Error())
}

// RenderMessage renders msg in the Info style
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(styles.Render("Info", msg))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func (r *Renderer) renderInfo(info types.DocumentInfo) error {
	if err := r.println(styles.Render("Header", info.Filename)); err != nil {
		return err
	}
	for _, field := range text.InfoFields(info) {
		value := field.Value
		switch field.Label {
		case "Path":
			value = styles.Render("FilePath", value)
		case "Status":
			value = statusStyle(info.Status).Render(value)
		case "Saved", "Modified":
			value = styles.Render("Timestamp", value)
		}
		if err := r.println(styles.Render("Label", field.Label) + value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderDatasets(list types.DatasetList) error {
	if err := r.println(styles.Render("Header", list.DataDir)); err != nil {
		return err
	}
	if len(list.Datasets) == 0 {
		return r.println(styles.Render("NoContent", "No datasets stored yet"))
	}
	items := make([]pterm.BulletListItem, 0, len(list.Datasets))
	for _, name := range list.Datasets {
		items = append(items, pterm.BulletListItem{Level: 0, Text: name})
	}
	out, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.output, out)
	return err
}

func (r *Renderer) renderBackups(list types.BackupList) error {
	if err := r.println(styles.Render("Header", "Backups of "+list.Filename)); err != nil {
		return err
	}
	if len(list.Backups) == 0 {
		return r.println(styles.Render("NoContent", "No backups yet"))
	}

	data := pterm.TableData{{"NAME", "KIND", "CREATED", "SIZE"}}
	for _, b := range list.Backups {
		kind := string(b.Kind)
		if b.Kind == types.BackupKindBeforeRestore {
			kind = styles.Render("Warning", kind)
		}
		data = append(data, []string{b.Name, kind, text.FormatTime(b.Created), text.FormatSize(b.Size)})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	return r.println(out)
}

func statusStyle(status types.DocumentStatus) lipgloss.Style {
	switch status {
	case types.StatusOK:
		return styles.GetStyle("StatusOK")
	case types.StatusCorrupt:
		return styles.GetStyle("StatusCorrupt")
	default:
		return styles.GetStyle("StatusMissing")
	}
}
