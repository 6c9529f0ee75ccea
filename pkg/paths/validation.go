package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savedata/pkg/errors"
)

// ValidateFilename checks that name is a single path element that can
// safely be joined onto the data directory.
func ValidateFilename(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidInput, "filename is empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid filename %q", name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return errors.Newf(errors.ErrInvalidInput, "filename must not contain path separators: %q", name)
	case strings.ContainsRune(name, 0):
		return errors.Newf(errors.ErrInvalidInput, "filename contains a NUL byte: %q", name)
	case name == BackupDirName:
		return errors.Newf(errors.ErrInvalidInput, "filename %q is reserved", name)
	}
	return nil
}
