// Package datastore persists opaque JSON documents on the filesystem.
//
// Each dataset is one file in the data directory holding a StoredDocument:
// the caller's data paired with the time it was saved. Saves overwrite the
// whole file. When backups are enabled the previous contents are copied to
// the backups directory first, and older backups beyond the configured
// limit are pruned.
//
// Every operation returns a coded error from pkg/errors. Load also returns
// an empty object alongside NOT_FOUND, FILE_ACCESS and CORRUPT errors so
// callers that only want "whatever is there" can ignore the error.
package datastore
