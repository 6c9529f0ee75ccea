// Package types defines the core types and interfaces used throughout savedata.
// This includes the FS interface the store writes through, the on-disk
// StoredDocument envelope, and the DocumentInfo and BackupInfo reports.
package types
