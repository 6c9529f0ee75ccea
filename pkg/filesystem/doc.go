// Package filesystem provides filesystem implementations for savedata.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the binaries, and an afero-backed
// one used where an in-memory filesystem is enough.
package filesystem
