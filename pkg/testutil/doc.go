// Package testutil provides test environments for savedata components.
//
// Key components:
//   - TestEnvironment: paths, filesystem and store wired together, either
//     in memory or on the real filesystem under t.TempDir()
//   - Clock: a deterministic clock that advances on every reading
//
// Usage guidelines:
//   - Use EnvMemoryOnly unless the test needs real files or a subprocess-like
//     run of the commands
//   - EnvIsolated also points HOME and the XDG directories into the temp
//     directory, so the user's config and log file are never touched
package testutil
