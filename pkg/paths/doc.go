// Package paths provides centralized path handling for savedata.
//
// The data directory is resolved exactly once, from an explicit base
// directory (flag or configuration) or from the XDG data home, and then
// passed to every component that touches the disk. Nothing in savedata
// derives a storage location from the executable's own path.
//
// Layout:
//
//	<base>/<subdir>/<filename>              stored documents
//	<base>/<subdir>/backups/<stem>-...      backups of overwritten documents
//	$XDG_CONFIG_HOME/savedata/config.toml   user configuration
//	$XDG_STATE_HOME/savedata/savedata.log   log file
package paths
