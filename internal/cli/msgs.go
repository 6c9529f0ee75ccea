package cli

import (
	"embed"
	"strings"
)

// Short messages
const (
	MsgAdapterShort    = "Save and load a JSON document over stdin/stdout"
	MsgCtlShort        = "Inspect and maintain savedata documents"
	MsgInfoShort       = "Show the state of a dataset"
	MsgListShort       = "List stored datasets"
	MsgBackupsShort    = "List the backups of a dataset, newest first"
	MsgRestoreShort    = "Restore a dataset from a backup"
	MsgConfigShort     = "Print the effective configuration"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/savedata/config.toml)"
	MsgFlagDataDir = "Base directory for stored data (overrides storage.dir)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagFile    = "Dataset to restore (default storage.filename)"
	MsgFlagWrite   = "Write the configuration file instead of printing it"
	MsgFlagOutput  = "Path written by --write"
	MsgFlagManDir  = "Directory the man pages are written to"

	// Status messages
	MsgConfigWritten = "Wrote default configuration to %s"
	MsgManWritten    = "Wrote man pages to %s"
	MsgVersionFormat = "%s version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrConfigExist = "configuration file %s already exists"
)

// Long messages from embedded files
var (
	//go:embed msgs/adapter-long.txt
	msgAdapterLongRaw string
	MsgAdapterLong    = strings.TrimSpace(msgAdapterLongRaw)

	//go:embed msgs/adapter-example.txt
	msgAdapterExampleRaw string
	MsgAdapterExample    = strings.TrimRight(msgAdapterExampleRaw, "\n")

	//go:embed msgs/ctl-long.txt
	msgCtlLongRaw string
	MsgCtlLong    = strings.TrimSpace(msgCtlLongRaw)

	//go:embed msgs/restore-long.txt
	msgRestoreLongRaw string
	MsgRestoreLong    = strings.TrimSpace(msgRestoreLongRaw)

	//go:embed msgs/restore-example.txt
	msgRestoreExampleRaw string
	MsgRestoreExample    = strings.TrimRight(msgRestoreExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)

// helpTopics holds the markdown documents served by `savedatactl help <topic>`
//
//go:embed topics/*.md
var helpTopics embed.FS
