package cli

import (
	"fmt"

	"github.com/arthur-debert/savedata/pkg/config"
	"github.com/arthur-debert/savedata/pkg/datastore"
	"github.com/arthur-debert/savedata/pkg/filesystem"
	"github.com/arthur-debert/savedata/pkg/logging"
	"github.com/arthur-debert/savedata/pkg/paths"
	"github.com/spf13/cobra"
)

// globalFlags are shared by savedata and savedatactl
type globalFlags struct {
	verbosity  int
	configFile string
	dataDir    string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	cmd.PersistentFlags().StringVar(&f.configFile, "config", "", MsgFlagConfig)
	cmd.PersistentFlags().StringVar(&f.dataDir, "data-dir", "", MsgFlagDataDir)
}

// overrides maps command-line flags onto config keys
func (f *globalFlags) overrides() map[string]interface{} {
	overrides := map[string]interface{}{}
	if f.dataDir != "" {
		overrides["storage.dir"] = f.dataDir
	}
	return overrides
}

// session is everything a command needs, resolved once per invocation
type session struct {
	cfg   *config.Config
	paths paths.Paths
	store *datastore.Store
}

// newSession loads the configuration, sets up logging and resolves the
// data directory. Logging to the console is set up even when the
// configuration cannot be loaded, so the failure gets reported.
func newSession(f *globalFlags) (*session, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: f.configFile,
		Overrides:  f.overrides(),
	})
	if err != nil {
		logging.SetupLogger(f.verbosity, "")
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	logFile := ""
	if cfg.Log.File {
		logFile = paths.LogFilePath()
	}
	logging.SetupLogger(f.verbosity, logFile)

	p, err := paths.New(cfg.Storage.Dir, cfg.Storage.Subdir)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("data_dir", p.DataDir()).
		Str("filename", cfg.Storage.Filename).
		Bool("backup", cfg.Backup.Enabled).
		Msg("Session ready")

	store := datastore.New(filesystem.NewOS(), p, datastore.Options{
		DefaultFilename: cfg.Storage.Filename,
		Indent:          cfg.Storage.Indent,
		Backup:          cfg.Backup.Enabled,
		KeepBackups:     cfg.Backup.Keep,
	})

	return &session{cfg: cfg, paths: p, store: store}, nil
}

// filename returns the dataset named in args, or the configured default
func (s *session) filename(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return s.cfg.Storage.Filename
}
