package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/savedata/internal/version"
	"github.com/arthur-debert/savedata/pkg/cobrax/topics"
	"github.com/arthur-debert/savedata/pkg/logging"
	"github.com/arthur-debert/savedata/pkg/ui"
	"github.com/spf13/cobra"
)

// ctl carries state shared by the savedatactl subcommands
type ctl struct {
	flags  globalFlags
	format ui.Format
	sess   *session
}

// session loads the configuration and store on first use. Commands that
// never touch data (version, completion, help) do not need a valid config.
func (c *ctl) session() (*session, error) {
	if c.sess != nil {
		return c.sess, nil
	}
	sess, err := newSession(&c.flags)
	if err != nil {
		return nil, err
	}
	c.sess = sess
	return sess, nil
}

func (c *ctl) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	return ui.NewRenderer(c.format, cmd.OutOrStdout())
}

// NewCtlCmd creates the savedatactl command tree
func NewCtlCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		c      ctl
		format string
	)

	rootCmd := &cobra.Command{
		Use:     "savedatactl",
		Short:   MsgCtlShort,
		Long:    MsgCtlLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(c.flags.verbosity, "")
			logging.LogCommand(cmd.CommandPath(), args)

			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			c.format = f
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	c.flags.register(rootCmd)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "data", Title: "DATA:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInfoCmd(&c))
	rootCmd.AddCommand(newListCmd(&c))
	rootCmd.AddCommand(newBackupsCmd(&c))
	rootCmd.AddCommand(newRestoreCmd(&c))
	rootCmd.AddCommand(newConfigCmd(&c))
	rootCmd.AddCommand(newGenConfigCmd(&c))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}
	source, err := fs.Sub(helpTopics, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, source, topics.Options{
			Extensions: []string{".md"},
			Renderer:   renderer,
		})
	}
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
