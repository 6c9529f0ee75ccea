package cli

import (
	"io"

	"github.com/arthur-debert/savedata/internal/version"
	"github.com/arthur-debert/savedata/pkg/logging"
	"github.com/arthur-debert/savedata/pkg/protocol"
	"github.com/spf13/cobra"
)

// NewAdapterCmd creates the savedata command. Every argument is handed to
// the protocol adapter, which answers with one envelope on stdout.
func NewAdapterCmd() *cobra.Command {
	var (
		flags globalFlags
		sess  *session
	)

	cmd := &cobra.Command{
		Use:     "savedata <save|load>",
		Short:   MsgAdapterShort,
		Long:    MsgAdapterLong,
		Example: MsgAdapterExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			sess, err = newSession(&flags)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogCommand(cmd.Name(), args)
			protocol.New(sess.store, cmd.OutOrStdout()).Handle(args, cmd.InOrStdin())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags.register(cmd)
	return cmd
}

// RunAdapter runs savedata with args. Whatever happens, exactly one
// envelope is written to out; failures that happen before the adapter
// runs (bad flags, bad configuration) are reported as error envelopes.
func RunAdapter(args []string, in io.Reader, out io.Writer) {
	cmd := NewAdapterCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)

	if err := cmd.Execute(); err != nil {
		logger := logging.GetLogger("cli")
		logger.Error().Err(err).Msg("Request failed before reaching the adapter")
		if werr := protocol.Write(out, protocol.FailedWith(err)); werr != nil {
			logger.Error().Err(werr).Msg("Failed to write response")
		}
	}
}
