package cli

import (
	"github.com/arthur-debert/savedata/pkg/types"
	"github.com/spf13/cobra"
)

func newInfoCmd(c *ctl) *cobra.Command {
	return &cobra.Command{
		Use:     "info [filename]",
		Short:   MsgInfoShort,
		GroupID: "data",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.session()
			if err != nil {
				return err
			}
			info, err := sess.store.Info(sess.filename(args))
			if err != nil {
				return err
			}
			r, err := c.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(info)
		},
	}
}

func newListCmd(c *ctl) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.session()
			if err != nil {
				return err
			}
			names, err := sess.store.List()
			if err != nil {
				return err
			}
			r, err := c.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(types.DatasetList{DataDir: sess.paths.DataDir(), Datasets: names})
		},
	}
}

func newBackupsCmd(c *ctl) *cobra.Command {
	return &cobra.Command{
		Use:     "backups [filename]",
		Short:   MsgBackupsShort,
		GroupID: "data",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.session()
			if err != nil {
				return err
			}
			filename := sess.filename(args)
			backups, err := sess.store.ListBackups(filename)
			if err != nil {
				return err
			}
			r, err := c.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(types.BackupList{Filename: filename, Backups: backups})
		},
	}
}

func newRestoreCmd(c *ctl) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "restore <backup>",
		Short:   MsgRestoreShort,
		Long:    MsgRestoreLong,
		Example: MsgRestoreExample,
		GroupID: "data",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.session()
			if err != nil {
				return err
			}
			filename := sess.filename([]string{file})
			if err := sess.store.Restore(args[0], filename); err != nil {
				return err
			}
			r, err := c.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(types.RestoreResult{Filename: filename, Backup: args[0]})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", MsgFlagFile)
	return cmd
}
