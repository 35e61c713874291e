// sitectl 是站点的运维命令行：初始化管理员、写入种子数据、远程编辑页面元信息。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sumeshkk123/cloud-sub010/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are shared by every subcommand; defaults come from the server's env config.
type options struct {
	cfg          config.AppConfig
	databasePath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Manage the Cloud MLM marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.databasePath == "" {
				opts.databasePath = cfg.DatabasePath
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.databasePath, "db", "", "SQLite database path (default: $DATABASE_PATH)")

	root.AddCommand(
		newInitUserCmd(opts),
		newSeedCmd(opts),
		newMetaCmd(opts),
	)
	return root
}
