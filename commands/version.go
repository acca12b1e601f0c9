package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/output"
	"github.com/percona/percona-mongo-explorer/pkg/version"
)

func newVersionCmd(l *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use: "version",
		Run: func(cmd *cobra.Command, args []string) {
			output.PrintOutput(cmd, l, version.FullVersionInfo())
		},
	}
}
