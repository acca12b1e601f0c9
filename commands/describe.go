package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/commands/describe"
)

func newDescribeCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "describe",
	}

	cmd.AddCommand(describe.NewAccountCmd(l))

	return cmd
}
