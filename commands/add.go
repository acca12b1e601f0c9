package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/commands/add"
)

func newAddCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "add",
	}

	cmd.AddCommand(add.NewAccountCmd(l))

	return cmd
}
