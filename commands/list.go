package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/commands/list"
)

func newListCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "list",
	}

	cmd.AddCommand(list.NewDatabasesCmd(l))
	cmd.AddCommand(list.NewAccountsCmd(l))
	cmd.AddCommand(list.NewTreeCmd(l))

	return cmd
}
