// Package commands implements main logic for cli commands.
package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/config"
	"github.com/percona/percona-mongo-explorer/pkg/logger"
)

// NewRootCmd creates a new root command for the cli.
func NewRootCmd(l *zap.SugaredLogger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mongo-explorer",
		Short: "Explore databases of MongoDB and Azure Cosmos DB accounts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerInRootCmd(cmd, l)
		},
	}

	initFlags(rootCmd)

	rootCmd.AddCommand(newListCmd(l))
	rootCmd.AddCommand(newAddCmd(l))
	rootCmd.AddCommand(newCreateCmd(l))
	rootCmd.AddCommand(newDeleteCmd(l))
	rootCmd.AddCommand(newDescribeCmd(l))
	rootCmd.AddCommand(newVersionCmd(l))

	return rootCmd
}

func initFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs")
	rootCmd.PersistentFlags().Bool("json", false, "Set output type to JSON")
	rootCmd.PersistentFlags().String("accounts-file", "", "Path to the registered accounts file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))             //nolint:errcheck,gosec
	viper.BindPFlag("accounts-file", rootCmd.PersistentFlags().Lookup("accounts-file")) //nolint:errcheck,gosec

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
