// percona-mongo-explorer
// Copyright (C) 2023 Percona LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package list holds logic for list commands.
package list

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/cli"
	"github.com/percona/percona-mongo-explorer/pkg/list"
	"github.com/percona/percona-mongo-explorer/pkg/output"
)

// NewDatabasesCmd returns a new databases command.
func NewDatabasesCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"database", "dbs", "db"},
		Run: func(cmd *cobra.Command, args []string) {
			initDatabasesViperFlags(cmd)

			c, err := parseDatabasesConfig()
			if err != nil {
				os.Exit(1)
			}

			deps := cli.MustNew(l)
			command := list.NewDatabases(*c, deps.Store, deps.Lister, l)
			res, err := command.Run(cmd.Context())
			if err != nil {
				output.PrintError(err, l)
				os.Exit(1)
			}

			output.PrintOutput(cmd, l, res)
		},
	}

	initDatabasesFlags(cmd)

	return cmd
}

func initDatabasesFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Name of a registered account")
	cmd.Flags().String("connection-string", "", "Connection string of an account which is not registered")
	cmd.Flags().Bool("emulator", false, "Connection string points at a local emulator")
	cmd.Flags().Bool("all", false, "List databases of all registered accounts")
	cmd.MarkFlagsMutuallyExclusive("account", "connection-string", "all")
}

func initDatabasesViperFlags(cmd *cobra.Command) {
	viper.BindPFlag("account", cmd.Flags().Lookup("account"))                     //nolint:errcheck,gosec
	viper.BindPFlag("connection-string", cmd.Flags().Lookup("connection-string")) //nolint:errcheck,gosec
	viper.BindPFlag("emulator", cmd.Flags().Lookup("emulator"))                   //nolint:errcheck,gosec
	viper.BindPFlag("all", cmd.Flags().Lookup("all"))                             //nolint:errcheck,gosec
}

func parseDatabasesConfig() (*list.DatabasesConfig, error) {
	c := &list.DatabasesConfig{}
	err := viper.Unmarshal(c)
	return c, err
}
