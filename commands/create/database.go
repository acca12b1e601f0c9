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

// Package create provides create sub-commands.
package create

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/cli"
	"github.com/percona/percona-mongo-explorer/pkg/create"
	"github.com/percona/percona-mongo-explorer/pkg/output"
)

// NewDatabaseCmd returns a new database command.
func NewDatabaseCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "database",
		Aliases: []string{"db"},
		Run: func(cmd *cobra.Command, args []string) {
			initDatabaseViperFlags(cmd)

			c, err := parseDatabaseConfig()
			if err != nil {
				os.Exit(1)
			}

			deps := cli.MustNew(l)
			command := create.NewDatabase(*c, deps.Store, deps.Lister, deps.Prompter, l)
			res, err := command.Run(cmd.Context())
			if err != nil {
				output.PrintError(err, l)
				os.Exit(1)
			}

			output.PrintOutput(cmd, l, res)
		},
	}

	initDatabaseFlags(cmd)

	return cmd
}

func initDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Name of a registered account")
	cmd.Flags().String("connection-string", "", "Connection string of an account which is not registered")
	cmd.Flags().Bool("emulator", false, "Connection string points at a local emulator")
	cmd.MarkFlagsMutuallyExclusive("account", "connection-string")

	cmd.Flags().String("name", "", "Database name")
	cmd.Flags().String("collection", "", "Name of the first collection in the database")
}

func initDatabaseViperFlags(cmd *cobra.Command) {
	viper.BindPFlag("account", cmd.Flags().Lookup("account"))                     //nolint:errcheck,gosec
	viper.BindPFlag("connection-string", cmd.Flags().Lookup("connection-string")) //nolint:errcheck,gosec
	viper.BindPFlag("emulator", cmd.Flags().Lookup("emulator"))                   //nolint:errcheck,gosec

	viper.BindPFlag("name", cmd.Flags().Lookup("name"))             //nolint:errcheck,gosec
	viper.BindPFlag("collection", cmd.Flags().Lookup("collection")) //nolint:errcheck,gosec
}

func parseDatabaseConfig() (*create.DatabaseConfig, error) {
	c := &create.DatabaseConfig{}
	err := viper.Unmarshal(c)
	return c, err
}
