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

// NewTreeCmd returns a new tree command.
func NewTreeCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "tree",
		Run: func(cmd *cobra.Command, args []string) {
			initTreeViperFlags(cmd)

			c, err := parseTreeConfig()
			if err != nil {
				os.Exit(1)
			}

			deps := cli.MustNew(l)
			command := list.NewTree(*c, deps.Store, deps.Lister, l)
			res, err := command.Run(cmd.Context())
			if err != nil {
				output.PrintError(err, l)
				os.Exit(1)
			}

			output.PrintOutput(cmd, l, res)
		},
	}

	initTreeFlags(cmd)

	return cmd
}

func initTreeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("account", "a", "", "Name of a registered account")
	cmd.Flags().String("connection-string", "", "Connection string of an account which is not registered")
	cmd.Flags().Bool("emulator", false, "Connection string points at a local emulator")
	cmd.MarkFlagsMutuallyExclusive("account", "connection-string")
}

func initTreeViperFlags(cmd *cobra.Command) {
	viper.BindPFlag("account", cmd.Flags().Lookup("account"))                     //nolint:errcheck,gosec
	viper.BindPFlag("connection-string", cmd.Flags().Lookup("connection-string")) //nolint:errcheck,gosec
	viper.BindPFlag("emulator", cmd.Flags().Lookup("emulator"))                   //nolint:errcheck,gosec
}

func parseTreeConfig() (*list.TreeConfig, error) {
	c := &list.TreeConfig{}
	err := viper.Unmarshal(c)
	return c, err
}
