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

// Package add provides add sub-commands.
package add

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/add"
	"github.com/percona/percona-mongo-explorer/pkg/cli"
	"github.com/percona/percona-mongo-explorer/pkg/output"
)

// NewAccountCmd returns a new account command.
func NewAccountCmd(l *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use: "account",
		Run: func(cmd *cobra.Command, args []string) {
			initAccountViperFlags(cmd)

			c, err := parseAccountConfig()
			if err != nil {
				os.Exit(1)
			}

			deps := cli.MustNew(l)
			if _, err := add.NewAccount(*c, deps.Store, l).Run(); err != nil {
				output.PrintError(err, l)
				os.Exit(1)
			}
		},
	}

	initAccountFlags(cmd)

	return cmd
}

func initAccountFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Account name")
	cmd.MarkFlagRequired("name") //nolint:errcheck,gosec
	cmd.Flags().String("connection-string", "", "Connection string of the account")
	cmd.MarkFlagRequired("connection-string") //nolint:errcheck,gosec
	cmd.Flags().Bool("emulator", false, "Connection string points at a local emulator")
}

func initAccountViperFlags(cmd *cobra.Command) {
	viper.BindPFlag("name", cmd.Flags().Lookup("name"))                           //nolint:errcheck,gosec
	viper.BindPFlag("connection-string", cmd.Flags().Lookup("connection-string")) //nolint:errcheck,gosec
	viper.BindPFlag("emulator", cmd.Flags().Lookup("emulator"))                   //nolint:errcheck,gosec
}

func parseAccountConfig() (*add.AccountConfig, error) {
	c := &add.AccountConfig{}
	err := viper.Unmarshal(c)
	return c, err
}
