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
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/cli"
	"github.com/percona/percona-mongo-explorer/pkg/list"
	"github.com/percona/percona-mongo-explorer/pkg/output"
)

// NewAccountsCmd returns a new accounts command.
func NewAccountsCmd(l *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Run: func(cmd *cobra.Command, args []string) {
			deps := cli.MustNew(l)
			res, err := list.NewAccounts(deps.Store, l).Run()
			if err != nil {
				output.PrintError(err, l)
				os.Exit(1)
			}

			output.PrintOutput(cmd, l, res)
		},
	}
}
