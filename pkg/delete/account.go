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

package delete //nolint:predeclared

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Account implements logic for the account command.
type Account struct {
	config    AccountConfig
	remover   accountRemover
	confirmer Confirmer
	l         *zap.SugaredLogger
}

// AccountConfig stores configuration for the account command.
type AccountConfig struct {
	Name string

	// Force is true when we shall not prompt for removal.
	Force bool
}

// NewAccount returns a new Account struct.
func NewAccount(c AccountConfig, remover accountRemover, confirmer Confirmer, l *zap.SugaredLogger) *Account {
	cli := &Account{
		config:    c,
		remover:   remover,
		confirmer: confirmer,
		l:         l.With("component", "delete/account"),
	}

	return cli
}

// Run runs the account command.
func (a *Account) Run() error {
	if a.config.Name == "" {
		return errors.New("account name is required")
	}

	if !a.config.Force {
		ok, err := a.confirmer.Confirm(fmt.Sprintf("Are you sure you want to remove the %q account?", a.config.Name))
		if err != nil {
			return err
		}

		if !ok {
			a.l.Info("Exiting")
			return nil
		}
	}

	a.l.Infof("Removing %q account", a.config.Name)
	if err := a.remover.Remove(a.config.Name); err != nil {
		return err
	}

	a.l.Infof("Account %q successfully removed", a.config.Name)

	return nil
}
