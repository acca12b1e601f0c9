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

// Package list holds the main logic for list commands.
package list

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

// maxConcurrentAccounts limits how many accounts are listed at once with --all.
const maxConcurrentAccounts = 4

// Databases implements the main logic for commands.
type Databases struct {
	config DatabasesConfig
	store  accountStore
	lister databaseLister
	l      *zap.SugaredLogger
}

type (
	// DatabasesConfig stores configuration for the databases command.
	DatabasesConfig struct {
		// Account is the name of a registered account.
		Account string
		// ConnectionString lists an account which is not registered.
		ConnectionString string `mapstructure:"connection-string"`
		// Emulator is true if ConnectionString points at a local emulator.
		Emulator bool
		// All is true if databases of all registered accounts shall be listed.
		All bool
	}
)

type (
	// DatabasesList stores databases per account.
	DatabasesList []AccountDatabases

	// AccountDatabases stores databases of a single account.
	AccountDatabases struct {
		Account   string           `json:"account"`
		Databases []mongo.Database `json:"databases"`
	}
)

// String returns string result of databases list.
func (d DatabasesList) String() string {
	out := make([]string, 0, len(d))
	for _, a := range d {
		if len(d) > 1 {
			out = append(out, "-----", a.Account, "-----")
		}

		for _, db := range a.Databases {
			out = append(out, db.Name)
		}
	}

	return strings.Join(out, "\n")
}

// NewDatabases returns a new Databases struct.
func NewDatabases(c DatabasesConfig, store accountStore, lister databaseLister, l *zap.SugaredLogger) *Databases {
	cli := &Databases{
		config: c,
		store:  store,
		lister: lister,
		l:      l.With("component", "list/databases"),
	}

	return cli
}

// Run runs the databases list command.
func (d *Databases) Run(ctx context.Context) (DatabasesList, error) {
	if d.config.All {
		return d.listAll(ctx)
	}

	a, err := d.store.Resolve(d.config.Account, d.config.ConnectionString, d.config.Emulator)
	if err != nil {
		return nil, err
	}

	dbs, err := d.list(ctx, a)
	if err != nil {
		return nil, err
	}

	return DatabasesList{{Account: accountLabel(a), Databases: dbs}}, nil
}

func (d *Databases) listAll(ctx context.Context) (DatabasesList, error) {
	accounts, err := d.store.List()
	if err != nil {
		return nil, err
	}

	res := make(DatabasesList, len(accounts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAccounts)
	for i, a := range accounts {
		i, a := i, a
		g.Go(func() error {
			dbs, err := d.list(gCtx, a)
			if err != nil {
				return fmt.Errorf("could not list databases of %q: %w", a.Name, err)
			}
			res[i] = AccountDatabases{Account: accountLabel(a), Databases: dbs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

func (d *Databases) list(ctx context.Context, a mongo.Account) ([]mongo.Database, error) {
	d.l.Debugw("Listing databases", "account", accountLabel(a), "emulator", a.Emulator)
	dbs, err := d.lister.List(ctx, a)
	if err != nil {
		return nil, err
	}
	d.l.Debugw("Listed databases", "account", accountLabel(a), "count", len(dbs))

	return dbs, nil
}

// accountLabel returns the name of a registered account or the redacted
// connection string of an ad-hoc one.
func accountLabel(a mongo.Account) string {
	if a.Name != "" {
		return a.Name
	}

	return mongo.RedactConnectionString(a.ConnectionString)
}
