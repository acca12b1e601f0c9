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

package describe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

// supportedServerVersions is the range of server versions the driver talks to.
const supportedServerVersions = ">= 3.6"

// Account implements the main logic for commands.
type Account struct {
	config AccountConfig
	store  accountStore
	opener sessionOpener
	l      *zap.SugaredLogger
}

type (
	// AccountConfig stores configuration for the account command.
	AccountConfig struct {
		Name             string
		ConnectionString string `mapstructure:"connection-string"`
		Emulator         bool
	}

	// AccountInfo describes an account and the server behind it.
	AccountInfo struct {
		Name             string `json:"name,omitempty"`
		ConnectionString string `json:"connectionString"`
		Emulator         bool   `json:"emulator"`
		// Database is set if the account is scoped to a single database.
		Database      string `json:"database,omitempty"`
		ServerVersion string `json:"serverVersion"`
		Supported     bool   `json:"supported"`
	}
)

// String returns string result of the account command.
func (a AccountInfo) String() string {
	out := []string{
		"Name: " + a.Name,
		"Connection string: " + a.ConnectionString,
		fmt.Sprintf("Emulator: %t", a.Emulator),
	}
	if a.Database != "" {
		out = append(out, "Database: "+a.Database)
	}
	out = append(out,
		"Server version: "+a.ServerVersion,
		fmt.Sprintf("Supported: %t", a.Supported),
	)

	return strings.Join(out, "\n")
}

// NewAccount returns a new Account struct.
func NewAccount(c AccountConfig, store accountStore, opener sessionOpener, l *zap.SugaredLogger) *Account {
	return &Account{
		config: c,
		store:  store,
		opener: opener,
		l:      l.With("component", "describe/account"),
	}
}

// Run runs the account command.
func (a *Account) Run(ctx context.Context) (*AccountInfo, error) {
	acc, err := a.store.Resolve(a.config.Name, a.config.ConnectionString, a.config.Emulator)
	if err != nil {
		return nil, err
	}

	sess, err := a.opener.Open(ctx, acc)
	if err != nil {
		return nil, err
	}
	defer mongo.Release(ctx, sess)

	info, err := sess.BuildInfo(ctx)
	if err != nil {
		return nil, errors.Join(err, errors.New("could not retrieve server build info"))
	}

	supported, err := isSupported(info.Version)
	if err != nil {
		return nil, err
	}
	if !supported {
		a.l.Warnf("Server version %s is not supported. Required %s", info.Version, supportedServerVersions)
	}

	res := &AccountInfo{
		Name:             acc.Name,
		ConnectionString: mongo.RedactConnectionString(acc.ConnectionString),
		Emulator:         acc.Emulator,
		ServerVersion:    info.Version,
		Supported:        supported,
	}
	if !acc.Emulator {
		res.Database = mongo.DatabaseNameFromConnectionString(acc.ConnectionString)
	}

	return res, nil
}

func isSupported(version string) (bool, error) {
	v, err := goversion.NewVersion(version)
	if err != nil {
		return false, errors.Join(err, fmt.Errorf("could not parse server version %q", version))
	}

	c, err := goversion.NewConstraint(supportedServerVersions)
	if err != nil {
		return false, err
	}

	// Prereleases such as 7.0.0-rc1 are judged by their core version.
	return c.Check(v.Core()), nil
}
