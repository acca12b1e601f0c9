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

// Package create holds the main logic for create commands.
package create

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
	"github.com/percona/percona-mongo-explorer/pkg/prompt"
)

// ErrInvalidName is returned when a name provided as a flag is invalid.
var ErrInvalidName = errors.New("invalid name")

// Database implements the logic for the database command.
type Database struct {
	config   DatabaseConfig
	store    accountStore
	opener   sessionOpener
	prompter Prompter
	l        *zap.SugaredLogger
}

type (
	// DatabaseConfig stores configuration for the database command.
	DatabaseConfig struct {
		Account          string
		ConnectionString string `mapstructure:"connection-string"`
		Emulator         bool

		// Name of the new database. Prompted for if empty.
		Name string
		// Collection is created in the new database since MongoDB only
		// persists databases holding at least one collection.
		// Prompted for if empty.
		Collection string
	}

	// CreatedDatabase describes the outcome of the database command.
	CreatedDatabase struct {
		Database   string `json:"database"`
		Collection string `json:"collection"`
	}
)

// String returns string result of the database command.
func (c CreatedDatabase) String() string {
	return fmt.Sprintf("Created collection %q in database %q", c.Collection, c.Database)
}

// NewDatabase returns a new Database struct.
func NewDatabase(
	c DatabaseConfig,
	store accountStore,
	opener sessionOpener,
	prompter Prompter,
	l *zap.SugaredLogger,
) *Database {
	return &Database{
		config:   c,
		store:    store,
		opener:   opener,
		prompter: prompter,
		l:        l.With("component", "create/database"),
	}
}

// Run runs the database command.
func (d *Database) Run(ctx context.Context) (*CreatedDatabase, error) {
	a, err := d.store.Resolve(d.config.Account, d.config.ConnectionString, d.config.Emulator)
	if err != nil {
		return nil, err
	}

	name, err := d.resolveName(d.config.Name, "Database name:", mongo.ValidateDatabaseName)
	if err != nil {
		return nil, err
	}

	collection, err := d.resolveName(d.config.Collection, "Collection name:", mongo.ValidateCollectionName)
	if err != nil {
		return nil, err
	}

	sess, err := d.opener.Open(ctx, a)
	if err != nil {
		return nil, err
	}
	defer mongo.Release(ctx, sess)

	d.l.Infof("Creating collection %q in database %q", collection, name)
	if err := sess.CreateCollection(ctx, name, collection); err != nil {
		return nil, fmt.Errorf("could not create collection %q in database %q: %w", collection, name, err)
	}

	return &CreatedDatabase{Database: name, Collection: collection}, nil
}

func (d *Database) resolveName(value, message string, validate prompt.ValidateFunc) (string, error) {
	if value != "" {
		if msg := validate(value); msg != "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidName, msg)
		}
		return value, nil
	}

	answer, err := d.prompter.Input(message, validate)
	if err != nil {
		return "", err
	}

	// Prompters are not required to enforce validation.
	if msg := validate(answer); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, msg)
	}

	return answer, nil
}
