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

package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	adminDatabase = "admin"
	closeTimeout  = 10 * time.Second
)

// Lister lists databases of an account.
type Lister struct {
	connector Connector
}

// NewLister returns a new Lister.
func NewLister(connector Connector) *Lister {
	return &Lister{connector: connector}
}

// List returns databases of the account in the order reported by the server.
//
// If the connection string names a database the account is scoped to it and
// the server is not asked, since listing may need privileges the user lacks.
// Emulator connection strings always name "admin" so they are never scoped.
func (l *Lister) List(ctx context.Context, a Account) ([]Database, error) {
	sess, err := l.Open(ctx, a)
	if err != nil {
		return nil, err
	}
	defer Release(ctx, sess)

	if !a.Emulator {
		if name := DatabaseNameFromConnectionString(a.ConnectionString); name != "" {
			return []Database{{Name: name}}, nil
		}
	}

	dbs, err := sess.ListDatabases(ctx)
	if err != nil {
		return nil, wrapOperationError(a, err)
	}

	return filterDatabases(dbs), nil
}

// Open validates the account and opens a session to it.
// The caller is responsible for releasing the session.
func (l *Lister) Open(ctx context.Context, a Account) (Session, error) {
	if a.ConnectionString == "" {
		return nil, fmt.Errorf("%w: connection string is empty", ErrConfiguration)
	}

	sess, err := l.connector.Connect(ctx, a)
	if err != nil {
		return nil, newConnectionError(a, err)
	}

	return sess, nil
}

// Release closes the session. Errors are discarded so they never replace the
// result of the operation the session was opened for.
func Release(ctx context.Context, sess Session) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	_ = sess.Close(ctx)
}

// filterDatabases hides the empty admin database.
func filterDatabases(dbs []Database) []Database {
	res := make([]Database, 0, len(dbs))
	for _, db := range dbs {
		if db.Empty && strings.EqualFold(db.Name, adminDatabase) {
			continue
		}
		res = append(res, db)
	}

	return res
}
