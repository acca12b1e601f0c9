// Package describe holds the main logic for describe commands.
package describe

import (
	"context"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

type accountStore interface {
	Resolve(name, connectionString string, emulator bool) (mongo.Account, error)
}

type sessionOpener interface {
	Open(ctx context.Context, a mongo.Account) (mongo.Session, error)
}
