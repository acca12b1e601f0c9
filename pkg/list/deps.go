package list

import (
	"context"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

type accountStore interface {
	List() ([]mongo.Account, error)
	Resolve(name, connectionString string, emulator bool) (mongo.Account, error)
}

type databaseLister interface {
	List(ctx context.Context, a mongo.Account) ([]mongo.Database, error)
}
