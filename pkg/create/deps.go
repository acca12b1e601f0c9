package create

import (
	"context"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
	"github.com/percona/percona-mongo-explorer/pkg/prompt"
)

type accountStore interface {
	Resolve(name, connectionString string, emulator bool) (mongo.Account, error)
}

type sessionOpener interface {
	Open(ctx context.Context, a mongo.Account) (mongo.Session, error)
}

// Prompter asks the user for missing values.
type Prompter interface {
	Input(message string, validate prompt.ValidateFunc) (string, error)
}
