// Package add holds the main logic for add commands.
package add

import "github.com/percona/percona-mongo-explorer/pkg/mongo"

type accountAdder interface {
	Add(a mongo.Account) error
}
