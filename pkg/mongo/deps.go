package mongo

import "context"

// Connector opens sessions to an account.
type Connector interface {
	Connect(ctx context.Context, a Account) (Session, error)
}

// Session is an open connection to an account.
type Session interface {
	ListDatabases(ctx context.Context) ([]Database, error)
	ListCollections(ctx context.Context, database string) ([]string, error)
	CreateCollection(ctx context.Context, database, collection string) error
	BuildInfo(ctx context.Context) (*BuildInfo, error)
	Close(ctx context.Context) error
}

// BuildInfo stores the subset of the buildInfo command response we use.
type BuildInfo struct {
	Version    string `bson:"version"`
	GitVersion string `bson:"gitVersion"`
}
