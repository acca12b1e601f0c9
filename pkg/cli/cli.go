// Package cli wires dependencies shared by the commands.
package cli

import (
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/config"
	"github.com/percona/percona-mongo-explorer/pkg/accounts"
	"github.com/percona/percona-mongo-explorer/pkg/logger"
	"github.com/percona/percona-mongo-explorer/pkg/mongo"
	"github.com/percona/percona-mongo-explorer/pkg/prompt"
)

// CLI holds dependencies shared by the commands.
type CLI struct {
	Store    *accounts.Store
	Lister   *mongo.Lister
	Prompter *prompt.Survey

	config *config.AppConfig
	l      *zap.SugaredLogger
}

// New returns a new CLI.
func New(c *config.AppConfig, l *zap.SugaredLogger) (*CLI, error) {
	store, err := accounts.NewStore(c.AccountsFile)
	if err != nil {
		return nil, err
	}

	var opts []mongo.DriverOption
	if c.Verbose {
		opts = append(opts, mongo.WithLogSink(logger.DriverSink(l)))
	}

	cli := &CLI{
		Store:    store,
		Lister:   mongo.NewLister(mongo.NewDriverConnector(opts...)),
		Prompter: prompt.NewSurvey(),
		config:   c,
		l:        l.With("component", "cli"),
	}
	cli.l.Debugw("Initialized", "accounts-file", c.AccountsFile)

	return cli, nil
}

// MustNew is like New but exits the process if the cli cannot be initialized.
func MustNew(l *zap.SugaredLogger) *CLI {
	c, err := config.ParseConfig()
	if err != nil {
		l.Fatalf("Could not parse configuration: %s", err)
	}

	cli, err := New(c, l)
	if err != nil {
		l.Fatal(err)
	}

	return cli
}
