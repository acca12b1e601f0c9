package add

import (
	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

// Account implements logic for the account command.
type Account struct {
	config AccountConfig
	adder  accountAdder
	l      *zap.SugaredLogger
}

// AccountConfig stores configuration for the account command.
type AccountConfig struct {
	Name             string
	ConnectionString string `mapstructure:"connection-string"`
	// Emulator marks the account as a local emulator. Well-known emulator
	// connection strings are detected without it.
	Emulator bool
}

// NewAccount returns a new Account struct.
func NewAccount(c AccountConfig, adder accountAdder, l *zap.SugaredLogger) *Account {
	return &Account{
		config: c,
		adder:  adder,
		l:      l.With("component", "add/account"),
	}
}

// Run registers the account.
func (a *Account) Run() (mongo.Account, error) {
	acc := mongo.Account{
		Name:             a.config.Name,
		ConnectionString: a.config.ConnectionString,
		Emulator:         a.config.Emulator || mongo.IsEmulatorConnectionString(a.config.ConnectionString),
	}
	if acc.Emulator && !a.config.Emulator {
		a.l.Infof("Detected emulator connection string for %q", acc.Name)
	}

	if err := a.adder.Add(acc); err != nil {
		return mongo.Account{}, err
	}

	a.l.Infof("Account %q has been added", acc.Name)

	return acc, nil
}
