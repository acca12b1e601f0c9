package list

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

// Accounts implements the main logic for commands.
type Accounts struct {
	store accountStore
	l     *zap.SugaredLogger
}

type (
	// AccountsList stores registered accounts.
	AccountsList []AccountInfo

	// AccountInfo describes a registered account with its password redacted.
	AccountInfo struct {
		Name             string `json:"name"`
		ConnectionString string `json:"connectionString"`
		Emulator         bool   `json:"emulator"`
	}
)

// String returns string result of accounts list.
func (a AccountsList) String() string {
	out := make([]string, 0, len(a))
	for _, acc := range a {
		line := fmt.Sprintf("%s\t%s", acc.Name, acc.ConnectionString)
		if acc.Emulator {
			line += "\t(emulator)"
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// NewAccounts returns a new Accounts struct.
func NewAccounts(store accountStore, l *zap.SugaredLogger) *Accounts {
	return &Accounts{
		store: store,
		l:     l.With("component", "list/accounts"),
	}
}

// Run runs the accounts list command.
func (a *Accounts) Run() (AccountsList, error) {
	accounts, err := a.store.List()
	if err != nil {
		return nil, err
	}

	res := make(AccountsList, 0, len(accounts))
	for _, acc := range accounts {
		res = append(res, AccountInfo{
			Name:             acc.Name,
			ConnectionString: mongo.RedactConnectionString(acc.ConnectionString),
			Emulator:         acc.Emulator,
		})
	}

	return res, nil
}
