package list

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

// Tree implements the main logic for commands.
type Tree struct {
	config TreeConfig
	store  accountStore
	lister *mongo.Lister
	l      *zap.SugaredLogger
}

type (
	// TreeConfig stores configuration for the tree command.
	TreeConfig struct {
		Account          string
		ConnectionString string `mapstructure:"connection-string"`
		Emulator         bool
	}

	// TreeLines stores an account tree in depth first order.
	TreeLines []TreeLine

	// TreeLine is a single element of an account tree.
	TreeLine struct {
		Depth int    `json:"depth"`
		Name  string `json:"name"`
	}
)

// String returns the tree indented by depth.
func (t TreeLines) String() string {
	out := make([]string, 0, len(t))
	for _, line := range t {
		out = append(out, strings.Repeat("  ", line.Depth)+line.Name)
	}

	return strings.Join(out, "\n")
}

// NewTree returns a new Tree struct.
func NewTree(c TreeConfig, store accountStore, lister *mongo.Lister, l *zap.SugaredLogger) *Tree {
	return &Tree{
		config: c,
		store:  store,
		lister: lister,
		l:      l.With("component", "list/tree"),
	}
}

// Run walks the account's databases and collections.
func (t *Tree) Run(ctx context.Context) (TreeLines, error) {
	a, err := t.store.Resolve(t.config.Account, t.config.ConnectionString, t.config.Emulator)
	if err != nil {
		return nil, err
	}

	var res TreeLines
	err = mongo.Walk(ctx, mongo.NewAccountNode(a, t.lister), func(n mongo.Node, depth int) error {
		name := n.Name()
		if depth == 0 {
			name = accountLabel(a)
		}
		res = append(res, TreeLine{Depth: depth, Name: name})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
