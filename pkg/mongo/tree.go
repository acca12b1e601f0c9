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
)

// Node is an element of the account tree.
type Node interface {
	Name() string
	// Children lists the node's children. Leaves return nil.
	Children(ctx context.Context) ([]Node, error)
}

// AccountNode is the root of an account tree. Its children are databases.
type AccountNode struct {
	account Account
	lister  *Lister
}

// NewAccountNode returns a new AccountNode.
func NewAccountNode(a Account, lister *Lister) *AccountNode {
	return &AccountNode{account: a, lister: lister}
}

// Name returns the display name of the account.
func (n *AccountNode) Name() string {
	return n.account.AppName()
}

// Children lists databases of the account.
func (n *AccountNode) Children(ctx context.Context) ([]Node, error) {
	dbs, err := n.lister.List(ctx, n.account)
	if err != nil {
		return nil, err
	}

	res := make([]Node, 0, len(dbs))
	for _, db := range dbs {
		res = append(res, &DatabaseNode{account: n.account, lister: n.lister, name: db.Name})
	}

	return res, nil
}

// DatabaseNode is a database within an account. Its children are collections.
type DatabaseNode struct {
	account Account
	lister  *Lister
	name    string
}

// Name returns the database name.
func (n *DatabaseNode) Name() string {
	return n.name
}

// Children lists collections of the database.
func (n *DatabaseNode) Children(ctx context.Context) ([]Node, error) {
	sess, err := n.lister.Open(ctx, n.account)
	if err != nil {
		return nil, err
	}
	defer Release(ctx, sess)

	names, err := sess.ListCollections(ctx, n.name)
	if err != nil {
		return nil, wrapOperationError(n.account, err)
	}

	res := make([]Node, 0, len(names))
	for _, name := range names {
		res = append(res, CollectionNode(name))
	}

	return res, nil
}

// CollectionNode is a collection. It has no children.
type CollectionNode string

// Name returns the collection name.
func (n CollectionNode) Name() string {
	return string(n)
}

// Children returns nil.
func (n CollectionNode) Children(context.Context) ([]Node, error) {
	return nil, nil
}

// Walk visits node and its descendants depth first. depth is 0 for node.
func Walk(ctx context.Context, node Node, fn func(n Node, depth int) error) error {
	return walk(ctx, node, 0, fn)
}

func walk(ctx context.Context, node Node, depth int, fn func(n Node, depth int) error) error {
	if err := fn(node, depth); err != nil {
		return err
	}

	children, err := node.Children(ctx)
	if err != nil {
		return err
	}

	for _, c := range children {
		if err := walk(ctx, c, depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}
