package list

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

type mockAccountStore struct {
	mock.Mock
}

func (_m *mockAccountStore) List() ([]mongo.Account, error) {
	ret := _m.Called()

	var r0 []mongo.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]mongo.Account)
	}

	return r0, ret.Error(1)
}

func (_m *mockAccountStore) Resolve(name, connectionString string, emulator bool) (mongo.Account, error) {
	ret := _m.Called(name, connectionString, emulator)
	return ret.Get(0).(mongo.Account), ret.Error(1)
}

type mockDatabaseLister struct {
	mock.Mock
}

func (_m *mockDatabaseLister) List(ctx context.Context, a mongo.Account) ([]mongo.Database, error) {
	ret := _m.Called(ctx, a)

	var r0 []mongo.Database
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]mongo.Database)
	}

	return r0, ret.Error(1)
}

// fakeConnector serves a fixed set of databases and collections.
type fakeConnector struct {
	collections map[string][]string
	order       []string
}

func (f *fakeConnector) Connect(context.Context, mongo.Account) (mongo.Session, error) {
	return f, nil
}

func (f *fakeConnector) ListDatabases(context.Context) ([]mongo.Database, error) {
	res := make([]mongo.Database, 0, len(f.order))
	for _, name := range f.order {
		res = append(res, mongo.Database{Name: name, Empty: len(f.collections[name]) == 0})
	}

	return res, nil
}

func (f *fakeConnector) ListCollections(_ context.Context, database string) ([]string, error) {
	return f.collections[database], nil
}

func (f *fakeConnector) CreateCollection(context.Context, string, string) error {
	return nil
}

func (f *fakeConnector) BuildInfo(context.Context) (*mongo.BuildInfo, error) {
	return &mongo.BuildInfo{Version: "7.0.2"}, nil
}

func (f *fakeConnector) Close(context.Context) error {
	return nil
}
