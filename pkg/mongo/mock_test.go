package mongo

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

type mockConnector struct {
	mock.Mock
}

func (_m *mockConnector) Connect(ctx context.Context, a Account) (Session, error) {
	ret := _m.Called(ctx, a)

	var r0 Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(Session)
	}

	return r0, ret.Error(1)
}

type mockSession struct {
	mock.Mock
}

func (_m *mockSession) ListDatabases(ctx context.Context) ([]Database, error) {
	ret := _m.Called(ctx)

	var r0 []Database
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Database)
	}

	return r0, ret.Error(1)
}

func (_m *mockSession) ListCollections(ctx context.Context, database string) ([]string, error) {
	ret := _m.Called(ctx, database)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

func (_m *mockSession) CreateCollection(ctx context.Context, database, collection string) error {
	ret := _m.Called(ctx, database, collection)
	return ret.Error(0)
}

func (_m *mockSession) BuildInfo(ctx context.Context) (*BuildInfo, error) {
	ret := _m.Called(ctx)

	var r0 *BuildInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*BuildInfo)
	}

	return r0, ret.Error(1)
}

func (_m *mockSession) Close(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
