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
	"crypto/tls"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DriverConnector opens sessions with the official MongoDB driver.
type DriverConnector struct {
	sink options.LogSink
}

// DriverOption configures a DriverConnector.
type DriverOption func(*DriverConnector)

// WithLogSink routes the driver's command log to sink.
func WithLogSink(sink options.LogSink) DriverOption {
	return func(d *DriverConnector) {
		d.sink = sink
	}
}

// NewDriverConnector returns a new DriverConnector.
func NewDriverConnector(opts ...DriverOption) *DriverConnector {
	d := &DriverConnector{}
	for _, o := range opts {
		o(d)
	}

	return d
}

// Connect opens a client to the account.
func (d *DriverConnector) Connect(ctx context.Context, a Account) (Session, error) {
	uri := a.ConnectionString
	if a.Emulator {
		uri = normalizeEmulatorConnectionString(uri)
	}

	opts := options.Client().ApplyURI(uri).SetAppName(a.AppName())
	if a.Emulator {
		// The emulator serves a self-signed certificate.
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}
	if d.sink != nil {
		opts.SetLoggerOptions(
			options.Logger().
				SetSink(d.sink).
				SetComponentLevel(options.LogComponentCommand, options.LogLevelDebug),
		)
	}

	cl, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &driverSession{cl: cl}, nil
}

type driverSession struct {
	cl *mongo.Client
}

func (s *driverSession) ListDatabases(ctx context.Context) ([]Database, error) {
	res, err := s.cl.ListDatabases(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	dbs := make([]Database, 0, len(res.Databases))
	for _, spec := range res.Databases {
		dbs = append(dbs, Database{Name: spec.Name, Empty: spec.Empty})
	}

	return dbs, nil
}

func (s *driverSession) ListCollections(ctx context.Context, database string) ([]string, error) {
	return s.cl.Database(database).ListCollectionNames(ctx, bson.D{})
}

func (s *driverSession) CreateCollection(ctx context.Context, database, collection string) error {
	return s.cl.Database(database).CreateCollection(ctx, collection)
}

func (s *driverSession) BuildInfo(ctx context.Context) (*BuildInfo, error) {
	info := &BuildInfo{}
	err := s.cl.Database(adminDatabase).RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}}).Decode(info)
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (s *driverSession) Close(ctx context.Context) error {
	return s.cl.Disconnect(ctx)
}
