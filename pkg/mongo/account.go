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

// Package mongo lists and manages databases of MongoDB compatible accounts.
package mongo

// DefaultAppName is reported to the server when an account has no display name.
const DefaultAppName = "percona-mongo-explorer"

type (
	// Account describes a MongoDB compatible account.
	Account struct {
		// ConnectionString stores the mongodb:// or mongodb+srv:// URI of the account.
		ConnectionString string `json:"connectionString" yaml:"connectionString"`
		// Name stores an optional display name.
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
		// Emulator is true if the account points at a local Cosmos DB emulator.
		// The emulator's connection string does not follow the standard format.
		Emulator bool `json:"emulator,omitempty" yaml:"emulator,omitempty"`
	}

	// Database describes a database as reported by the server.
	Database struct {
		Name  string `json:"name"`
		Empty bool   `json:"empty"`
	}
)

// AppName returns the client identifier reported to the server.
func (a Account) AppName() string {
	if a.Name != "" {
		return a.Name
	}

	return DefaultAppName
}
