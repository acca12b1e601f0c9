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
	"net"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	// emulatorKey is the well-known, publicly documented key of the local emulator.
	emulatorKey  = "C2y6yDjf5/R+ob0N8A7Cgv30VRDJIWEHLM+4QDU5DE2nQ9nDuVTqobD4b8mGGyPMbIZnqyMsEcaGQy67XIw/Jw=="
	emulatorPort = "10255"

	schemeMongoDB    = "mongodb://"
	schemeMongoDBSRV = "mongodb+srv://"
)

// DatabaseNameFromConnectionString returns the database encoded in the path of
// a connection string. An empty string is returned if the connection string
// has no database or cannot be parsed.
func DatabaseNameFromConnectionString(cs string) string {
	// The database is independent of the scheme. Parsing an SRV URI
	// would trigger a DNS lookup so it is parsed as a plain one.
	if strings.HasPrefix(cs, schemeMongoDBSRV) {
		cs = schemeMongoDB + strings.TrimPrefix(cs, schemeMongoDBSRV)
	}

	parsed, err := connstring.Parse(cs)
	if err != nil {
		return ""
	}

	return parsed.Database
}

// IsEmulatorConnectionString returns true if the connection string points at
// a local Cosmos DB emulator.
func IsEmulatorConnectionString(cs string) bool {
	if strings.Contains(cs, emulatorKey) {
		return true
	}

	host, port, err := net.SplitHostPort(hostPart(cs))
	if err != nil {
		return false
	}

	return port == emulatorPort && (host == "localhost" || host == "127.0.0.1")
}

// normalizeEmulatorConnectionString escapes the user info of an emulator
// connection string. The emulator key contains unescaped slashes which the
// driver rejects.
func normalizeEmulatorConnectionString(cs string) string {
	scheme := schemeMongoDB
	if strings.HasPrefix(cs, schemeMongoDBSRV) {
		scheme = schemeMongoDBSRV
	}
	if !strings.HasPrefix(cs, scheme) {
		return cs
	}

	rest := strings.TrimPrefix(cs, scheme)
	at := strings.LastIndex(rest, "@")
	if at == -1 {
		return cs
	}

	user, password, ok := strings.Cut(rest[:at], ":")
	userInfo := url.PathEscape(unescape(user))
	if ok {
		userInfo += ":" + url.PathEscape(unescape(password))
	}

	return scheme + userInfo + rest[at:]
}

// RedactConnectionString hides the password of a connection string.
func RedactConnectionString(cs string) string {
	scheme := schemeMongoDB
	if strings.HasPrefix(cs, schemeMongoDBSRV) {
		scheme = schemeMongoDBSRV
	}
	if !strings.HasPrefix(cs, scheme) {
		return cs
	}

	rest := strings.TrimPrefix(cs, scheme)
	at := strings.LastIndex(rest, "@")
	if at == -1 {
		return cs
	}

	user, _, ok := strings.Cut(rest[:at], ":")
	if !ok {
		return cs
	}

	return scheme + user + ":****" + rest[at:]
}

func unescape(s string) string {
	u, err := url.PathUnescape(s)
	if err != nil {
		return s
	}

	return u
}

func hostPart(cs string) string {
	cs = strings.TrimPrefix(cs, schemeMongoDBSRV)
	cs = strings.TrimPrefix(cs, schemeMongoDB)
	if at := strings.LastIndex(cs, "@"); at != -1 {
		cs = cs[at+1:]
	}
	if i := strings.IndexAny(cs, "/?"); i != -1 {
		cs = cs[:i]
	}
	if i := strings.Index(cs, ","); i != -1 {
		cs = cs[:i]
	}

	return cs
}
