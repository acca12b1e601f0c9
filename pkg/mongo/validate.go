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
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minDatabaseNameLength = 1
	maxDatabaseNameLength = 63

	systemCollectionPrefix = "system."
)

// "#" and "?" are rejected by Cosmos DB on top of the MongoDB restrictions.
var forbiddenDatabaseChars = regexp.MustCompile(`[/\\. "$#?]`)

// ValidateDatabaseName returns a message describing why name cannot be used as
// a database name. An empty string means the name is valid.
func ValidateDatabaseName(name string) string {
	if l := utf8.RuneCountInString(name); l < minDatabaseNameLength || l > maxDatabaseNameLength {
		return fmt.Sprintf("Database name must be between %d and %d characters.", minDatabaseNameLength, maxDatabaseNameLength)
	}

	if forbiddenDatabaseChars.MatchString(name) {
		return "Database name cannot contain these characters - `/\\. \"$#?`"
	}

	return ""
}

// ValidateCollectionName returns a message describing why name cannot be used
// as a collection name. An empty string means the name is valid.
func ValidateCollectionName(name string) string {
	switch {
	case name == "":
		return "Collection name cannot be empty."
	case strings.HasPrefix(name, systemCollectionPrefix):
		return fmt.Sprintf("%q prefix is reserved for internal use.", systemCollectionPrefix)
	case strings.Contains(name, "$"):
		return "Collection name cannot contain $."
	case strings.ContainsRune(name, 0):
		return "Collection name cannot contain the null character."
	}

	return ""
}
