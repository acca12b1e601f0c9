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

// Package accounts persists registered accounts.
package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/percona/percona-mongo-explorer/pkg/mongo"
)

var (
	// ErrNotFound is returned when an account is not registered.
	ErrNotFound = errors.New("account not found")
	// ErrExists is returned when an account with the same name is registered.
	ErrExists = errors.New("account already exists")
)

// File holds registered accounts in the format as stored on the filesystem.
type File struct {
	Accounts []mongo.Account `yaml:"accounts,omitempty"`
}

// Store reads and writes the accounts file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the file at path.
// An empty path selects the default location in the user's home directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	return &Store{path: path}, nil
}

// DefaultPath returns the default location of the accounts file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Join(err, errors.New("could not find user's home directory"))
	}

	return filepath.Join(homeDir, ".percona-mongo-explorer", "accounts.yaml"), nil
}

// List returns registered accounts sorted by name.
func (s *Store) List() ([]mongo.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(f.Accounts, func(i, j int) bool {
		return f.Accounts[i].Name < f.Accounts[j].Name
	})

	return f.Accounts, nil
}

// Get returns the account registered under name.
func (s *Store) Get(name string) (mongo.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return mongo.Account{}, err
	}

	for _, a := range f.Accounts {
		if a.Name == name {
			return a, nil
		}
	}

	return mongo.Account{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Resolve returns an ad-hoc account if a connection string is provided and the
// registered account called name otherwise.
func (s *Store) Resolve(name, connectionString string, emulator bool) (mongo.Account, error) {
	if connectionString != "" {
		return mongo.Account{
			Name:             name,
			ConnectionString: connectionString,
			Emulator:         emulator || mongo.IsEmulatorConnectionString(connectionString),
		}, nil
	}

	if name == "" {
		return mongo.Account{}, fmt.Errorf("%w: an account name or a connection string is required", mongo.ErrConfiguration)
	}

	return s.Get(name)
}

// Add registers a new account.
func (s *Store) Add(a mongo.Account) error {
	if a.Name == "" {
		return errors.New("account name is required")
	}
	if a.ConnectionString == "" {
		return fmt.Errorf("%w: connection string is empty", mongo.ErrConfiguration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}

	for _, existing := range f.Accounts {
		if existing.Name == a.Name {
			return fmt.Errorf("%w: %q", ErrExists, a.Name)
		}
	}
	f.Accounts = append(f.Accounts, a)

	return s.write(f)
}

// Remove unregisters the account stored under name.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}

	kept := make([]mongo.Account, 0, len(f.Accounts))
	for _, a := range f.Accounts {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(f.Accounts) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	f.Accounts = kept

	return s.write(f)
}

func (s *Store) read() (*File, error) {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Join(err, errors.New("could not read accounts file"))
	}

	parsed := &File{}
	if len(data) != 0 {
		if err := yaml.Unmarshal(data, parsed); err != nil {
			return nil, errors.Join(err, errors.New("could not parse accounts file"))
		}
	}

	return parsed, nil
}

func (s *Store) write(f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.Join(err, errors.New("could not marshal accounts"))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(err, errors.New("could not create config directory"))
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Join(err, errors.New("could not update accounts file"))
	}

	return nil
}
