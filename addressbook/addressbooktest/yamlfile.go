// Copyright (c) 2026 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/tempo-labs/tempo-actions
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package addressbooktest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tempo-labs/tempo-actions"
)

// NewYAMLFile creates a file in a temporary directory containing the given
// entries and returns the path to it.
func NewYAMLFile(t *testing.T, entries ...tempo.Entry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "addressbook.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoErrorf(t, f.Close(), "closing address book file")
	}()

	byAlias := make(map[string]tempo.Entry, len(entries))
	for _, e := range entries {
		byAlias[e.Alias] = e
	}
	encoder := yaml.NewEncoder(f)
	require.NoErrorf(t, encoder.Encode(byAlias), "encoding entries")
	require.NoErrorf(t, encoder.Close(), "closing encoder")
	return path
}

// NewEntry returns an address book entry for the address.
func NewEntry(alias string, kind tempo.EntryKind, addr common.Address) tempo.Entry {
	return tempo.Entry{Alias: alias, Kind: kind, AddressString: addr.Hex(), Address: addr}
}
