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


package addressbook

import (
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/chain"
)

// cache holds the entries indexed by both alias and address. The methods
// defined over it are safe for concurrent access.
type cache struct {
	mutex          sync.RWMutex
	entriesByAlias map[string]tempo.Entry
	aliasByAddr    map[common.Address]string
}

// newCache indexes the given entries by alias and address. The address
// strings are decoded and the kinds are validated.
func newCache(entriesByAlias map[string]tempo.Entry) (*cache, error) {
	c := &cache{
		entriesByAlias: make(map[string]tempo.Entry, len(entriesByAlias)),
		aliasByAddr:    make(map[common.Address]string, len(entriesByAlias)),
	}
	for alias, e := range entriesByAlias {
		if err := c.write(alias, e); err != nil {
			return nil, errors.WithMessagef(err, "entry %s", alias)
		}
	}
	return c, nil
}

func parseEntry(alias string, e tempo.Entry) (tempo.Entry, error) {
	if alias == "" {
		return tempo.Entry{}, tempo.NewInvalidArgumentError("alias", alias, "non empty")
	}
	if e.Kind != tempo.KindToken && e.Kind != tempo.KindAccount {
		return tempo.Entry{}, tempo.NewInvalidArgumentError("kind", string(e.Kind), "token or account")
	}
	addr, err := chain.ParseAddr(e.AddressString)
	if err != nil {
		return tempo.Entry{}, err
	}
	e.Alias = alias
	e.Address = addr
	e.AddressString = addr.Hex()
	return e, nil
}

// ReadByAlias returns the entry with the given alias.
func (c *cache) ReadByAlias(alias string) (_ tempo.Entry, isPresent bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	e, isPresent := c.entriesByAlias[alias]
	return e, isPresent
}

// ReadByAddress returns the entry with the given address.
func (c *cache) ReadByAddress(addr common.Address) (_ tempo.Entry, isPresent bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	alias, isPresent := c.aliasByAddr[addr]
	if !isPresent {
		return tempo.Entry{}, false
	}
	return c.entriesByAlias[alias], true
}

// Write adds the entry under the alias. Returns an error if the alias or the
// address is already used, or if the entry is invalid.
func (c *cache) Write(alias string, e tempo.Entry) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.write(alias, e)
}

func (c *cache) write(alias string, e tempo.Entry) error {
	e, err := parseEntry(alias, e)
	if err != nil {
		return err
	}
	if old, ok := c.entriesByAlias[alias]; ok {
		if old.Address == e.Address && old.Kind == e.Kind {
			return errors.New("entry already present in address book")
		}
		return errors.New("alias already used by another address in address book")
	}
	if other, ok := c.aliasByAddr[e.Address]; ok {
		return errors.Errorf("address already present in address book as %s", other)
	}
	c.entriesByAlias[alias] = e
	c.aliasByAddr[e.Address] = alias
	return nil
}

// Delete removes the entry with the given alias. Returns an error if it is
// not found.
func (c *cache) Delete(alias string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	e, ok := c.entriesByAlias[alias]
	if !ok {
		return errors.New("entry not found in address book")
	}
	delete(c.entriesByAlias, alias)
	delete(c.aliasByAddr, e.Address)
	return nil
}

// Entries returns all entries sorted by alias.
func (c *cache) Entries() []tempo.Entry {
	c.mutex.RLock()
	entries := make([]tempo.Entry, 0, len(c.entriesByAlias))
	for _, e := range c.entriesByAlias {
		entries = append(entries, e)
	}
	c.mutex.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Alias < entries[j].Alias })
	return entries
}
