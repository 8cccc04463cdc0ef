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


// Package addressbook implements an address book that maps aliases to token
// and account addresses and is persisted as a yaml file.
package addressbook

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tempo-labs/tempo-actions"
)

// Provider is an address book backed by a yaml file. Changes are held in
// memory until UpdateStorage is called.
type Provider struct {
	*cache
	filePath string
}

// New reads the address book from the yaml file at filePath.
func New(filePath string) (*Provider, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening address book file")
	}
	defer f.Close() // nolint: errcheck	// file is only read.

	entries := make(map[string]tempo.Entry)
	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decoding address book file")
	}
	c, err := newCache(entries)
	if err != nil {
		return nil, err
	}
	return &Provider{cache: c, filePath: filePath}, nil
}

// UpdateStorage writes all entries to the address book file, overwriting
// its contents.
func (p *Provider) UpdateStorage() error {
	p.mutex.RLock()
	entries := make(map[string]tempo.Entry, len(p.entriesByAlias))
	for alias, e := range p.entriesByAlias {
		entries[alias] = e
	}
	p.mutex.RUnlock()

	f, err := os.OpenFile(p.filePath, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o600)
	if err != nil {
		return errors.Wrap(err, "opening address book file for writing")
	}
	encoder := yaml.NewEncoder(f)
	if err = encoder.Encode(entries); err != nil {
		f.Close() // nolint: errcheck, gosec	// encoding error is returned.
		return errors.Wrap(err, "encoding address book")
	}
	if err = encoder.Close(); err != nil {
		f.Close() // nolint: errcheck, gosec	// encoding error is returned.
		return errors.Wrap(err, "encoding address book")
	}
	return errors.Wrap(f.Close(), "closing address book file")
}

// Resolve returns the address for s, which is either a hex address or an
// alias in the address book. If kind is not empty, aliases of other kinds
// are rejected. The address book may be nil.
func Resolve(r tempo.AddressBookReader, s string, kind tempo.EntryKind) (common.Address, error) {
	if common.IsHexAddress(s) {
		return common.HexToAddress(s), nil
	}
	if r == nil {
		return common.Address{}, tempo.NewInvalidArgumentError("address", s, "hex address")
	}
	e, ok := r.ReadByAlias(s)
	if !ok {
		return common.Address{}, tempo.NewInvalidArgumentError("address", s, "hex address or known alias")
	}
	if kind != "" && e.Kind != kind {
		return common.Address{}, tempo.NewInvalidArgumentError("address", s, "alias of "+string(kind))
	}
	return e.Address, nil
}
