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


package main

import (
	"context"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/addressbook"
	"github.com/tempo-labs/tempo-actions/chain"
	"github.com/tempo-labs/tempo-actions/currency"
	"github.com/tempo-labs/tempo-actions/log"
)

// env is what a command needs to talk to the chain.
type env struct {
	client     tempo.ChainClient
	book       tempo.AddressBook // nil if no address book is configured.
	currencies *currency.Registry
	close      func()
}

type connectFunc func(cfg tempo.ClientConfig) (*env, error)

// connect initializes logging, loads the address book and dials the node.
func connect(cfg tempo.ClientConfig) (*env, error) {
	if err := log.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, errors.WithMessage(err, "initializing logger")
	}
	var book tempo.AddressBook
	if cfg.AddressBook != "" {
		b, err := addressbook.New(cfg.AddressBook)
		if err != nil {
			return nil, err
		}
		book = b
	}
	client, err := chain.Dial(cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		client:     client,
		book:       book,
		currencies: currency.NewRegistry(),
		close:      client.Close,
	}, nil
}

func (e *env) bookReader() tempo.AddressBookReader {
	if e.book == nil {
		return nil
	}
	return e.book
}

func (e *env) token(s string) (common.Address, error) {
	return addressbook.Resolve(e.bookReader(), s, tempo.KindToken)
}

func (e *env) account(s string) (common.Address, error) {
	return addressbook.Resolve(e.bookReader(), s, tempo.KindAccount)
}

// name returns the alias of the address if it is in the address book and
// the hex address otherwise.
func (e *env) name(addr common.Address) string {
	if e.book != nil {
		if entry, ok := e.book.ReadByAddress(addr); ok {
			return entry.Alias
		}
	}
	return addr.Hex()
}

func (e *env) parseAmount(ctx context.Context, tokenAddr common.Address, s string) (*big.Int, error) {
	cur, err := e.currencies.Load(ctx, e.client, tokenAddr)
	if err != nil {
		return nil, err
	}
	return cur.Parse(s)
}

func (e *env) printAmount(ctx context.Context, tokenAddr common.Address, amount *big.Int) string {
	cur, err := e.currencies.Load(ctx, e.client, tokenAddr)
	if err != nil {
		return amount.String()
	}
	return cur.Print(amount) + " " + cur.Symbol()
}

// parseUint parses a base unit amount or an id.
func parseUint(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, tempo.NewInvalidArgumentError(name, s, "non negative integer")
	}
	return v, nil
}

func parsePolicyID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, tempo.NewInvalidArgumentError("policy id", s, "non negative integer")
	}
	return id, nil
}

func parseBool(name, s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, tempo.NewInvalidArgumentError(name, s, "true or false")
	}
	return v, nil
}
