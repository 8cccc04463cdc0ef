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


package currency

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/token"
)

// Registry holds the currencies of tokens indexed by token address.
//
// Symbols are not unique on chain, so several tokens may be registered with
// the same symbol. A slice keeps track of registered symbols because
// iterating over the map would return them in a different order each time.
type Registry struct {
	mtx        sync.RWMutex
	symbols    []string
	currencies map[common.Address]tempo.Currency
	tokens     map[string][]common.Address
}

// NewRegistry initializes an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		currencies: make(map[common.Address]tempo.Currency),
		tokens:     make(map[string][]common.Address),
	}
}

// Symbols returns the distinct symbols of all registered tokens in the order
// they were first registered.
func (r *Registry) Symbols() []string {
	r.mtx.RLock()
	symbols := make([]string, len(r.symbols))
	copy(symbols, r.symbols)
	r.mtx.RUnlock()
	return symbols
}

// IsRegistered checks if a currency is registered for the token.
func (r *Registry) IsRegistered(tokenAddr common.Address) bool {
	r.mtx.RLock()
	_, ok := r.currencies[tokenAddr]
	r.mtx.RUnlock()
	return ok
}

// Register creates a currency for the token and registers it.
//
// Returns an error if the token is already registered.
func (r *Registry) Register(tokenAddr common.Address, symbol string, decimals uint8) (tempo.Currency, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.currencies[tokenAddr]; ok {
		return nil, errors.Errorf("currency already registered for token %s", tokenAddr.Hex())
	}
	c := New(symbol, decimals)
	r.currencies[tokenAddr] = c
	if _, ok := r.tokens[symbol]; !ok {
		r.symbols = append(r.symbols, symbol)
	}
	r.tokens[symbol] = append(r.tokens[symbol], tokenAddr)
	return c, nil
}

// Currency returns the currency registered for the token. If none is
// registered, it returns nil.
func (r *Registry) Currency(tokenAddr common.Address) tempo.Currency {
	r.mtx.RLock()
	c := r.currencies[tokenAddr]
	r.mtx.RUnlock()
	return c
}

// Token returns the address of the token registered with the symbol.
//
// It returns false if no token or more than one token is registered with the
// symbol. Use Tokens to list all of them.
func (r *Registry) Token(symbol string) (common.Address, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	addrs := r.tokens[symbol]
	if len(addrs) != 1 {
		return common.Address{}, false
	}
	return addrs[0], true
}

// Tokens returns the addresses of all tokens registered with the symbol, in
// the order they were registered.
func (r *Registry) Tokens(symbol string) []common.Address {
	r.mtx.RLock()
	addrs := make([]common.Address, len(r.tokens[symbol]))
	copy(addrs, r.tokens[symbol])
	r.mtx.RUnlock()
	return addrs
}

// Load returns the currency of the token, reading the symbol and decimals
// from chain and registering it if this is the first use of the token.
func (r *Registry) Load(ctx context.Context, c tempo.ChainClient, tokenAddr common.Address) (tempo.Currency, error) {
	if cur := r.Currency(tokenAddr); cur != nil {
		return cur, nil
	}
	isToken, err := token.IsTIP20(ctx, c, tokenAddr, tempo.CallOptions{})
	if err != nil {
		return nil, err
	}
	if !isToken {
		return nil, tempo.NewInvalidArgumentError("token", tokenAddr.Hex(), "TIP20 token")
	}
	m, err := token.GetMetadata(ctx, c, tokenAddr, tempo.CallOptions{})
	if err != nil {
		return nil, err
	}
	cur, err := r.Register(tokenAddr, m.Symbol, m.Decimals)
	if err != nil && r.IsRegistered(tokenAddr) {
		// Registered concurrently.
		return r.Currency(tokenAddr), nil
	}
	return cur, err
}
