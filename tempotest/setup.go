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

package tempotest

import (
	"crypto/ecdsa"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions/chain"
	"github.com/tempo-labs/tempo-actions/contracts"
)

// Chain related parameters for tests.
const (
	RandSeedForTestAccs = 1729 // Seed required for generating accounts used in tests.
	ChainID             = 1337
	TxTimeout           = 5 * time.Second
)

// ChainSetup is a test setup with an in-memory backend and one client per
// generated account, each signing with its account.
type ChainSetup struct {
	Backend *Backend
	Keys    []*ecdsa.PrivateKey
	Addrs   []common.Address
	Clients []*chain.Client
	// Reader is a read-only client.
	Reader *chain.Client
}

// NewChainSetup returns an in-memory backend with numAccs accounts generated
// from rng.
func NewChainSetup(t *testing.T, rng *rand.Rand, numAccs uint) *ChainSetup {
	t.Helper()

	chainID := big.NewInt(ChainID)
	backend := NewBackend(chainID)
	s := &ChainSetup{
		Backend: backend,
		Reader:  chain.NewClient(backend, chainID, TxTimeout, nil),
	}
	for i := uint(0); i < numAccs; i++ {
		key := NewRandomKey(rng)
		opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
		require.NoError(t, err)

		s.Keys = append(s.Keys, key)
		s.Addrs = append(s.Addrs, opts.From)
		s.Clients = append(s.Clients, chain.NewClient(backend, chainID, TxTimeout, opts))
	}
	return s
}

// NewToken creates a token with the first account as admin and issuer, and
// credits each account with the given balance.
func (s *ChainSetup) NewToken(t *testing.T, symbol string, balance *big.Int) common.Address {
	t.Helper()

	require.NotEmpty(t, s.Addrs, "setup has no accounts")
	token := s.Backend.CreateToken(symbol+" token", symbol, "USD", s.Addrs[0])
	require.NoError(t, s.Backend.GrantRole(token, contracts.IssuerRole, s.Addrs[0]))
	for _, addr := range s.Addrs {
		require.NoError(t, s.Backend.Mint(token, addr, balance))
	}
	return token
}

// WalletSetup is a keystore holding generated keys, encrypted with weak
// scrypt parameters and an empty password for faster unlocking.
type WalletSetup struct {
	KeystorePath string
	Keystore     *keystore.KeyStore
	Addrs        []common.Address
}

// NewWalletSetup creates a keystore in a temporary directory with the given
// keys.
func NewWalletSetup(t *testing.T, keys ...*ecdsa.PrivateKey) *WalletSetup {
	t.Helper()

	ksPath := t.TempDir()
	ks := keystore.NewKeyStore(ksPath, chain.WeakScryptN, chain.WeakScryptP)
	addrs := make([]common.Address, len(keys))
	for i := range keys {
		acc, err := ks.ImportECDSA(keys[i], "")
		require.NoErrorf(t, err, "importing key %d", i)
		addrs[i] = acc.Address
	}
	return &WalletSetup{KeystorePath: ksPath, Keystore: ks, Addrs: addrs}
}

// NewRandomKey generates a secp256k1 private key using the given
// randomness.
func NewRandomKey(rng *rand.Rand) *ecdsa.PrivateKey {
	for {
		var b [32]byte
		rng.Read(b[:]) // nolint: gosec	// math/rand Read never fails.
		if key, err := crypto.ToECDSA(b[:]); err == nil {
			return key
		}
	}
}

// NewRandomAddress generates a random address without a corresponding key.
func NewRandomAddress(rng *rand.Rand) common.Address {
	var a common.Address
	rng.Read(a[:]) // nolint: gosec	// math/rand Read never fails.
	return a
}
