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

package chain

import (
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Scrypt parameters for encrypting keys in a keystore. The standard values
// take about a second and 256MB of memory to unlock an account. The weak
// values unlock instantly and are meant for test keystores only.
const (
	StandardScryptN = keystore.StandardScryptN
	StandardScryptP = keystore.StandardScryptP
	WeakScryptN     = 2
	WeakScryptP     = 1
)

// ScryptParams are the cost parameters of the key encryption.
type ScryptParams struct {
	N, P int
}

// StandardScryptParams returns the scrypt parameters for real wallets.
func StandardScryptParams() ScryptParams {
	return ScryptParams{N: StandardScryptN, P: StandardScryptP}
}

// NewKeystoreTransactor unlocks the account in the keystore directory and
// returns transact options signing for the chain with it.
func NewKeystoreTransactor(keystorePath string, addr common.Address, password string, chainID *big.Int,
	enc ScryptParams) (*bind.TransactOpts, error) {
	if _, err := os.Stat(keystorePath); os.IsNotExist(err) {
		return nil, errors.Wrap(err, "cannot find keystore directory")
	}
	ks := keystore.NewKeyStore(keystorePath, enc.N, enc.P)
	acc, err := ks.Find(accounts.Account{Address: addr})
	if err != nil {
		return nil, errors.Wrap(err, "finding account "+addr.Hex()+" in keystore")
	}
	if err = ks.Unlock(acc, password); err != nil {
		return nil, errors.Wrap(err, "unlocking account "+addr.Hex())
	}
	opts, err := bind.NewKeyStoreTransactorWithChainID(ks, acc, chainID)
	return opts, errors.Wrap(err, "initializing keystore transactor")
}

// ParseAddr parses a hex encoded address. The 0x prefix is optional and the
// case of the digits is ignored.
func ParseAddr(str string) (common.Address, error) {
	// HexToAddress accepts any string.
	if !common.IsHexAddress(str) {
		return common.Address{}, errors.Errorf("parsing address %q", str)
	}
	return common.HexToAddress(str), nil
}
