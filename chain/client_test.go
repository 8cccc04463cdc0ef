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

package chain_test

import (
	"context"
	"math/big"
	"math/rand"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/chain"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

func Test_Client_Interface(t *testing.T) {
	assert.Implements(t, (*tempo.ChainClient)(nil), new(chain.Client))
}

func Test_NewClient(t *testing.T) {
	rng := rand.New(rand.NewSource(tempotest.RandSeedForTestAccs))
	chainID := big.NewInt(tempotest.ChainID)
	backend := tempotest.NewBackend(chainID)

	t.Run("read_only", func(t *testing.T) {
		c := chain.NewClient(backend, chainID, 0, nil)
		assert.Equal(t, chain.DefaultTxTimeout, c.TxTimeout())
		assert.Zero(t, c.Account())
		assert.Equal(t, chainID, c.ChainID())
		assert.NotNil(t, c.Logger())
		assert.Equal(t, tempo.Backend(backend), c.Backend())

		_, err := c.NewTransactor(context.Background())
		assert.Error(t, err)
	})

	t.Run("chain_id_is_copied", func(t *testing.T) {
		id := big.NewInt(tempotest.ChainID)
		c := chain.NewClient(backend, id, time.Second, nil)
		id.SetInt64(1)
		c.ChainID().SetInt64(2)
		assert.Equal(t, big.NewInt(tempotest.ChainID), c.ChainID())
	})

	t.Run("signing", func(t *testing.T) {
		key := tempotest.NewRandomKey(rng)
		signer, err := bind.NewKeyedTransactorWithChainID(key, chainID)
		require.NoError(t, err)
		c := chain.NewClient(backend, chainID, time.Second, signer)
		assert.Equal(t, signer.From, c.Account())
		assert.Equal(t, time.Second, c.TxTimeout())

		ctx := context.Background()
		opts, err := c.NewTransactor(ctx)
		require.NoError(t, err)
		assert.Equal(t, signer.From, opts.From)
		assert.Equal(t, ctx, opts.Context)

		tx := types.NewTx(&types.DynamicFeeTx{ChainID: chainID, Nonce: 1})
		signed, err := opts.Signer(opts.From, tx)
		require.NoError(t, err)
		sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
		require.NoError(t, err)
		assert.Equal(t, signer.From, sender)
	})
}

type ethService struct {
	chainID *big.Int
}

// ChainId serves eth_chainId.
func (s *ethService) ChainId() *hexutil.Big { // nolint: revive, stylecheck	// name must match rpc method.
	return (*hexutil.Big)(s.chainID)
}

func newNode(t *testing.T, chainID int64) string {
	t.Helper()

	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", &ethService{chainID: big.NewInt(chainID)}))
	hs := httptest.NewServer(srv)
	t.Cleanup(func() {
		hs.Close()
		srv.Stop()
	})
	return hs.URL
}

func Test_Dial(t *testing.T) {
	rng := rand.New(rand.NewSource(tempotest.RandSeedForTestAccs))
	url := newNode(t, tempotest.ChainID)

	t.Run("read_only", func(t *testing.T) {
		c, err := chain.Dial(tempo.ClientConfig{ChainURL: url, ChainID: tempotest.ChainID})
		require.NoError(t, err)
		defer c.Close()
		assert.Equal(t, big.NewInt(tempotest.ChainID), c.ChainID())
		assert.Zero(t, c.Account())
		assert.Equal(t, chain.DefaultTxTimeout, c.TxTimeout())
	})

	t.Run("any_chain_id", func(t *testing.T) {
		c, err := chain.Dial(tempo.ClientConfig{ChainURL: url, TxTimeout: time.Second})
		require.NoError(t, err)
		defer c.Close()
		assert.Equal(t, big.NewInt(tempotest.ChainID), c.ChainID())
		assert.Equal(t, time.Second, c.TxTimeout())
	})

	t.Run("signing", func(t *testing.T) {
		wallet := tempotest.NewWalletSetup(t, tempotest.NewRandomKey(rng))
		c, err := chain.Dial(tempo.ClientConfig{
			ChainURL: url,
			Keystore: wallet.KeystorePath,
			Account:  wallet.Addrs[0].Hex(),
		})
		require.NoError(t, err)
		defer c.Close()
		assert.Equal(t, wallet.Addrs[0], c.Account())
		_, err = c.NewTransactor(context.Background())
		assert.NoError(t, err)
	})

	t.Run("separate_ws_url", func(t *testing.T) {
		c, err := chain.Dial(tempo.ClientConfig{ChainURL: url, WSURL: newNode(t, tempotest.ChainID)})
		require.NoError(t, err)
		c.Close()
	})

	t.Run("chain_id_mismatch", func(t *testing.T) {
		_, err := chain.Dial(tempo.ClientConfig{ChainURL: url, ChainID: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chain id mismatch")
	})

	t.Run("invalid_account", func(t *testing.T) {
		_, err := chain.Dial(tempo.ClientConfig{ChainURL: url, Account: "invalid-addr"})
		assert.Error(t, err)
	})

	t.Run("unknown_url_scheme", func(t *testing.T) {
		_, err := chain.Dial(tempo.ClientConfig{ChainURL: "ftp://localhost:1"})
		assert.Error(t, err)
	})

	t.Run("invalid_ws_url", func(t *testing.T) {
		_, err := chain.Dial(tempo.ClientConfig{ChainURL: url, WSURL: "ftp://localhost:1"})
		assert.Error(t, err)
	})
}
