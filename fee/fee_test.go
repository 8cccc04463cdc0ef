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

package fee_test

import (
	"context"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/fee"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

const (
	eventTimeout  = time.Second
	noEventWithin = 100 * time.Millisecond
)

func setup(t *testing.T) (*tempotest.ChainSetup, common.Address) {
	rng := rand.New(rand.NewSource(tempotest.RandSeedForTestAccs))
	s := tempotest.NewChainSetup(t, rng, 2)
	return s, s.NewToken(t, "ALPHA", big.NewInt(1000))
}

func Test_UserToken(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	t.Run("unset", func(t *testing.T) {
		_, ok, err := fee.GetUserToken(ctx, s.Reader, s.Addrs[0], tempo.CallOptions{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set_sync", func(t *testing.T) {
		ev, err := fee.SetUserTokenSync(ctx, s.Clients[0], tok, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[0], ev.User)
		assert.Equal(t, tok, ev.Token)
		assert.Equal(t, contracts.FeeManagerAddress, ev.Raw.Address)

		got, ok, err := fee.GetUserToken(ctx, s.Reader, s.Addrs[0], tempo.CallOptions{})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, tok, got)
	})

	t.Run("set_async", func(t *testing.T) {
		tx, err := fee.SetUserToken(ctx, s.Clients[1], contracts.PathUSDAddress, tempo.TxOptions{})
		require.NoError(t, err)
		receipt, err := bind.WaitMined(ctx, s.Backend, tx)
		require.NoError(t, err)
		tempotest.AssertReceiptSuccessful(t, receipt)

		ev, err := fee.ExtractUserTokenSetEvent(receipt.Logs)
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[1], ev.User)
		assert.Equal(t, contracts.PathUSDAddress, ev.Token)
		assert.Equal(t, tx.Hash(), ev.Raw.TxHash)

		_, err = fee.ExtractValidatorTokenSetEvent(receipt.Logs)
		tempotest.AssertEventNotFoundError(t, err, tempo.FeeManager, "ValidatorTokenSet", tx.Hash())

		got, ok, err := fee.GetUserToken(ctx, s.Reader, s.Addrs[1], tempo.CallOptions{})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, contracts.PathUSDAddress, got)
	})

	t.Run("not_a_token", func(t *testing.T) {
		_, err := fee.SetUserTokenSync(ctx, s.Clients[0], contracts.TokenAddress(99), tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.FeeManager, "setUserToken")
	})
}

func Test_ValidatorToken(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	_, ok, err := fee.GetValidatorToken(ctx, s.Reader, s.Addrs[1], tempo.CallOptions{})
	require.NoError(t, err)
	assert.False(t, ok)

	ev, err := fee.SetValidatorTokenSync(ctx, s.Clients[1], tok, tempo.TxOptions{})
	require.NoError(t, err)
	assert.Equal(t, s.Addrs[1], ev.Validator)
	assert.Equal(t, tok, ev.Token)

	got, ok, err := fee.GetValidatorToken(ctx, s.Reader, s.Addrs[1], tempo.CallOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, tok, got)

	_, ok, err = fee.GetUserToken(ctx, s.Reader, s.Addrs[1], tempo.CallOptions{})
	require.NoError(t, err)
	assert.False(t, ok, "validator token does not set the user token")

	tx, err := fee.SetValidatorToken(ctx, s.Clients[0], contracts.PathUSDAddress, tempo.TxOptions{})
	require.NoError(t, err)
	receipt, err := bind.WaitMined(ctx, s.Backend, tx)
	require.NoError(t, err)
	asyncEv, err := fee.ExtractValidatorTokenSetEvent(receipt.Logs)
	require.NoError(t, err)
	assert.Equal(t, s.Addrs[0], asyncEv.Validator)
	assert.Equal(t, contracts.PathUSDAddress, asyncEv.Token)
	_, err = fee.ExtractUserTokenSetEvent(receipt.Logs)
	tempotest.AssertEventNotFoundError(t, err, tempo.FeeManager, "UserTokenSet", tx.Hash())

	got, _, err = fee.GetValidatorToken(ctx, s.Reader, s.Addrs[0], tempo.CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, contracts.PathUSDAddress, got)
}

func Test_Watch(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	users := make(chan *fee.UserTokenSetEvent, 10)
	userSub, err := fee.WatchSetUserToken(s.Reader, &s.Addrs[1], tempo.WatchOptions{},
		func(ev *fee.UserTokenSetEvent) { users <- ev })
	require.NoError(t, err)
	defer userSub.Unsubscribe()

	validators := make(chan *fee.ValidatorTokenSetEvent, 10)
	validatorSub, err := fee.WatchSetValidatorToken(s.Reader, nil, tempo.WatchOptions{},
		func(ev *fee.ValidatorTokenSetEvent) { validators <- ev })
	require.NoError(t, err)
	defer validatorSub.Unsubscribe()

	_, err = fee.SetUserTokenSync(ctx, s.Clients[0], tok, tempo.TxOptions{})
	require.NoError(t, err)
	tempotest.AssertNoneWithin(t, users, noEventWithin)

	_, err = fee.SetUserTokenSync(ctx, s.Clients[1], tok, tempo.TxOptions{})
	require.NoError(t, err)
	user := tempotest.ReceiveWithin(t, users, eventTimeout)
	assert.Equal(t, s.Addrs[1], user.User)
	assert.Equal(t, tok, user.Token)

	_, err = fee.SetValidatorTokenSync(ctx, s.Clients[0], tok, tempo.TxOptions{})
	require.NoError(t, err)
	validator := tempotest.ReceiveWithin(t, validators, eventTimeout)
	assert.Equal(t, s.Addrs[0], validator.Validator)
	tempotest.AssertNoneWithin(t, validators, noEventWithin)
}
