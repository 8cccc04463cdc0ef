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

package amm_test

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
	"github.com/tempo-labs/tempo-actions/amm"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

const (
	initialBalance = 1_000_000
	eventTimeout   = time.Second
	noEventWithin  = 100 * time.Millisecond
)

type ammSetup struct {
	*tempotest.ChainSetup
	user, validator common.Address
}

func setup(t *testing.T) *ammSetup {
	rng := rand.New(rand.NewSource(tempotest.RandSeedForTestAccs))
	s := tempotest.NewChainSetup(t, rng, 2)
	return &ammSetup{
		ChainSetup: s,
		user:       s.NewToken(t, "ALPHA", big.NewInt(initialBalance)),
		validator:  s.NewToken(t, "BETA", big.NewInt(initialBalance)),
	}
}

func (s *ammSetup) pool(t *testing.T) *amm.Pool {
	t.Helper()

	p, err := amm.GetPool(context.Background(), s.Reader, s.user, s.validator, tempo.CallOptions{})
	require.NoError(t, err)
	return p
}

func (s *ammSetup) liquidity(t *testing.T, account common.Address) *big.Int {
	t.Helper()

	l, err := amm.GetLiquidityBalance(context.Background(), s.Reader,
		amm.PoolRef{UserToken: s.user, ValidatorToken: s.validator}, account, tempo.CallOptions{})
	require.NoError(t, err)
	return l
}

func assertAmount(t *testing.T, want int64, got *big.Int) {
	t.Helper()

	require.NotNil(t, got)
	assert.Equal(t, big.NewInt(want).String(), got.String())
}

func Test_MintCall(t *testing.T) {
	user, validator, to := contracts.TokenAddress(1), contracts.TokenAddress(2), common.HexToAddress("0x01")

	t.Run("validator_token_only", func(t *testing.T) {
		call, err := amm.MintCall(amm.MintParams{
			UserToken:      amm.TokenAmount{Address: user},
			ValidatorToken: amm.TokenAmount{Address: validator, Amount: big.NewInt(10)},
			To:             to,
		})
		require.NoError(t, err)
		assert.Equal(t, contracts.FeeAMMAddress, call.To)
		assert.Equal(t, "mintWithValidatorToken", call.Method)
		assert.Equal(t, []interface{}{user, validator, big.NewInt(10), to}, call.Args)
	})

	t.Run("both_tokens", func(t *testing.T) {
		call, err := amm.MintCall(amm.MintParams{
			UserToken:      amm.TokenAmount{Address: user, Amount: big.NewInt(5)},
			ValidatorToken: amm.TokenAmount{Address: validator, Amount: big.NewInt(10)},
			To:             to,
		})
		require.NoError(t, err)
		assert.Equal(t, "mint", call.Method)
		assert.Len(t, call.Args, 5)
	})

	t.Run("no_validator_amount", func(t *testing.T) {
		_, err := amm.MintCall(amm.MintParams{UserToken: amm.TokenAmount{Address: user, Amount: big.NewInt(5)}})
		tempotest.AssertInvalidArgumentError(t, err, "validatorToken.amount", "nil")
	})

	t.Run("negative_user_amount", func(t *testing.T) {
		_, err := amm.MintCall(amm.MintParams{
			UserToken:      amm.TokenAmount{Address: user, Amount: big.NewInt(-1)},
			ValidatorToken: amm.TokenAmount{Address: validator, Amount: big.NewInt(10)},
		})
		tempotest.AssertInvalidArgumentError(t, err, "userToken.amount", "-1")
	})

	t.Run("invalid_burn_and_swap", func(t *testing.T) {
		_, err := amm.BurnCall(amm.BurnParams{UserToken: user, ValidatorToken: validator})
		tempotest.AssertInvalidArgumentError(t, err, "liquidity", "nil")
		_, err = amm.RebalanceSwapCall(amm.RebalanceSwapParams{UserToken: user, ValidatorToken: validator})
		tempotest.AssertInvalidArgumentError(t, err, "amountOut", "nil")
	})
}

func Test_GetPool(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	id, err := amm.GetPoolID(ctx, s.Reader, s.user, s.validator, tempo.CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, tempotest.PoolID(s.user, s.validator), id)

	reversed, err := amm.GetPoolID(ctx, s.Reader, s.validator, s.user, tempo.CallOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, id, reversed, "pools are directional")

	p := s.pool(t)
	assert.Equal(t, id, p.ID)
	assert.Zero(t, p.ReserveUserToken.Sign())
	assert.Zero(t, p.ReserveValidatorToken.Sign())
	assert.Zero(t, p.TotalSupply.Sign())
	assert.Zero(t, s.liquidity(t, s.Addrs[0]).Sign())
}

// nolint: funlen	// steps depend on the pool state of the previous ones.
func Test_Liquidity(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	t.Run("first_mint", func(t *testing.T) {
		ev, err := amm.MintSync(ctx, s.Clients[0], amm.MintParams{
			UserToken:      amm.TokenAmount{Address: s.user},
			ValidatorToken: amm.TokenAmount{Address: s.validator, Amount: big.NewInt(10_000)},
			To:             s.Addrs[0],
		}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[0], ev.Sender)
		assert.Equal(t, s.user, ev.UserToken)
		assert.Equal(t, s.validator, ev.ValidatorToken)
		assert.Zero(t, ev.AmountUserToken.Sign())
		assertAmount(t, 10_000, ev.AmountValidatorToken)
		assertAmount(t, 10_000/2-tempotest.MinLiquidity.Int64(), ev.Liquidity)

		p := s.pool(t)
		assert.Zero(t, p.ReserveUserToken.Sign())
		assertAmount(t, 10_000, p.ReserveValidatorToken)
		assertAmount(t, 5000, p.TotalSupply)
		assertAmount(t, 4000, s.liquidity(t, s.Addrs[0]))
	})

	t.Run("mint_both_tokens", func(t *testing.T) {
		tx, err := amm.Mint(ctx, s.Clients[1], amm.MintParams{
			UserToken:      amm.TokenAmount{Address: s.user, Amount: big.NewInt(2000)},
			ValidatorToken: amm.TokenAmount{Address: s.validator, Amount: big.NewInt(2000)},
			To:             s.Addrs[1],
		}, tempo.TxOptions{})
		require.NoError(t, err)
		receipt, err := bind.WaitMined(ctx, s.Backend, tx)
		require.NoError(t, err)

		ev, err := amm.ExtractMintEvent(receipt.Logs)
		require.NoError(t, err)
		assertAmount(t, 2000, ev.Liquidity)

		p := s.pool(t)
		assertAmount(t, 2000, p.ReserveUserToken)
		assertAmount(t, 12_000, p.ReserveValidatorToken)
		assertAmount(t, 7000, p.TotalSupply)

		id := p.ID
		l, err := amm.GetLiquidityBalance(ctx, s.Reader, amm.PoolRef{ID: &id}, s.Addrs[1], tempo.CallOptions{})
		require.NoError(t, err)
		assertAmount(t, 2000, l)
	})

	t.Run("rebalance_swap", func(t *testing.T) {
		ev, err := amm.RebalanceSwapSync(ctx, s.Clients[1], amm.RebalanceSwapParams{
			UserToken: s.user, ValidatorToken: s.validator, AmountOut: big.NewInt(1000), To: s.Addrs[1],
		}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[1], ev.Swapper)
		assertAmount(t, 1000, ev.AmountOut)
		assertAmount(t, 1000*9985/10000+1, ev.AmountIn)

		p := s.pool(t)
		assertAmount(t, 1000, p.ReserveUserToken)
		assertAmount(t, 12_999, p.ReserveValidatorToken)
	})

	t.Run("rebalance_swap_exceeds_reserve", func(t *testing.T) {
		_, err := amm.RebalanceSwapSync(ctx, s.Clients[1], amm.RebalanceSwapParams{
			UserToken: s.user, ValidatorToken: s.validator, AmountOut: big.NewInt(1001), To: s.Addrs[1],
		}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.FeeAMM, "rebalanceSwap")

		tx, err := amm.RebalanceSwap(ctx, s.Clients[1], amm.RebalanceSwapParams{
			UserToken: s.user, ValidatorToken: s.validator, AmountOut: big.NewInt(1), To: s.Addrs[1],
		}, tempo.TxOptions{})
		require.NoError(t, err)
		receipt, err := bind.WaitMined(ctx, s.Backend, tx)
		require.NoError(t, err)

		ev, err := amm.ExtractRebalanceSwapEvent(receipt.Logs)
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[1], ev.Swapper)
		assertAmount(t, 1, ev.AmountOut)
		assert.Equal(t, tx.Hash(), ev.Raw.TxHash)
		assertAmount(t, 999, s.pool(t).ReserveUserToken)

		_, err = amm.ExtractBurnEvent(receipt.Logs)
		tempotest.AssertEventNotFoundError(t, err, tempo.FeeAMM, "Burn", tx.Hash())
	})

	t.Run("burn", func(t *testing.T) {
		p := s.pool(t)
		wantUser := new(big.Int).Mul(big.NewInt(2000), p.ReserveUserToken)
		wantUser.Div(wantUser, p.TotalSupply)
		wantValidator := new(big.Int).Mul(big.NewInt(2000), p.ReserveValidatorToken)
		wantValidator.Div(wantValidator, p.TotalSupply)

		ev, err := amm.BurnSync(ctx, s.Clients[1], amm.BurnParams{
			UserToken: s.user, ValidatorToken: s.validator, Liquidity: big.NewInt(2000), To: s.Addrs[1],
		}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[1], ev.Sender)
		assert.Equal(t, s.Addrs[1], ev.To)
		assertAmount(t, 2000, ev.Liquidity)
		assert.Equal(t, wantUser.String(), ev.AmountUserToken.String())
		assert.Equal(t, wantValidator.String(), ev.AmountValidatorToken.String())
		assert.Zero(t, s.liquidity(t, s.Addrs[1]).Sign())
		assertAmount(t, 5000, s.pool(t).TotalSupply)
	})

	t.Run("burn_exceeds_liquidity", func(t *testing.T) {
		_, err := amm.BurnSync(ctx, s.Clients[0], amm.BurnParams{
			UserToken: s.user, ValidatorToken: s.validator, Liquidity: big.NewInt(4001), To: s.Addrs[0],
		}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.FeeAMM, "burn")

		tx, err := amm.Burn(ctx, s.Clients[0], amm.BurnParams{
			UserToken: s.user, ValidatorToken: s.validator, Liquidity: big.NewInt(1000), To: s.Addrs[0],
		}, tempo.TxOptions{})
		require.NoError(t, err)
		receipt, err := bind.WaitMined(ctx, s.Backend, tx)
		require.NoError(t, err)

		ev, err := amm.ExtractBurnEvent(receipt.Logs)
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[0], ev.Sender)
		assert.Equal(t, s.Addrs[0], ev.To)
		assertAmount(t, 1000, ev.Liquidity)
		assertAmount(t, 3000, s.liquidity(t, s.Addrs[0]))

		_, err = amm.ExtractRebalanceSwapEvent(receipt.Logs)
		tempotest.AssertEventNotFoundError(t, err, tempo.FeeAMM, "RebalanceSwap", tx.Hash())
	})

	t.Run("same_token", func(t *testing.T) {
		_, err := amm.MintSync(ctx, s.Clients[0], amm.MintParams{
			UserToken:      amm.TokenAmount{Address: s.user, Amount: big.NewInt(1000)},
			ValidatorToken: amm.TokenAmount{Address: s.user, Amount: big.NewInt(1000)},
			To:             s.Addrs[0],
		}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.FeeAMM, "mint")
	})
}

func Test_Watch(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	other := s.NewToken(t, "GAMMA", big.NewInt(initialBalance))
	filter := amm.PoolFilter{UserToken: &s.user, ValidatorToken: &s.validator}

	mints := make(chan *amm.MintEvent, 10)
	mintSub, err := amm.WatchMint(s.Reader, filter, tempo.WatchOptions{}, func(ev *amm.MintEvent) { mints <- ev })
	require.NoError(t, err)
	defer mintSub.Unsubscribe()

	burns := make(chan *amm.BurnEvent, 10)
	burnSub, err := amm.WatchBurn(s.Reader, amm.PoolFilter{}, tempo.WatchOptions{},
		func(ev *amm.BurnEvent) { burns <- ev })
	require.NoError(t, err)
	defer burnSub.Unsubscribe()

	swaps := make(chan *amm.RebalanceSwapEvent, 10)
	swapSub, err := amm.WatchRebalanceSwap(s.Reader, filter, tempo.WatchOptions{},
		func(ev *amm.RebalanceSwapEvent) { swaps <- ev })
	require.NoError(t, err)
	defer swapSub.Unsubscribe()

	feeSwaps := make(chan *amm.FeeSwapEvent, 10)
	feeSwapSub, err := amm.WatchFeeSwap(s.Reader, amm.PoolFilter{ValidatorToken: &s.validator},
		tempo.WatchOptions{}, func(ev *amm.FeeSwapEvent) { feeSwaps <- ev })
	require.NoError(t, err)
	defer feeSwapSub.Unsubscribe()

	mint := func(user common.Address) {
		_, err := amm.MintSync(ctx, s.Clients[0], amm.MintParams{
			UserToken:      amm.TokenAmount{Address: user},
			ValidatorToken: amm.TokenAmount{Address: s.validator, Amount: big.NewInt(100_000)},
			To:             s.Addrs[0],
		}, tempo.TxOptions{})
		require.NoError(t, err)
	}
	mint(other)
	tempotest.AssertNoneWithin(t, mints, noEventWithin)
	mint(s.user)
	ev := tempotest.ReceiveWithin(t, mints, eventTimeout)
	assert.Equal(t, s.user, ev.UserToken)
	assertAmount(t, 100_000, ev.AmountValidatorToken)

	amountOut, err := s.Backend.ExecuteFeeSwap(s.user, s.validator, big.NewInt(1000))
	require.NoError(t, err)
	assertAmount(t, 1000*9970/10000, amountOut)
	feeSwap := tempotest.ReceiveWithin(t, feeSwaps, eventTimeout)
	assert.Equal(t, s.user, feeSwap.UserToken)
	assertAmount(t, 1000, feeSwap.AmountIn)
	assertAmount(t, 997, feeSwap.AmountOut)

	_, err = amm.RebalanceSwapSync(ctx, s.Clients[1], amm.RebalanceSwapParams{
		UserToken: s.user, ValidatorToken: s.validator, AmountOut: big.NewInt(500), To: s.Addrs[1],
	}, tempo.TxOptions{})
	require.NoError(t, err)
	swap := tempotest.ReceiveWithin(t, swaps, eventTimeout)
	assert.Equal(t, s.Addrs[1], swap.Swapper)
	assertAmount(t, 500, swap.AmountOut)

	_, err = amm.BurnSync(ctx, s.Clients[0], amm.BurnParams{
		UserToken: other, ValidatorToken: s.validator, Liquidity: big.NewInt(10), To: s.Addrs[1],
	}, tempo.TxOptions{})
	require.NoError(t, err)
	burn := tempotest.ReceiveWithin(t, burns, eventTimeout)
	assert.Equal(t, other, burn.UserToken)
	assert.Equal(t, s.Addrs[1], burn.To)
}
