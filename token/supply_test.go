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

package token_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/token"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

func totalSupply(t *testing.T, s *tempotest.ChainSetup, tok common.Address) *big.Int {
	t.Helper()

	m, err := token.GetMetadata(context.Background(), s.Reader, tok, tempo.CallOptions{})
	require.NoError(t, err)
	return m.TotalSupply
}

func Test_Mint(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	t.Run("happy", func(t *testing.T) {
		ev, err := token.MintSync(ctx, s.Clients[0], token.MintParams{Token: tok, To: s.Addrs[1],
			Amount: big.NewInt(500)}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[1], ev.To)
		assertAmount(t, 500, ev.Amount)

		assertBalance(t, s, tok, s.Addrs[1], initialBalance+500)
		assertAmount(t, 3*initialBalance+500, totalSupply(t, s, tok))
	})

	t.Run("with_memo", func(t *testing.T) {
		ev, err := token.MintSync(ctx, s.Clients[0], token.MintParams{Token: tok, To: s.Addrs[2],
			Amount: big.NewInt(1), Memo: "batch 1"}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[2], ev.To)
		assertBalance(t, s, tok, s.Addrs[2], initialBalance+1)
	})

	t.Run("not_issuer", func(t *testing.T) {
		_, err := token.MintSync(ctx, s.Clients[1], token.MintParams{Token: tok, To: s.Addrs[1],
			Amount: big.NewInt(1)}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "mint")
	})

	t.Run("exceeds_supply_cap", func(t *testing.T) {
		ev, err := token.SetSupplyCapSync(ctx, s.Clients[0], token.SetSupplyCapParams{Token: tok,
			SupplyCap: big.NewInt(4000)}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[0], ev.Updater)
		assertAmount(t, 4000, ev.NewSupplyCap)

		_, err = token.MintSync(ctx, s.Clients[0], token.MintParams{Token: tok, To: s.Addrs[1],
			Amount: big.NewInt(500)}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "mint")
	})

	t.Run("invalid_amount", func(t *testing.T) {
		_, err := token.MintSync(ctx, s.Clients[0], token.MintParams{Token: tok, To: s.Addrs[1]},
			tempo.TxOptions{})
		tempotest.AssertInvalidArgumentError(t, err, "amount", "nil")
	})
}

func Test_MintCall(t *testing.T) {
	tok := contracts.TokenAddress(1)

	call, err := token.MintCall(token.MintParams{Token: tok, Amount: big.NewInt(1)})
	require.NoError(t, err)
	assert.Equal(t, "mint", call.Method)

	call, err = token.MintCall(token.MintParams{Token: tok, Amount: big.NewInt(1), Memo: "m"})
	require.NoError(t, err)
	assert.Equal(t, "mintWithMemo", call.Method)

	call, err = token.BurnCall(token.BurnParams{Token: tok, Amount: big.NewInt(1)})
	require.NoError(t, err)
	assert.Equal(t, "burn", call.Method)

	call, err = token.BurnCall(token.BurnParams{Token: tok, Amount: big.NewInt(1), Memo: "m"})
	require.NoError(t, err)
	assert.Equal(t, "burnWithMemo", call.Method)
}

func Test_Burn(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	t.Run("happy", func(t *testing.T) {
		ev, err := token.BurnSync(ctx, s.Clients[0], token.BurnParams{Token: tok, Amount: big.NewInt(200)},
			tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[0], ev.From)
		assertAmount(t, 200, ev.Amount)

		assertBalance(t, s, tok, s.Addrs[0], initialBalance-200)
		assertAmount(t, 3*initialBalance-200, totalSupply(t, s, tok))
	})

	t.Run("with_memo", func(t *testing.T) {
		ev, err := token.BurnSync(ctx, s.Clients[0], token.BurnParams{Token: tok, Amount: big.NewInt(100),
			Memo: "redeemed"}, tempo.TxOptions{})
		require.NoError(t, err)
		assertAmount(t, 100, ev.Amount)
		assertBalance(t, s, tok, s.Addrs[0], initialBalance-300)
	})

	t.Run("exceeds_balance", func(t *testing.T) {
		_, err := token.BurnSync(ctx, s.Clients[0], token.BurnParams{Token: tok, Amount: big.NewInt(initialBalance)},
			tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "burn")
	})

	t.Run("not_issuer", func(t *testing.T) {
		_, err := token.BurnSync(ctx, s.Clients[1], token.BurnParams{Token: tok, Amount: big.NewInt(1)},
			tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "burn")
	})
}

func Test_BurnBlocked(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()
	params := token.BurnBlockedParams{Token: tok, From: s.Addrs[1], Amount: big.NewInt(100)}

	t.Run("missing_role", func(t *testing.T) {
		_, err := token.BurnBlockedSync(ctx, s.Clients[0], params, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "burnBlocked")
	})

	_, err := token.GrantRolesSync(ctx, s.Clients[0], token.RolesParams{Token: tok, Roles: []string{"burnBlocked"},
		Account: s.Addrs[0]}, tempo.TxOptions{})
	require.NoError(t, err)

	t.Run("holder_not_blocked", func(t *testing.T) {
		_, err := token.BurnBlockedSync(ctx, s.Clients[0], params, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "burnBlocked")
	})

	t.Run("happy", func(t *testing.T) {
		_, err := token.ChangeTransferPolicySync(ctx, s.Clients[0], token.ChangeTransferPolicyParams{Token: tok,
			PolicyID: contracts.RejectAllPolicyID}, tempo.TxOptions{})
		require.NoError(t, err)

		ev, err := token.BurnBlockedSync(ctx, s.Clients[0], params, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, s.Addrs[1], ev.From)
		assertAmount(t, 100, ev.Amount)
		assertBalance(t, s, tok, s.Addrs[1], initialBalance-100)
	})
}

func Test_SetSupplyCap(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		client    int
		supplyCap *big.Int
	}{
		{"below_total_supply", 0, big.NewInt(initialBalance)},
		{"above_max", 0, new(big.Int).Add(tempotest.DefaultSupplyCap, big.NewInt(1))},
		{"not_admin", 1, big.NewInt(10 * initialBalance)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := token.SetSupplyCapSync(ctx, s.Clients[tc.client], token.SetSupplyCapParams{Token: tok,
				SupplyCap: tc.supplyCap}, tempo.TxOptions{})
			tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "setSupplyCap")
		})
	}

	t.Run("happy", func(t *testing.T) {
		tx, err := token.SetSupplyCap(ctx, s.Clients[0], token.SetSupplyCapParams{Token: tok,
			SupplyCap: big.NewInt(3 * initialBalance)}, tempo.TxOptions{})
		require.NoError(t, err)
		require.NotNil(t, tx)

		m, err := token.GetMetadata(ctx, s.Reader, tok, tempo.CallOptions{})
		require.NoError(t, err)
		assertAmount(t, 3*initialBalance, m.SupplyCap)
	})
}
