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

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/token"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

func Test_CreateCall(t *testing.T) {
	admin := contracts.TokenAddress(5)

	t.Run("defaults", func(t *testing.T) {
		call, err := token.CreateCall(token.CreateParams{Name: "Beta", Symbol: "BETA", Admin: admin})
		require.NoError(t, err)
		assert.Equal(t, contracts.TIP20FactoryAddress, call.To)
		assert.Equal(t, "createToken", call.Method)
		assert.Equal(t, []interface{}{"Beta", "BETA", token.DefaultCurrency, contracts.PathUSDAddress, admin},
			call.Args)
	})

	tests := []struct {
		name      string
		params    token.CreateParams
		wantName  string
		wantValue string
	}{
		{"no_name", token.CreateParams{Symbol: "BETA", Admin: admin}, "name", ""},
		{"no_symbol", token.CreateParams{Name: "Beta", Admin: admin}, "symbol", ""},
		{"no_admin", token.CreateParams{Name: "Beta", Symbol: "BETA"}, "admin", common.Address{}.Hex()},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := token.CreateCall(tc.params)
			tempotest.AssertInvalidArgumentError(t, err, tc.wantName, tc.wantValue)
		})
	}
}

func Test_Create(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	t.Run("sync", func(t *testing.T) {
		ev, err := token.CreateSync(ctx, s.Clients[0], token.CreateParams{Name: "Beta", Symbol: "BETA",
			Currency: "EUR"}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, contracts.TokenAddress(2), ev.Token)
		assertAmount(t, 2, ev.Id)
		assert.Equal(t, "Beta", ev.Name)
		assert.Equal(t, "BETA", ev.Symbol)
		assert.Equal(t, "EUR", ev.Currency)
		assert.Equal(t, contracts.PathUSDAddress, ev.QuoteToken)
		assert.Equal(t, s.Addrs[0], ev.Admin)

		isTIP20, err := token.IsTIP20(ctx, s.Reader, ev.Token, tempo.CallOptions{})
		require.NoError(t, err)
		assert.True(t, isTIP20)
		isAdmin, err := token.HasRole(ctx, s.Reader, ev.Token, s.Addrs[0], contracts.DefaultAdminRole,
			tempo.CallOptions{})
		require.NoError(t, err)
		assert.True(t, isAdmin)

		m, err := token.GetMetadata(ctx, s.Reader, ev.Token, tempo.CallOptions{})
		require.NoError(t, err)
		assert.Equal(t, "BETA", m.Symbol)
		assert.Zero(t, m.TotalSupply.Sign())
	})

	t.Run("async_with_admin_and_quote_token", func(t *testing.T) {
		tx, err := token.Create(ctx, s.Clients[0], token.CreateParams{Name: "Gamma", Symbol: "GAMMA",
			QuoteToken: tok, Admin: s.Addrs[1]}, tempo.TxOptions{})
		require.NoError(t, err)
		receipt, err := bind.WaitMined(ctx, s.Backend, tx)
		require.NoError(t, err)

		ev, err := token.ExtractCreateEvent(receipt.Logs)
		require.NoError(t, err)
		assert.Equal(t, contracts.TokenAddress(3), ev.Token)
		assert.Equal(t, tok, ev.QuoteToken)
		assert.Equal(t, s.Addrs[1], ev.Admin)
		assert.Equal(t, token.DefaultCurrency, ev.Currency)
	})

	t.Run("unknown_quote_token", func(t *testing.T) {
		_, err := token.CreateSync(ctx, s.Clients[0], token.CreateParams{Name: "Delta", Symbol: "DELTA",
			QuoteToken: contracts.TokenAddress(99)}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20Factory, "createToken")
	})

	t.Run("extract_from_other_receipt", func(t *testing.T) {
		tx, err := token.Transfer(ctx, s.Clients[0], token.TransferParams{Token: tok, To: s.Addrs[1],
			Amount: big.NewInt(1)}, tempo.TxOptions{})
		require.NoError(t, err)
		receipt, err := bind.WaitMined(ctx, s.Backend, tx)
		require.NoError(t, err)

		_, err = token.ExtractCreateEvent(receipt.Logs)
		tempotest.AssertEventNotFoundError(t, err, tempo.TIP20Factory, "TokenCreated", tx.Hash())
	})
}
