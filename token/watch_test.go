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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/token"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

const noEventWithin = 100 * time.Millisecond

func Test_WatchTransfer(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()
	transfer := func(t *testing.T, from, to int, amount int64) *token.TransferEvent {
		t.Helper()
		ev, err := token.TransferSync(ctx, s.Clients[from], token.TransferParams{Token: tok, To: s.Addrs[to],
			Amount: big.NewInt(amount)}, tempo.TxOptions{})
		require.NoError(t, err)
		return ev
	}

	t.Run("filtered_by_recipient", func(t *testing.T) {
		events := make(chan *token.TransferEvent, 10)
		sub, err := token.WatchTransfer(s.Reader, tok, token.TransferFilter{To: &s.Addrs[2]}, tempo.WatchOptions{},
			func(ev *token.TransferEvent) { events <- ev })
		require.NoError(t, err)
		defer sub.Unsubscribe()

		transfer(t, 0, 1, 5)
		tempotest.AssertNoneWithin(t, events, noEventWithin)

		sent := transfer(t, 0, 2, 6)
		ev := tempotest.ReceiveWithin(t, events, eventTimeout)
		assert.Equal(t, s.Addrs[0], ev.From)
		assert.Equal(t, s.Addrs[2], ev.To)
		assertAmount(t, 6, ev.Amount)
		assert.Equal(t, sent.Raw.TxHash, ev.Raw.TxHash)
	})

	t.Run("from_block", func(t *testing.T) {
		sent := transfer(t, 1, 0, 7)
		from := sent.Raw.BlockNumber

		events := make(chan *token.TransferEvent, 10)
		sub, err := token.WatchTransfer(s.Reader, tok, token.TransferFilter{From: &s.Addrs[1]},
			tempo.WatchOptions{FromBlock: &from}, func(ev *token.TransferEvent) { events <- ev })
		require.NoError(t, err)
		defer sub.Unsubscribe()

		ev := tempotest.ReceiveWithin(t, events, eventTimeout)
		assertAmount(t, 7, ev.Amount)
		assert.Equal(t, from, ev.Raw.BlockNumber)
		tempotest.AssertNoneWithin(t, events, noEventWithin)
	})

	t.Run("unsubscribe", func(t *testing.T) {
		events := make(chan *token.TransferEvent, 10)
		sub, err := token.WatchTransfer(s.Reader, tok, token.TransferFilter{}, tempo.WatchOptions{},
			func(ev *token.TransferEvent) { events <- ev })
		require.NoError(t, err)
		sub.Unsubscribe()

		transfer(t, 0, 1, 1)
		tempotest.AssertNoneWithin(t, events, noEventWithin)
	})
}

func Test_WatchApprove(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	events := make(chan *token.ApprovalEvent, 10)
	sub, err := token.WatchApprove(s.Reader, tok, token.ApprovalFilter{Owner: &s.Addrs[1]}, tempo.WatchOptions{},
		func(ev *token.ApprovalEvent) { events <- ev })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	for owner := 0; owner < 2; owner++ {
		_, err := token.ApproveSync(ctx, s.Clients[owner], token.ApproveParams{Token: tok, Spender: s.Addrs[2],
			Amount: big.NewInt(int64(owner + 1))}, tempo.TxOptions{})
		require.NoError(t, err)
	}
	ev := tempotest.ReceiveWithin(t, events, eventTimeout)
	assert.Equal(t, s.Addrs[1], ev.Owner)
	assert.Equal(t, s.Addrs[2], ev.Spender)
	assertAmount(t, 2, ev.Amount)
	tempotest.AssertNoneWithin(t, events, noEventWithin)
}

func Test_WatchMintAndBurn(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	mints := make(chan *token.MintEvent, 10)
	mintSub, err := token.WatchMint(s.Reader, tok, nil, tempo.WatchOptions{},
		func(ev *token.MintEvent) { mints <- ev })
	require.NoError(t, err)
	defer mintSub.Unsubscribe()

	burns := make(chan *token.BurnEvent, 10)
	burnSub, err := token.WatchBurn(s.Reader, tok, &s.Addrs[0], tempo.WatchOptions{},
		func(ev *token.BurnEvent) { burns <- ev })
	require.NoError(t, err)
	defer burnSub.Unsubscribe()

	_, err = token.MintSync(ctx, s.Clients[0], token.MintParams{Token: tok, To: s.Addrs[2],
		Amount: big.NewInt(40)}, tempo.TxOptions{})
	require.NoError(t, err)
	mint := tempotest.ReceiveWithin(t, mints, eventTimeout)
	assert.Equal(t, s.Addrs[2], mint.To)
	assertAmount(t, 40, mint.Amount)

	_, err = token.BurnSync(ctx, s.Clients[0], token.BurnParams{Token: tok, Amount: big.NewInt(30)},
		tempo.TxOptions{})
	require.NoError(t, err)
	burn := tempotest.ReceiveWithin(t, burns, eventTimeout)
	assert.Equal(t, s.Addrs[0], burn.From)
	assertAmount(t, 30, burn.Amount)
}

func Test_WatchRole(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()
	pause := contracts.PauseRole

	events := make(chan *token.RoleMembershipEvent, 10)
	sub, err := token.WatchRole(s.Reader, tok, token.RoleFilter{Role: &pause}, tempo.WatchOptions{},
		func(ev *token.RoleMembershipEvent) { events <- ev })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	_, err = token.GrantRolesSync(ctx, s.Clients[0], token.RolesParams{Token: tok,
		Roles: []string{"unpause", "pause"}, Account: s.Addrs[1]}, tempo.TxOptions{})
	require.NoError(t, err)

	ev := tempotest.ReceiveWithin(t, events, eventTimeout)
	assert.Equal(t, pause, ev.Role)
	assert.Equal(t, s.Addrs[1], ev.Account)
	assert.True(t, ev.HasRole)
	tempotest.AssertNoneWithin(t, events, noEventWithin)
}

func Test_WatchCreate(t *testing.T) {
	s, _ := setup(t)

	events := make(chan *token.CreateEvent, 10)
	sub, err := token.WatchCreate(s.Reader, tempo.WatchOptions{}, func(ev *token.CreateEvent) { events <- ev })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	created, err := token.CreateSync(context.Background(), s.Clients[1], token.CreateParams{Name: "Beta",
		Symbol: "BETA"}, tempo.TxOptions{})
	require.NoError(t, err)

	ev := tempotest.ReceiveWithin(t, events, eventTimeout)
	assert.Equal(t, created.Token, ev.Token)
	assert.Equal(t, s.Addrs[1], ev.Admin)
	assert.Equal(t, "BETA", ev.Symbol)
}
