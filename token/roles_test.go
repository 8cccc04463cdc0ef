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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/token"
	"github.com/tempo-labs/tempo-actions/tempotest"
)

func Test_ParseRole(t *testing.T) {
	tests := []struct {
		name string
		want [32]byte
	}{
		{"defaultAdmin", contracts.DefaultAdminRole},
		{"issuer", contracts.IssuerRole},
		{"pause", contracts.PauseRole},
		{"unpause", contracts.UnpauseRole},
		{"burnBlocked", contracts.BurnBlockedRole},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := token.ParseRole(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := token.ParseRole("minter")
		tempotest.AssertInvalidArgumentError(t, err, "role", "minter")
	})
}

func Test_RoleCalls(t *testing.T) {
	tok, account := contracts.TokenAddress(1), contracts.TokenAddress(2)

	t.Run("one_call_per_role", func(t *testing.T) {
		calls, err := token.GrantRolesCall(token.RolesParams{Token: tok, Roles: []string{"issuer", "pause"},
			Account: account})
		require.NoError(t, err)
		require.Len(t, calls, 2)
		for i, role := range [][32]byte{contracts.IssuerRole, contracts.PauseRole} {
			assert.Equal(t, "grantRole", calls[i].Method)
			assert.Equal(t, []interface{}{role, account}, calls[i].Args)
		}
	})

	t.Run("revoke", func(t *testing.T) {
		calls, err := token.RevokeRolesCall(token.RolesParams{Token: tok, Roles: []string{"issuer"},
			Account: account})
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "revokeRole", calls[0].Method)
	})

	t.Run("renounce", func(t *testing.T) {
		calls, err := token.RenounceRolesCall(token.RenounceRolesParams{Token: tok, Roles: []string{"issuer"}})
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "renounceRole", calls[0].Method)
		assert.Equal(t, []interface{}{contracts.IssuerRole}, calls[0].Args)
	})

	t.Run("no_roles", func(t *testing.T) {
		_, err := token.GrantRolesCall(token.RolesParams{Token: tok, Account: account})
		tempotest.AssertInvalidArgumentError(t, err, "roles", "")
	})

	t.Run("unknown_role", func(t *testing.T) {
		_, err := token.RevokeRolesCall(token.RolesParams{Token: tok, Roles: []string{"issuer", "owner"},
			Account: account})
		tempotest.AssertInvalidArgumentError(t, err, "role", "owner")
	})

	t.Run("set_role_admin_unknown_role", func(t *testing.T) {
		_, err := token.SetRoleAdminCall(token.SetRoleAdminParams{Token: tok, Role: "issuer", AdminRole: "root"})
		tempotest.AssertInvalidArgumentError(t, err, "role", "root")
	})
}

func Test_Roles(t *testing.T) {
	s, tok := setup(t)
	ctx := context.Background()

	hasRole := func(t *testing.T, account int, role [32]byte) bool {
		t.Helper()
		ok, err := token.HasRole(ctx, s.Reader, tok, s.Addrs[account], role, tempo.CallOptions{})
		require.NoError(t, err)
		return ok
	}

	t.Run("grant", func(t *testing.T) {
		events, err := token.GrantRolesSync(ctx, s.Clients[0], token.RolesParams{Token: tok,
			Roles: []string{"issuer", "pause"}, Account: s.Addrs[1]}, tempo.TxOptions{})
		require.NoError(t, err)
		require.Len(t, events, 2)
		for i, role := range [][32]byte{contracts.IssuerRole, contracts.PauseRole} {
			assert.Equal(t, role, events[i].Role)
			assert.Equal(t, s.Addrs[1], events[i].Account)
			assert.Equal(t, s.Addrs[0], events[i].Sender)
			assert.True(t, events[i].HasRole)
			assert.True(t, hasRole(t, 1, role))
		}
		assert.NotEqual(t, events[0].Raw.TxHash, events[1].Raw.TxHash)
	})

	t.Run("grant_explicit_nonce", func(t *testing.T) {
		nonce, err := s.Backend.PendingNonceAt(ctx, s.Addrs[0])
		require.NoError(t, err)
		txs, err := token.GrantRoles(ctx, s.Clients[0], token.RolesParams{Token: tok,
			Roles: []string{"unpause", "burnBlocked"}, Account: s.Addrs[2]}, tempo.TxOptions{Nonce: &nonce})
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, nonce, txs[0].Nonce())
		assert.Equal(t, nonce+1, txs[1].Nonce())
		assert.True(t, hasRole(t, 2, contracts.UnpauseRole))
		assert.True(t, hasRole(t, 2, contracts.BurnBlockedRole))
	})

	t.Run("grant_not_admin", func(t *testing.T) {
		_, err := token.GrantRolesSync(ctx, s.Clients[1], token.RolesParams{Token: tok,
			Roles: []string{"issuer"}, Account: s.Addrs[2]}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "grantRole")
	})

	t.Run("revoke", func(t *testing.T) {
		events, err := token.RevokeRolesSync(ctx, s.Clients[0], token.RolesParams{Token: tok,
			Roles: []string{"pause"}, Account: s.Addrs[1]}, tempo.TxOptions{})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.False(t, events[0].HasRole)
		assert.False(t, hasRole(t, 1, contracts.PauseRole))

		_, err = token.RevokeRoles(ctx, s.Clients[0], token.RolesParams{Token: tok,
			Roles: []string{"burnBlocked"}, Account: s.Addrs[2]}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.False(t, hasRole(t, 2, contracts.BurnBlockedRole))
	})

	t.Run("renounce", func(t *testing.T) {
		events, err := token.RenounceRolesSync(ctx, s.Clients[1], token.RenounceRolesParams{Token: tok,
			Roles: []string{"issuer"}}, tempo.TxOptions{})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, s.Addrs[1], events[0].Account)
		assert.Equal(t, s.Addrs[1], events[0].Sender)
		assert.False(t, hasRole(t, 1, contracts.IssuerRole))

		_, err = token.RenounceRoles(ctx, s.Clients[2], token.RenounceRolesParams{Token: tok,
			Roles: []string{"unpause"}}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.False(t, hasRole(t, 2, contracts.UnpauseRole))
	})

	t.Run("renounce_not_held", func(t *testing.T) {
		_, err := token.RenounceRolesSync(ctx, s.Clients[1], token.RenounceRolesParams{Token: tok,
			Roles: []string{"issuer"}}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "renounceRole")
	})

	t.Run("set_role_admin", func(t *testing.T) {
		_, err := token.GrantRolesSync(ctx, s.Clients[0], token.RolesParams{Token: tok,
			Roles: []string{"pause"}, Account: s.Addrs[2]}, tempo.TxOptions{})
		require.NoError(t, err)

		ev, err := token.SetRoleAdminSync(ctx, s.Clients[0], token.SetRoleAdminParams{Token: tok,
			Role: "issuer", AdminRole: "pause"}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.Equal(t, contracts.IssuerRole, ev.Role)
		assert.Equal(t, contracts.PauseRole, ev.NewAdminRole)
		assert.Equal(t, s.Addrs[0], ev.Sender)

		// Only holders of the pause role may grant the issuer role now.
		_, err = token.GrantRolesSync(ctx, s.Clients[0], token.RolesParams{Token: tok,
			Roles: []string{"issuer"}, Account: s.Addrs[1]}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "grantRole")
		_, err = token.GrantRolesSync(ctx, s.Clients[2], token.RolesParams{Token: tok,
			Roles: []string{"issuer"}, Account: s.Addrs[1]}, tempo.TxOptions{})
		require.NoError(t, err)
		assert.True(t, hasRole(t, 1, contracts.IssuerRole))
	})

	t.Run("set_role_admin_not_admin", func(t *testing.T) {
		_, err := token.SetRoleAdmin(ctx, s.Clients[1], token.SetRoleAdminParams{Token: tok,
			Role: "pause", AdminRole: "issuer"}, tempo.TxOptions{})
		require.NoError(t, err)

		_, err = token.SetRoleAdminSync(ctx, s.Clients[1], token.SetRoleAdminParams{Token: tok,
			Role: "pause", AdminRole: "issuer"}, tempo.TxOptions{})
		tempotest.AssertTxRevertedError(t, err, tempo.TIP20, "setRoleAdmin")
	})
}
