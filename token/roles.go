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

package token

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// RolesParams are the arguments for granting or revoking roles. Roles are
// given by name, see contracts.RoleNames. The sender needs the admin role
// of each role.
type RolesParams struct {
	Token   common.Address
	Roles   []string
	Account common.Address
}

// RenounceRolesParams are the arguments for giving up own roles.
type RenounceRolesParams struct {
	Token common.Address
	Roles []string
}

// SetRoleAdminParams are the arguments for changing the role whose holders
// may grant and revoke Role.
type SetRoleAdminParams struct {
	Token     common.Address
	Role      string
	AdminRole string
}

// ParseRole returns the hash of the named role.
func ParseRole(name string) ([32]byte, error) {
	role, ok := contracts.RoleByName(name)
	if !ok {
		return role, tempo.NewInvalidArgumentError("role", name,
			"one of "+strings.Join(contracts.RoleNames(), ", "))
	}
	return role, nil
}

func roleCalls(token common.Address, roles []string, method string, account *common.Address) ([]tempo.Call, error) {
	if len(roles) == 0 {
		return nil, tempo.NewInvalidArgumentError("roles", "", "at least one role")
	}
	calls := make([]tempo.Call, len(roles))
	for i := range roles {
		role, err := ParseRole(roles[i])
		if err != nil {
			return nil, err
		}
		if account == nil {
			calls[i] = tokenCall(token, method, role)
		} else {
			calls[i] = tokenCall(token, method, role, *account)
		}
	}
	return calls, nil
}

// GrantRolesCall returns one grantRole call per role.
func GrantRolesCall(p RolesParams) ([]tempo.Call, error) {
	return roleCalls(p.Token, p.Roles, "grantRole", &p.Account)
}

// GrantRoles sends one grantRole transaction per role.
func GrantRoles(ctx context.Context, c tempo.ChainClient, p RolesParams, opts tempo.TxOptions) (
	[]*types.Transaction, error) {
	calls, err := GrantRolesCall(p)
	if err != nil {
		return nil, err
	}
	return writeAll(ctx, c, calls, opts)
}

// GrantRolesSync sends one grantRole transaction per role and returns the
// RoleMembershipUpdated events once they are mined.
func GrantRolesSync(ctx context.Context, c tempo.ChainClient, p RolesParams, opts tempo.TxOptions) (
	[]*RoleMembershipEvent, error) {
	calls, err := GrantRolesCall(p)
	if err != nil {
		return nil, err
	}
	return writeAllSync(ctx, c, calls, opts)
}

// RevokeRolesCall returns one revokeRole call per role.
func RevokeRolesCall(p RolesParams) ([]tempo.Call, error) {
	return roleCalls(p.Token, p.Roles, "revokeRole", &p.Account)
}

// RevokeRoles sends one revokeRole transaction per role.
func RevokeRoles(ctx context.Context, c tempo.ChainClient, p RolesParams, opts tempo.TxOptions) (
	[]*types.Transaction, error) {
	calls, err := RevokeRolesCall(p)
	if err != nil {
		return nil, err
	}
	return writeAll(ctx, c, calls, opts)
}

// RevokeRolesSync sends one revokeRole transaction per role and returns the
// RoleMembershipUpdated events once they are mined.
func RevokeRolesSync(ctx context.Context, c tempo.ChainClient, p RolesParams, opts tempo.TxOptions) (
	[]*RoleMembershipEvent, error) {
	calls, err := RevokeRolesCall(p)
	if err != nil {
		return nil, err
	}
	return writeAllSync(ctx, c, calls, opts)
}

// RenounceRolesCall returns one renounceRole call per role.
func RenounceRolesCall(p RenounceRolesParams) ([]tempo.Call, error) {
	return roleCalls(p.Token, p.Roles, "renounceRole", nil)
}

// RenounceRoles sends one renounceRole transaction per role.
func RenounceRoles(ctx context.Context, c tempo.ChainClient, p RenounceRolesParams, opts tempo.TxOptions) (
	[]*types.Transaction, error) {
	calls, err := RenounceRolesCall(p)
	if err != nil {
		return nil, err
	}
	return writeAll(ctx, c, calls, opts)
}

// RenounceRolesSync sends one renounceRole transaction per role and returns
// the RoleMembershipUpdated events once they are mined.
func RenounceRolesSync(ctx context.Context, c tempo.ChainClient, p RenounceRolesParams, opts tempo.TxOptions) (
	[]*RoleMembershipEvent, error) {
	calls, err := RenounceRolesCall(p)
	if err != nil {
		return nil, err
	}
	return writeAllSync(ctx, c, calls, opts)
}

// SetRoleAdminCall returns the call for changing the admin role.
func SetRoleAdminCall(p SetRoleAdminParams) (tempo.Call, error) {
	role, err := ParseRole(p.Role)
	if err != nil {
		return tempo.Call{}, err
	}
	adminRole, err := ParseRole(p.AdminRole)
	if err != nil {
		return tempo.Call{}, err
	}
	return tokenCall(p.Token, "setRoleAdmin", role, adminRole), nil
}

// SetRoleAdmin sends a setRoleAdmin transaction.
func SetRoleAdmin(ctx context.Context, c tempo.ChainClient, p SetRoleAdminParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := SetRoleAdminCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// SetRoleAdminSync sends a setRoleAdmin transaction and returns the
// RoleAdminUpdated event once it is mined.
func SetRoleAdminSync(ctx context.Context, c tempo.ChainClient, p SetRoleAdminParams, opts tempo.TxOptions) (
	*RoleAdminEvent, error) {
	call, err := SetRoleAdminCall(p)
	if err != nil {
		return nil, err
	}
	ev := &RoleAdminEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "RoleAdminUpdated", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// nthTxOptions returns the options for the n-th of consecutive transactions.
// An explicit nonce is incremented for each of them.
func nthTxOptions(opts tempo.TxOptions, n int) tempo.TxOptions {
	if opts.Nonce != nil {
		nonce := *opts.Nonce + uint64(n)
		opts.Nonce = &nonce
	}
	return opts
}

func writeAll(ctx context.Context, c tempo.ChainClient, calls []tempo.Call, opts tempo.TxOptions) (
	[]*types.Transaction, error) {
	txs := make([]*types.Transaction, 0, len(calls))
	for i := range calls {
		tx, err := contract.Write(ctx, c, calls[i], nthTxOptions(opts, i))
		if err != nil {
			return txs, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func writeAllSync(ctx context.Context, c tempo.ChainClient, calls []tempo.Call, opts tempo.TxOptions) (
	[]*RoleMembershipEvent, error) {
	events := make([]*RoleMembershipEvent, 0, len(calls))
	for i := range calls {
		ev := &RoleMembershipEvent{}
		raw, err := contract.WriteSync(ctx, c, tempo.TIP20, calls[i], nthTxOptions(opts, i),
			"RoleMembershipUpdated", ev)
		if err != nil {
			return events, err
		}
		ev.Raw = raw
		events = append(events, ev)
	}
	return events, nil
}
