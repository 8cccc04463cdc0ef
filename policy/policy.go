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

// Package policy binds the TIP403 registry, which holds the transfer
// policies referenced by TIP20 tokens.
//
// A whitelist policy authorizes only its members, a blacklist policy
// authorizes everyone except its members. Policy ids 0 (reject all) and 1
// (allow all) are built in.
package policy

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// Type of a policy, as encoded in the registry.
type Type uint8

// Enumeration of policy types.
const (
	Whitelist Type = 0
	Blacklist Type = 1
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Whitelist:
		return "whitelist"
	case Blacklist:
		return "blacklist"
	}
	return "unknown"
}

// ParseType parses "whitelist" or "blacklist", ignoring case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "whitelist":
		return Whitelist, nil
	case "blacklist":
		return Blacklist, nil
	}
	return 0, tempo.NewInvalidArgumentError("policy type", s, "whitelist or blacklist")
}

// Data is the configuration of a policy.
type Data struct {
	Type  Type
	Admin common.Address
}

func registryCall(method string, args ...interface{}) tempo.Call {
	return tempo.Call{To: contracts.TIP403RegistryAddress, ABI: contracts.TIP403Registry, Method: method, Args: args}
}

// GetData returns the type and admin of the policy.
func GetData(ctx context.Context, c tempo.ChainClient, policyID uint64, opts tempo.CallOptions) (*Data, error) {
	out, err := contract.Read(ctx, c, registryCall("policyData", policyID), opts)
	if err != nil {
		return nil, err
	}
	return &Data{Type: Type(out[0].(uint8)), Admin: out[1].(common.Address)}, nil
}

// IsAuthorized reports whether the user may send and receive tokens
// governed by the policy.
func IsAuthorized(ctx context.Context, c tempo.ChainClient, policyID uint64, user common.Address,
	opts tempo.CallOptions) (bool, error) {
	out, err := contract.ReadOne(ctx, c, registryCall("isAuthorized", policyID, user), opts)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// GetCounter returns the id that will be assigned to the next policy.
func GetCounter(ctx context.Context, c tempo.ChainClient, opts tempo.CallOptions) (uint64, error) {
	out, err := contract.ReadOne(ctx, c, registryCall("policyIdCounter"), opts)
	if err != nil {
		return 0, err
	}
	return out.(uint64), nil
}

// CreateParams are the arguments for creating a policy. If Addresses is
// not empty, they are added as initial members.
type CreateParams struct {
	Admin     common.Address
	Type      Type
	Addresses []common.Address
}

// CreateCall returns the call for creating the policy, choosing between
// createPolicy and createPolicyWithAccounts.
func CreateCall(p CreateParams) (tempo.Call, error) {
	if p.Type != Whitelist && p.Type != Blacklist {
		return tempo.Call{}, tempo.NewInvalidArgumentError("policy type", p.Type.String(), "whitelist or blacklist")
	}
	if len(p.Addresses) == 0 {
		return registryCall("createPolicy", p.Admin, uint8(p.Type)), nil
	}
	return registryCall("createPolicyWithAccounts", p.Admin, uint8(p.Type), p.Addresses), nil
}

func withAdmin(c tempo.ChainClient, p CreateParams) CreateParams {
	if p.Admin == (common.Address{}) {
		p.Admin = c.Account()
	}
	return p
}

// Create sends a transaction creating the policy. A zero Admin is replaced
// by the sending account.
func Create(ctx context.Context, c tempo.ChainClient, p CreateParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := CreateCall(withAdmin(c, p))
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// CreateSync sends a transaction creating the policy and returns the
// PolicyCreated event, which holds the id of the new policy, once it is
// mined. A zero Admin is replaced by the sending account.
func CreateSync(ctx context.Context, c tempo.ChainClient, p CreateParams, opts tempo.TxOptions) (
	*CreatedEvent, error) {
	call, err := CreateCall(withAdmin(c, p))
	if err != nil {
		return nil, err
	}
	ev := &CreatedEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP403Registry, call, opts, "PolicyCreated", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// SetAdminParams are the arguments for handing over a policy. The sender
// must be the current admin.
type SetAdminParams struct {
	PolicyID uint64
	Admin    common.Address
}

// SetAdminCall returns the call for changing the admin.
func SetAdminCall(p SetAdminParams) tempo.Call {
	return registryCall("setPolicyAdmin", p.PolicyID, p.Admin)
}

// SetAdmin sends a setPolicyAdmin transaction.
func SetAdmin(ctx context.Context, c tempo.ChainClient, p SetAdminParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, SetAdminCall(p), opts)
}

// SetAdminSync sends a setPolicyAdmin transaction and returns the
// PolicyAdminUpdated event once it is mined.
func SetAdminSync(ctx context.Context, c tempo.ChainClient, p SetAdminParams, opts tempo.TxOptions) (
	*AdminUpdatedEvent, error) {
	ev := &AdminUpdatedEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.TIP403Registry, SetAdminCall(p), opts, "PolicyAdminUpdated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ModifyWhitelistParams are the arguments for adding an account to or
// removing it from a whitelist policy.
type ModifyWhitelistParams struct {
	PolicyID uint64
	Account  common.Address
	Allowed  bool
}

// ModifyWhitelistCall returns the call for changing the membership.
func ModifyWhitelistCall(p ModifyWhitelistParams) tempo.Call {
	return registryCall("modifyPolicyWhitelist", p.PolicyID, p.Account, p.Allowed)
}

// ModifyWhitelist sends a modifyPolicyWhitelist transaction.
func ModifyWhitelist(ctx context.Context, c tempo.ChainClient, p ModifyWhitelistParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, ModifyWhitelistCall(p), opts)
}

// ModifyWhitelistSync sends a modifyPolicyWhitelist transaction and returns
// the WhitelistUpdated event once it is mined.
func ModifyWhitelistSync(ctx context.Context, c tempo.ChainClient, p ModifyWhitelistParams,
	opts tempo.TxOptions) (*WhitelistUpdatedEvent, error) {
	ev := &WhitelistUpdatedEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.TIP403Registry, ModifyWhitelistCall(p), opts,
		"WhitelistUpdated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ModifyBlacklistParams are the arguments for adding an account to or
// removing it from a blacklist policy.
type ModifyBlacklistParams struct {
	PolicyID   uint64
	Account    common.Address
	Restricted bool
}

// ModifyBlacklistCall returns the call for changing the membership.
func ModifyBlacklistCall(p ModifyBlacklistParams) tempo.Call {
	return registryCall("modifyPolicyBlacklist", p.PolicyID, p.Account, p.Restricted)
}

// ModifyBlacklist sends a modifyPolicyBlacklist transaction.
func ModifyBlacklist(ctx context.Context, c tempo.ChainClient, p ModifyBlacklistParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, ModifyBlacklistCall(p), opts)
}

// ModifyBlacklistSync sends a modifyPolicyBlacklist transaction and returns
// the BlacklistUpdated event once it is mined.
func ModifyBlacklistSync(ctx context.Context, c tempo.ChainClient, p ModifyBlacklistParams,
	opts tempo.TxOptions) (*BlacklistUpdatedEvent, error) {
	ev := &BlacklistUpdatedEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.TIP403Registry, ModifyBlacklistCall(p), opts,
		"BlacklistUpdated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}
