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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// Filters restrict watches on the indexed event fields. Nil fields match
// any value.

// TransferFilter selects Transfer events.
type TransferFilter struct {
	From *common.Address
	To   *common.Address
}

// ApprovalFilter selects Approval events.
type ApprovalFilter struct {
	Owner   *common.Address
	Spender *common.Address
}

// RoleFilter selects RoleMembershipUpdated events.
type RoleFilter struct {
	Role    *[32]byte
	Account *common.Address
}

// The callbacks of all watches are invoked one at a time from a single
// goroutine. The watch ends when the returned subscription is unsubscribed
// or fails; the error is then available on its Err channel.

// WatchTransfer calls onTransfer for every matching Transfer event of the
// token.
func WatchTransfer(c tempo.ChainClient, token common.Address, f TransferFilter, opts tempo.WatchOptions,
	onTransfer func(*TransferEvent)) (event.Subscription, error) {
	query := [][]interface{}{contract.AddressRule(f.From), contract.AddressRule(f.To)}
	return contract.Watch(c, token, contracts.TIP20, "Transfer", opts, query, func(l types.Log) error {
		ev := &TransferEvent{Raw: l}
		if err := contract.UnpackLog(contracts.TIP20, ev, "Transfer", l); err != nil {
			return err
		}
		onTransfer(ev)
		return nil
	})
}

// WatchApprove calls onApproval for every matching Approval event of the
// token.
func WatchApprove(c tempo.ChainClient, token common.Address, f ApprovalFilter, opts tempo.WatchOptions,
	onApproval func(*ApprovalEvent)) (event.Subscription, error) {
	query := [][]interface{}{contract.AddressRule(f.Owner), contract.AddressRule(f.Spender)}
	return contract.Watch(c, token, contracts.TIP20, "Approval", opts, query, func(l types.Log) error {
		ev := &ApprovalEvent{Raw: l}
		if err := contract.UnpackLog(contracts.TIP20, ev, "Approval", l); err != nil {
			return err
		}
		onApproval(ev)
		return nil
	})
}

// WatchMint calls onMint for every Mint event of the token with a matching
// recipient.
func WatchMint(c tempo.ChainClient, token common.Address, to *common.Address, opts tempo.WatchOptions,
	onMint func(*MintEvent)) (event.Subscription, error) {
	query := [][]interface{}{contract.AddressRule(to)}
	return contract.Watch(c, token, contracts.TIP20, "Mint", opts, query, func(l types.Log) error {
		ev := &MintEvent{Raw: l}
		if err := contract.UnpackLog(contracts.TIP20, ev, "Mint", l); err != nil {
			return err
		}
		onMint(ev)
		return nil
	})
}

// WatchBurn calls onBurn for every Burn event of the token with a matching
// holder.
func WatchBurn(c tempo.ChainClient, token common.Address, from *common.Address, opts tempo.WatchOptions,
	onBurn func(*BurnEvent)) (event.Subscription, error) {
	query := [][]interface{}{contract.AddressRule(from)}
	return contract.Watch(c, token, contracts.TIP20, "Burn", opts, query, func(l types.Log) error {
		ev := &BurnEvent{Raw: l}
		if err := contract.UnpackLog(contracts.TIP20, ev, "Burn", l); err != nil {
			return err
		}
		onBurn(ev)
		return nil
	})
}

// WatchRole calls onRole for every matching RoleMembershipUpdated event of
// the token.
func WatchRole(c tempo.ChainClient, token common.Address, f RoleFilter, opts tempo.WatchOptions,
	onRole func(*RoleMembershipEvent)) (event.Subscription, error) {
	var roleRule []interface{}
	if f.Role != nil {
		roleRule = []interface{}{*f.Role}
	}
	query := [][]interface{}{roleRule, contract.AddressRule(f.Account)}
	return contract.Watch(c, token, contracts.TIP20, "RoleMembershipUpdated", opts, query,
		func(l types.Log) error {
			ev := &RoleMembershipEvent{Raw: l}
			if err := contract.UnpackLog(contracts.TIP20, ev, "RoleMembershipUpdated", l); err != nil {
				return err
			}
			onRole(ev)
			return nil
		})
}

// WatchCreate calls onCreate for every token created by the factory.
func WatchCreate(c tempo.ChainClient, opts tempo.WatchOptions, onCreate func(*CreateEvent)) (
	event.Subscription, error) {
	return contract.Watch(c, contracts.TIP20FactoryAddress, contracts.TIP20Factory, "TokenCreated", opts, nil,
		func(l types.Log) error {
			ev := &CreateEvent{Raw: l}
			if err := contract.UnpackLog(contracts.TIP20Factory, ev, "TokenCreated", l); err != nil {
				return err
			}
			onCreate(ev)
			return nil
		})
}
