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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// Field names of the event types match the event inputs of the ABI, as
// required for decoding. Raw holds the log the event was decoded from.

// TransferEvent is emitted on every change of balances, including mint and
// burn.
type TransferEvent struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
	Raw    types.Log
}

// ApprovalEvent is emitted when an allowance is set.
type ApprovalEvent struct {
	Owner   common.Address
	Spender common.Address
	Amount  *big.Int
	Raw     types.Log
}

// MintEvent is emitted when new tokens are issued.
type MintEvent struct {
	To     common.Address
	Amount *big.Int
	Raw    types.Log
}

// BurnEvent is emitted when the issuer burns own tokens.
type BurnEvent struct {
	From   common.Address
	Amount *big.Int
	Raw    types.Log
}

// BurnBlockedEvent is emitted when tokens of a blocked account are burned.
type BurnBlockedEvent struct {
	From   common.Address
	Amount *big.Int
	Raw    types.Log
}

// PauseStateEvent is emitted when the token is paused or unpaused.
type PauseStateEvent struct {
	Updater  common.Address
	IsPaused bool
	Raw      types.Log
}

// TransferPolicyEvent is emitted when the transfer policy of the token
// changes.
type TransferPolicyEvent struct {
	Updater     common.Address
	NewPolicyId uint64 // nolint: revive, stylecheck	// name must match abi.
	Raw         types.Log
}

// SupplyCapEvent is emitted when the supply cap of the token changes.
type SupplyCapEvent struct {
	Updater      common.Address
	NewSupplyCap *big.Int
	Raw          types.Log
}

// RoleMembershipEvent is emitted when a role is granted, revoked or
// renounced.
type RoleMembershipEvent struct {
	Role    [32]byte
	Account common.Address
	Sender  common.Address
	HasRole bool
	Raw     types.Log
}

// RoleAdminEvent is emitted when the admin role of a role changes.
type RoleAdminEvent struct {
	Role         [32]byte
	NewAdminRole [32]byte
	Sender       common.Address
	Raw          types.Log
}

// CreateEvent is emitted by the factory when a token is created.
type CreateEvent struct {
	Token      common.Address
	Id         *big.Int // nolint: revive, stylecheck	// name must match abi.
	Name       string
	Symbol     string
	Currency   string
	QuoteToken common.Address
	Admin      common.Address
	Raw        types.Log
}

func extract(logs []*types.Log, token common.Address, eventName string, out interface{}) (types.Log, error) {
	return contract.ExtractEvent(logs, tempo.TIP20, token, contracts.TIP20, eventName, out)
}

// ExtractTransferEvent returns the first Transfer event of the token in the
// logs of a receipt.
func ExtractTransferEvent(logs []*types.Log, token common.Address) (*TransferEvent, error) {
	ev := &TransferEvent{}
	raw, err := extract(logs, token, "Transfer", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractApprovalEvent returns the first Approval event of the token in the
// logs of a receipt.
func ExtractApprovalEvent(logs []*types.Log, token common.Address) (*ApprovalEvent, error) {
	ev := &ApprovalEvent{}
	raw, err := extract(logs, token, "Approval", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractMintEvent returns the first Mint event of the token in the logs of
// a receipt.
func ExtractMintEvent(logs []*types.Log, token common.Address) (*MintEvent, error) {
	ev := &MintEvent{}
	raw, err := extract(logs, token, "Mint", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractBurnEvent returns the first Burn event of the token in the logs of
// a receipt.
func ExtractBurnEvent(logs []*types.Log, token common.Address) (*BurnEvent, error) {
	ev := &BurnEvent{}
	raw, err := extract(logs, token, "Burn", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractCreateEvent returns the first TokenCreated event of the factory in
// the logs of a receipt.
func ExtractCreateEvent(logs []*types.Log) (*CreateEvent, error) {
	ev := &CreateEvent{}
	raw, err := contract.ExtractEvent(logs, tempo.TIP20Factory, contracts.TIP20FactoryAddress,
		contracts.TIP20Factory, "TokenCreated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}
