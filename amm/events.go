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

package amm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// MintEvent is emitted when liquidity is added.
type MintEvent struct {
	Sender               common.Address
	UserToken            common.Address
	ValidatorToken       common.Address
	AmountUserToken      *big.Int
	AmountValidatorToken *big.Int
	Liquidity            *big.Int
	Raw                  types.Log
}

// BurnEvent is emitted when liquidity is removed.
type BurnEvent struct {
	Sender               common.Address
	UserToken            common.Address
	ValidatorToken       common.Address
	AmountUserToken      *big.Int
	AmountValidatorToken *big.Int
	Liquidity            *big.Int
	To                   common.Address
	Raw                  types.Log
}

// RebalanceSwapEvent is emitted when user tokens are bought from a pool.
type RebalanceSwapEvent struct {
	UserToken      common.Address
	ValidatorToken common.Address
	Swapper        common.Address
	AmountIn       *big.Int
	AmountOut      *big.Int
	Raw            types.Log
}

// FeeSwapEvent is emitted by the protocol when fees paid in the user token
// are converted into the validator token.
type FeeSwapEvent struct {
	UserToken      common.Address
	ValidatorToken common.Address
	AmountIn       *big.Int
	AmountOut      *big.Int
	Raw            types.Log
}

// ExtractMintEvent returns the first Mint event of the fee AMM in the logs
// of a receipt.
func ExtractMintEvent(logs []*types.Log) (*MintEvent, error) {
	ev := &MintEvent{}
	raw, err := contract.ExtractEvent(logs, tempo.FeeAMM, contracts.FeeAMMAddress, contracts.FeeAMM, "Mint", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractBurnEvent returns the first Burn event of the fee AMM in the logs
// of a receipt.
func ExtractBurnEvent(logs []*types.Log) (*BurnEvent, error) {
	ev := &BurnEvent{}
	raw, err := contract.ExtractEvent(logs, tempo.FeeAMM, contracts.FeeAMMAddress, contracts.FeeAMM, "Burn", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractRebalanceSwapEvent returns the first RebalanceSwap event of the fee
// AMM in the logs of a receipt.
func ExtractRebalanceSwapEvent(logs []*types.Log) (*RebalanceSwapEvent, error) {
	ev := &RebalanceSwapEvent{}
	raw, err := contract.ExtractEvent(logs, tempo.FeeAMM, contracts.FeeAMMAddress, contracts.FeeAMM,
		"RebalanceSwap", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// PoolFilter selects events by token pair. Nil fields match any token.
type PoolFilter struct {
	UserToken      *common.Address
	ValidatorToken *common.Address
}

func (f PoolFilter) rules() [][]interface{} {
	return [][]interface{}{contract.AddressRule(f.UserToken), contract.AddressRule(f.ValidatorToken)}
}

// The first indexed field of Mint and Burn is the sender.
func (f PoolFilter) rulesAfterSender() [][]interface{} {
	return append([][]interface{}{nil}, f.rules()...)
}

func watch(c tempo.ChainClient, eventName string, opts tempo.WatchOptions, query [][]interface{},
	newEvent func(types.Log) interface{}, handle func(interface{})) (event.Subscription, error) {
	return contract.Watch(c, contracts.FeeAMMAddress, contracts.FeeAMM, eventName, opts, query,
		func(l types.Log) error {
			ev := newEvent(l)
			if err := contract.UnpackLog(contracts.FeeAMM, ev, eventName, l); err != nil {
				return err
			}
			handle(ev)
			return nil
		})
}

// WatchMint calls onMint for every liquidity deposit into matching pools.
func WatchMint(c tempo.ChainClient, f PoolFilter, opts tempo.WatchOptions, onMint func(*MintEvent)) (
	event.Subscription, error) {
	return watch(c, "Mint", opts, f.rulesAfterSender(),
		func(l types.Log) interface{} { return &MintEvent{Raw: l} },
		func(ev interface{}) { onMint(ev.(*MintEvent)) })
}

// WatchBurn calls onBurn for every liquidity withdrawal from matching pools.
func WatchBurn(c tempo.ChainClient, f PoolFilter, opts tempo.WatchOptions, onBurn func(*BurnEvent)) (
	event.Subscription, error) {
	return watch(c, "Burn", opts, f.rulesAfterSender(),
		func(l types.Log) interface{} { return &BurnEvent{Raw: l} },
		func(ev interface{}) { onBurn(ev.(*BurnEvent)) })
}

// WatchRebalanceSwap calls onSwap for every rebalancing swap in matching
// pools.
func WatchRebalanceSwap(c tempo.ChainClient, f PoolFilter, opts tempo.WatchOptions,
	onSwap func(*RebalanceSwapEvent)) (event.Subscription, error) {
	return watch(c, "RebalanceSwap", opts, f.rules(),
		func(l types.Log) interface{} { return &RebalanceSwapEvent{Raw: l} },
		func(ev interface{}) { onSwap(ev.(*RebalanceSwapEvent)) })
}

// WatchFeeSwap calls onSwap for every fee conversion in matching pools.
func WatchFeeSwap(c tempo.ChainClient, f PoolFilter, opts tempo.WatchOptions, onSwap func(*FeeSwapEvent)) (
	event.Subscription, error) {
	return watch(c, "FeeSwap", opts, f.rules(),
		func(l types.Log) interface{} { return &FeeSwapEvent{Raw: l} },
		func(ev interface{}) { onSwap(ev.(*FeeSwapEvent)) })
}
