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

package policy

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// Field names of the event types match the event inputs of the ABI, as
// required for decoding. Raw holds the log the event was decoded from.

// CreatedEvent is emitted when a policy is created.
type CreatedEvent struct {
	PolicyId   uint64
	Updater    common.Address
	PolicyType uint8
	Raw        types.Log
}

// Type returns the type of the created policy.
func (e *CreatedEvent) Type() Type {
	return Type(e.PolicyType)
}

// AdminUpdatedEvent is emitted when a policy is created or handed over.
type AdminUpdatedEvent struct {
	PolicyId uint64
	Updater  common.Address
	Admin    common.Address
	Raw      types.Log
}

// WhitelistUpdatedEvent is emitted when the membership of a whitelist
// changes.
type WhitelistUpdatedEvent struct {
	PolicyId uint64
	Updater  common.Address
	Account  common.Address
	Allowed  bool
	Raw      types.Log
}

// BlacklistUpdatedEvent is emitted when the membership of a blacklist
// changes.
type BlacklistUpdatedEvent struct {
	PolicyId   uint64
	Updater    common.Address
	Account    common.Address
	Restricted bool
	Raw        types.Log
}

// ExtractCreatedEvent returns the first PolicyCreated event in the logs of
// a receipt.
func ExtractCreatedEvent(logs []*types.Log) (*CreatedEvent, error) {
	ev := &CreatedEvent{}
	raw, err := extract(logs, "PolicyCreated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractAdminUpdatedEvent returns the first PolicyAdminUpdated event in the
// logs of a receipt.
func ExtractAdminUpdatedEvent(logs []*types.Log) (*AdminUpdatedEvent, error) {
	ev := &AdminUpdatedEvent{}
	raw, err := extract(logs, "PolicyAdminUpdated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractWhitelistUpdatedEvent returns the first WhitelistUpdated event in
// the logs of a receipt.
func ExtractWhitelistUpdatedEvent(logs []*types.Log) (*WhitelistUpdatedEvent, error) {
	ev := &WhitelistUpdatedEvent{}
	raw, err := extract(logs, "WhitelistUpdated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractBlacklistUpdatedEvent returns the first BlacklistUpdated event in
// the logs of a receipt.
func ExtractBlacklistUpdatedEvent(logs []*types.Log) (*BlacklistUpdatedEvent, error) {
	ev := &BlacklistUpdatedEvent{}
	raw, err := extract(logs, "BlacklistUpdated", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

func extract(logs []*types.Log, eventName string, ev interface{}) (types.Log, error) {
	return contract.ExtractEvent(logs, tempo.TIP403Registry, contracts.TIP403RegistryAddress,
		contracts.TIP403Registry, eventName, ev)
}

func policyRule(policyID *uint64) []interface{} {
	if policyID == nil {
		return nil
	}
	return []interface{}{*policyID}
}

func watch(c tempo.ChainClient, eventName string, opts tempo.WatchOptions, query [][]interface{},
	newEvent func(l types.Log) interface{}, handle func(interface{})) (event.Subscription, error) {
	return contract.Watch(c, contracts.TIP403RegistryAddress, contracts.TIP403Registry, eventName, opts, query,
		func(l types.Log) error {
			ev := newEvent(l)
			if err := contract.UnpackLog(contracts.TIP403Registry, ev, eventName, l); err != nil {
				return err
			}
			handle(ev)
			return nil
		})
}

// WatchCreate calls onCreate for every policy created by the updater, or
// by anyone if updater is nil.
func WatchCreate(c tempo.ChainClient, updater *common.Address, opts tempo.WatchOptions,
	onCreate func(*CreatedEvent)) (event.Subscription, error) {
	query := [][]interface{}{nil, contract.AddressRule(updater)}
	return watch(c, "PolicyCreated", opts, query,
		func(l types.Log) interface{} { return &CreatedEvent{Raw: l} },
		func(ev interface{}) { onCreate(ev.(*CreatedEvent)) })
}

// WatchAdminUpdated calls onUpdate for every admin change of the policy, or
// of all policies if policyID is nil.
func WatchAdminUpdated(c tempo.ChainClient, policyID *uint64, opts tempo.WatchOptions,
	onUpdate func(*AdminUpdatedEvent)) (event.Subscription, error) {
	query := [][]interface{}{policyRule(policyID)}
	return watch(c, "PolicyAdminUpdated", opts, query,
		func(l types.Log) interface{} { return &AdminUpdatedEvent{Raw: l} },
		func(ev interface{}) { onUpdate(ev.(*AdminUpdatedEvent)) })
}

// WatchWhitelistUpdated calls onUpdate for every membership change of the
// whitelist, or of all whitelists if policyID is nil.
func WatchWhitelistUpdated(c tempo.ChainClient, policyID *uint64, opts tempo.WatchOptions,
	onUpdate func(*WhitelistUpdatedEvent)) (event.Subscription, error) {
	query := [][]interface{}{policyRule(policyID)}
	return watch(c, "WhitelistUpdated", opts, query,
		func(l types.Log) interface{} { return &WhitelistUpdatedEvent{Raw: l} },
		func(ev interface{}) { onUpdate(ev.(*WhitelistUpdatedEvent)) })
}

// WatchBlacklistUpdated calls onUpdate for every membership change of the
// blacklist, or of all blacklists if policyID is nil.
func WatchBlacklistUpdated(c tempo.ChainClient, policyID *uint64, opts tempo.WatchOptions,
	onUpdate func(*BlacklistUpdatedEvent)) (event.Subscription, error) {
	query := [][]interface{}{policyRule(policyID)}
	return watch(c, "BlacklistUpdated", opts, query,
		func(l types.Log) interface{} { return &BlacklistUpdatedEvent{Raw: l} },
		func(ev interface{}) { onUpdate(ev.(*BlacklistUpdatedEvent)) })
}
