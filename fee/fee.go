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

// Package fee binds the fee token preferences of the fee manager.
//
// Users choose the TIP20 token they pay transaction fees in and validators
// choose the token they want to receive fees in. The fee AMM converts
// between the two, see package amm.
package fee

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// UserTokenSetEvent is emitted when a user sets the fee token.
type UserTokenSetEvent struct {
	User  common.Address
	Token common.Address
	Raw   types.Log
}

// ValidatorTokenSetEvent is emitted when a validator sets the fee token.
type ValidatorTokenSetEvent struct {
	Validator common.Address
	Token     common.Address
	Raw       types.Log
}

// ExtractUserTokenSetEvent returns the first UserTokenSet event of the fee
// manager in the logs of a receipt.
func ExtractUserTokenSetEvent(logs []*types.Log) (*UserTokenSetEvent, error) {
	ev := &UserTokenSetEvent{}
	raw, err := extract(logs, "UserTokenSet", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ExtractValidatorTokenSetEvent returns the first ValidatorTokenSet event of
// the fee manager in the logs of a receipt.
func ExtractValidatorTokenSetEvent(logs []*types.Log) (*ValidatorTokenSetEvent, error) {
	ev := &ValidatorTokenSetEvent{}
	raw, err := extract(logs, "ValidatorTokenSet", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

func extract(logs []*types.Log, eventName string, ev interface{}) (types.Log, error) {
	return contract.ExtractEvent(logs, tempo.FeeManager, contracts.FeeManagerAddress, contracts.FeeManager,
		eventName, ev)
}

func managerCall(method string, args ...interface{}) tempo.Call {
	return tempo.Call{To: contracts.FeeManagerAddress, ABI: contracts.FeeManager, Method: method, Args: args}
}

func readToken(ctx context.Context, c tempo.ChainClient, call tempo.Call, opts tempo.CallOptions) (
	common.Address, bool, error) {
	out, err := contract.ReadOne(ctx, c, call, opts)
	if err != nil {
		return common.Address{}, false, err
	}
	token := out.(common.Address)
	return token, token != (common.Address{}), nil
}

// GetUserToken returns the fee token of the account. The second return
// value is false if the account has not set one.
func GetUserToken(ctx context.Context, c tempo.ChainClient, account common.Address, opts tempo.CallOptions) (
	common.Address, bool, error) {
	return readToken(ctx, c, managerCall("userTokens", account), opts)
}

// GetValidatorToken returns the fee token of the validator. The second
// return value is false if the validator has not set one.
func GetValidatorToken(ctx context.Context, c tempo.ChainClient, validator common.Address,
	opts tempo.CallOptions) (common.Address, bool, error) {
	return readToken(ctx, c, managerCall("validatorTokens", validator), opts)
}

// SetUserTokenCall returns the call for setting the fee token of the
// sender.
func SetUserTokenCall(token common.Address) tempo.Call {
	return managerCall("setUserToken", token)
}

// SetUserToken sends a setUserToken transaction.
func SetUserToken(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, SetUserTokenCall(token), opts)
}

// SetUserTokenSync sends a setUserToken transaction and returns the
// UserTokenSet event once it is mined.
func SetUserTokenSync(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*UserTokenSetEvent, error) {
	ev := &UserTokenSetEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.FeeManager, SetUserTokenCall(token), opts, "UserTokenSet", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// SetValidatorTokenCall returns the call for setting the fee token of the
// sending validator.
func SetValidatorTokenCall(token common.Address) tempo.Call {
	return managerCall("setValidatorToken", token)
}

// SetValidatorToken sends a setValidatorToken transaction.
func SetValidatorToken(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, SetValidatorTokenCall(token), opts)
}

// SetValidatorTokenSync sends a setValidatorToken transaction and returns
// the ValidatorTokenSet event once it is mined.
func SetValidatorTokenSync(ctx context.Context, c tempo.ChainClient, token common.Address,
	opts tempo.TxOptions) (*ValidatorTokenSetEvent, error) {
	ev := &ValidatorTokenSetEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.FeeManager, SetValidatorTokenCall(token), opts,
		"ValidatorTokenSet", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// WatchSetUserToken calls onSet whenever the user, or any user if user is
// nil, sets the fee token.
func WatchSetUserToken(c tempo.ChainClient, user *common.Address, opts tempo.WatchOptions,
	onSet func(*UserTokenSetEvent)) (event.Subscription, error) {
	query := [][]interface{}{contract.AddressRule(user)}
	return contract.Watch(c, contracts.FeeManagerAddress, contracts.FeeManager, "UserTokenSet", opts, query,
		func(l types.Log) error {
			ev := &UserTokenSetEvent{Raw: l}
			if err := contract.UnpackLog(contracts.FeeManager, ev, "UserTokenSet", l); err != nil {
				return err
			}
			onSet(ev)
			return nil
		})
}

// WatchSetValidatorToken calls onSet whenever the validator, or any
// validator if validator is nil, sets the fee token.
func WatchSetValidatorToken(c tempo.ChainClient, validator *common.Address, opts tempo.WatchOptions,
	onSet func(*ValidatorTokenSetEvent)) (event.Subscription, error) {
	query := [][]interface{}{contract.AddressRule(validator)}
	return contract.Watch(c, contracts.FeeManagerAddress, contracts.FeeManager, "ValidatorTokenSet", opts, query,
		func(l types.Log) error {
			ev := &ValidatorTokenSetEvent{Raw: l}
			if err := contract.UnpackLog(contracts.FeeManager, ev, "ValidatorTokenSet", l); err != nil {
				return err
			}
			onSet(ev)
			return nil
		})
}
