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

// Package token binds the TIP20 token precompiles and the TIP20 factory.
//
// Every state changing action comes in three forms: XxxCall builds the call
// object without sending it, Xxx sends the transaction and returns as soon
// as it is accepted by the node, and XxxSync additionally waits for the
// transaction to be mined and returns the event emitted by it.
package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// Metadata is the static and dynamic configuration of a token.
type Metadata struct {
	Name             string
	Symbol           string
	Decimals         uint8
	Currency         string
	TotalSupply      *big.Int
	QuoteToken       common.Address
	SupplyCap        *big.Int
	Paused           bool
	TransferPolicyID uint64
}

func tokenCall(token common.Address, method string, args ...interface{}) tempo.Call {
	return tempo.Call{To: token, ABI: contracts.TIP20, Method: method, Args: args}
}

// GetBalance returns the balance of the account in the smallest unit of the
// token.
func GetBalance(ctx context.Context, c tempo.ChainClient, token, account common.Address, opts tempo.CallOptions) (
	*big.Int, error) {
	out, err := contract.ReadOne(ctx, c, tokenCall(token, "balanceOf", account), opts)
	if err != nil {
		return nil, err
	}
	return out.(*big.Int), nil
}

// GetAllowance returns the amount the spender may transfer on behalf of the
// owner.
func GetAllowance(ctx context.Context, c tempo.ChainClient, token, owner, spender common.Address,
	opts tempo.CallOptions) (*big.Int, error) {
	out, err := contract.ReadOne(ctx, c, tokenCall(token, "allowance", owner, spender), opts)
	if err != nil {
		return nil, err
	}
	return out.(*big.Int), nil
}

// GetMetadata reads all configuration values of the token. Each value is
// read with a separate call.
func GetMetadata(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.CallOptions) (
	*Metadata, error) {
	var m Metadata
	fields := []struct {
		method string
		set    func(interface{})
	}{
		{"name", func(v interface{}) { m.Name = v.(string) }},
		{"symbol", func(v interface{}) { m.Symbol = v.(string) }},
		{"decimals", func(v interface{}) { m.Decimals = v.(uint8) }},
		{"currency", func(v interface{}) { m.Currency = v.(string) }},
		{"totalSupply", func(v interface{}) { m.TotalSupply = v.(*big.Int) }},
		{"quoteToken", func(v interface{}) { m.QuoteToken = v.(common.Address) }},
		{"supplyCap", func(v interface{}) { m.SupplyCap = v.(*big.Int) }},
		{"paused", func(v interface{}) { m.Paused = v.(bool) }},
		{"transferPolicyId", func(v interface{}) { m.TransferPolicyID = v.(uint64) }},
	}
	for _, f := range fields {
		out, err := contract.ReadOne(ctx, c, tokenCall(token, f.method), opts)
		if err != nil {
			return nil, errors.WithMessage(err, "reading token metadata")
		}
		f.set(out)
	}
	return &m, nil
}

// HasRole reports whether the account holds the role on the token.
func HasRole(ctx context.Context, c tempo.ChainClient, token, account common.Address, role [32]byte,
	opts tempo.CallOptions) (bool, error) {
	out, err := contract.ReadOne(ctx, c, tokenCall(token, "hasRole", account, role), opts)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// GetTransferPolicyID returns the id of the TIP403 policy governing
// transfers of the token.
func GetTransferPolicyID(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.CallOptions) (
	uint64, error) {
	out, err := contract.ReadOne(ctx, c, tokenCall(token, "transferPolicyId"), opts)
	if err != nil {
		return 0, err
	}
	return out.(uint64), nil
}

// IsTIP20 reports whether a TIP20 token was created at the address.
// Addresses outside the TIP20 address range are rejected without a call.
func IsTIP20(ctx context.Context, c tempo.ChainClient, addr common.Address, opts tempo.CallOptions) (bool, error) {
	if !contracts.IsTIP20Address(addr) {
		return false, nil
	}
	call := tempo.Call{To: contracts.TIP20FactoryAddress, ABI: contracts.TIP20Factory, Method: "isTIP20",
		Args: []interface{}{addr}}
	out, err := contract.ReadOne(ctx, c, call, opts)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}
