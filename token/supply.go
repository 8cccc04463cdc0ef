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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// MintParams are the arguments for issuing new tokens. The sender needs
// the issuer role.
type MintParams struct {
	Token  common.Address
	To     common.Address
	Amount *big.Int
	Memo   string
}

// MintCall returns the call for minting, choosing between mint and
// mintWithMemo.
func MintCall(p MintParams) (tempo.Call, error) {
	if err := contract.RequireAmount("amount", p.Amount); err != nil {
		return tempo.Call{}, err
	}
	if p.Memo == "" {
		return tokenCall(p.Token, "mint", p.To, p.Amount), nil
	}
	memo, err := EncodeMemo(p.Memo)
	if err != nil {
		return tempo.Call{}, err
	}
	return tokenCall(p.Token, "mintWithMemo", p.To, p.Amount, memo), nil
}

// Mint sends a mint transaction.
func Mint(ctx context.Context, c tempo.ChainClient, p MintParams, opts tempo.TxOptions) (*types.Transaction, error) {
	call, err := MintCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// MintSync sends a mint transaction and returns the Mint event once it is
// mined.
func MintSync(ctx context.Context, c tempo.ChainClient, p MintParams, opts tempo.TxOptions) (*MintEvent, error) {
	call, err := MintCall(p)
	if err != nil {
		return nil, err
	}
	ev := &MintEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "Mint", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// BurnParams are the arguments for burning tokens of the sender. The
// sender needs the issuer role.
type BurnParams struct {
	Token  common.Address
	Amount *big.Int
	Memo   string
}

// BurnCall returns the call for burning, choosing between burn and
// burnWithMemo.
func BurnCall(p BurnParams) (tempo.Call, error) {
	if err := contract.RequireAmount("amount", p.Amount); err != nil {
		return tempo.Call{}, err
	}
	if p.Memo == "" {
		return tokenCall(p.Token, "burn", p.Amount), nil
	}
	memo, err := EncodeMemo(p.Memo)
	if err != nil {
		return tempo.Call{}, err
	}
	return tokenCall(p.Token, "burnWithMemo", p.Amount, memo), nil
}

// Burn sends a burn transaction.
func Burn(ctx context.Context, c tempo.ChainClient, p BurnParams, opts tempo.TxOptions) (*types.Transaction, error) {
	call, err := BurnCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// BurnSync sends a burn transaction and returns the Burn event once it is
// mined.
func BurnSync(ctx context.Context, c tempo.ChainClient, p BurnParams, opts tempo.TxOptions) (*BurnEvent, error) {
	call, err := BurnCall(p)
	if err != nil {
		return nil, err
	}
	ev := &BurnEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "Burn", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// BurnBlockedParams are the arguments for burning tokens of an account that
// is blocked by the transfer policy. The sender needs the burn blocked
// role.
type BurnBlockedParams struct {
	Token  common.Address
	From   common.Address
	Amount *big.Int
}

// BurnBlockedCall returns the call for burning blocked tokens.
func BurnBlockedCall(p BurnBlockedParams) (tempo.Call, error) {
	if err := contract.RequireAmount("amount", p.Amount); err != nil {
		return tempo.Call{}, err
	}
	return tokenCall(p.Token, "burnBlocked", p.From, p.Amount), nil
}

// BurnBlocked sends a burnBlocked transaction.
func BurnBlocked(ctx context.Context, c tempo.ChainClient, p BurnBlockedParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := BurnBlockedCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// BurnBlockedSync sends a burnBlocked transaction and returns the
// BurnBlocked event once it is mined.
func BurnBlockedSync(ctx context.Context, c tempo.ChainClient, p BurnBlockedParams, opts tempo.TxOptions) (
	*BurnBlockedEvent, error) {
	call, err := BurnBlockedCall(p)
	if err != nil {
		return nil, err
	}
	ev := &BurnBlockedEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "BurnBlocked", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// SetSupplyCapParams are the arguments for changing the supply cap. The
// sender needs the default admin role.
type SetSupplyCapParams struct {
	Token     common.Address
	SupplyCap *big.Int
}

// SetSupplyCapCall returns the call for changing the supply cap.
func SetSupplyCapCall(p SetSupplyCapParams) (tempo.Call, error) {
	if err := contract.RequireAmount("supplyCap", p.SupplyCap); err != nil {
		return tempo.Call{}, err
	}
	return tokenCall(p.Token, "setSupplyCap", p.SupplyCap), nil
}

// SetSupplyCap sends a setSupplyCap transaction.
func SetSupplyCap(ctx context.Context, c tempo.ChainClient, p SetSupplyCapParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := SetSupplyCapCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// SetSupplyCapSync sends a setSupplyCap transaction and returns the
// SupplyCapUpdate event once it is mined.
func SetSupplyCapSync(ctx context.Context, c tempo.ChainClient, p SetSupplyCapParams, opts tempo.TxOptions) (
	*SupplyCapEvent, error) {
	call, err := SetSupplyCapCall(p)
	if err != nil {
		return nil, err
	}
	ev := &SupplyCapEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "SupplyCapUpdate", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}
