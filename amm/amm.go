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

// Package amm binds the fee AMM, which holds one pool per pair of user fee
// token and validator fee token.
//
// Liquidity providers deposit validator tokens (and optionally user tokens)
// and receive pool liquidity. Rebalancing swaps buy accumulated user tokens
// from the pool with validator tokens.
package amm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// Pool is the state of the pool of a token pair.
type Pool struct {
	ID                    [32]byte
	ReserveUserToken      *big.Int
	ReserveValidatorToken *big.Int
	TotalSupply           *big.Int
}

func ammCall(method string, args ...interface{}) tempo.Call {
	return tempo.Call{To: contracts.FeeAMMAddress, ABI: contracts.FeeAMM, Method: method, Args: args}
}

// GetPoolID returns the id of the pool of the token pair.
func GetPoolID(ctx context.Context, c tempo.ChainClient, userToken, validatorToken common.Address,
	opts tempo.CallOptions) ([32]byte, error) {
	out, err := contract.ReadOne(ctx, c, ammCall("getPoolId", userToken, validatorToken), opts)
	if err != nil {
		return [32]byte{}, err
	}
	return out.([32]byte), nil
}

// GetPool returns the reserves and the total liquidity of the pool of the
// token pair. Pools that do not exist yet are reported with zero values.
func GetPool(ctx context.Context, c tempo.ChainClient, userToken, validatorToken common.Address,
	opts tempo.CallOptions) (*Pool, error) {
	id, err := GetPoolID(ctx, c, userToken, validatorToken, opts)
	if err != nil {
		return nil, err
	}
	reserves, err := contract.Read(ctx, c, ammCall("getPool", userToken, validatorToken), opts)
	if err != nil {
		return nil, err
	}
	supply, err := contract.ReadOne(ctx, c, ammCall("totalSupply", id), opts)
	if err != nil {
		return nil, err
	}
	return &Pool{
		ID:                    id,
		ReserveUserToken:      reserves[0].(*big.Int),
		ReserveValidatorToken: reserves[1].(*big.Int),
		TotalSupply:           supply.(*big.Int),
	}, nil
}

// PoolRef identifies a pool either by its id or by its token pair. The id
// takes precedence if it is set.
type PoolRef struct {
	ID             *[32]byte
	UserToken      common.Address
	ValidatorToken common.Address
}

// GetLiquidityBalance returns the liquidity the account holds in the pool.
func GetLiquidityBalance(ctx context.Context, c tempo.ChainClient, pool PoolRef, account common.Address,
	opts tempo.CallOptions) (*big.Int, error) {
	var id [32]byte
	if pool.ID != nil {
		id = *pool.ID
	} else {
		var err error
		if id, err = GetPoolID(ctx, c, pool.UserToken, pool.ValidatorToken, opts); err != nil {
			return nil, err
		}
	}
	out, err := contract.ReadOne(ctx, c, ammCall("liquidityBalances", id, account), opts)
	if err != nil {
		return nil, err
	}
	return out.(*big.Int), nil
}

// TokenAmount is a token together with an amount of it.
type TokenAmount struct {
	Address common.Address
	Amount  *big.Int
}

// MintParams are the arguments for adding liquidity. If the amount of the
// user token is nil, only validator tokens are deposited.
type MintParams struct {
	UserToken      TokenAmount
	ValidatorToken TokenAmount
	To             common.Address
}

// MintCall returns the call for adding liquidity, choosing between mint and
// mintWithValidatorToken.
func MintCall(p MintParams) (tempo.Call, error) {
	if err := contract.RequireAmount("validatorToken.amount", p.ValidatorToken.Amount); err != nil {
		return tempo.Call{}, err
	}
	if p.UserToken.Amount == nil {
		return ammCall("mintWithValidatorToken", p.UserToken.Address, p.ValidatorToken.Address,
			p.ValidatorToken.Amount, p.To), nil
	}
	if err := contract.RequireAmount("userToken.amount", p.UserToken.Amount); err != nil {
		return tempo.Call{}, err
	}
	return ammCall("mint", p.UserToken.Address, p.ValidatorToken.Address,
		p.UserToken.Amount, p.ValidatorToken.Amount, p.To), nil
}

// Mint sends a transaction adding liquidity.
func Mint(ctx context.Context, c tempo.ChainClient, p MintParams, opts tempo.TxOptions) (*types.Transaction, error) {
	call, err := MintCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// MintSync sends a transaction adding liquidity and returns the Mint event,
// which holds the minted liquidity, once it is mined.
func MintSync(ctx context.Context, c tempo.ChainClient, p MintParams, opts tempo.TxOptions) (*MintEvent, error) {
	call, err := MintCall(p)
	if err != nil {
		return nil, err
	}
	ev := &MintEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.FeeAMM, call, opts, "Mint", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// BurnParams are the arguments for removing liquidity. Both tokens are
// paid out to To.
type BurnParams struct {
	UserToken      common.Address
	ValidatorToken common.Address
	Liquidity      *big.Int
	To             common.Address
}

// BurnCall returns the call for removing liquidity.
func BurnCall(p BurnParams) (tempo.Call, error) {
	if err := contract.RequireAmount("liquidity", p.Liquidity); err != nil {
		return tempo.Call{}, err
	}
	return ammCall("burn", p.UserToken, p.ValidatorToken, p.Liquidity, p.To), nil
}

// Burn sends a transaction removing liquidity.
func Burn(ctx context.Context, c tempo.ChainClient, p BurnParams, opts tempo.TxOptions) (*types.Transaction, error) {
	call, err := BurnCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// BurnSync sends a transaction removing liquidity and returns the Burn
// event once it is mined.
func BurnSync(ctx context.Context, c tempo.ChainClient, p BurnParams, opts tempo.TxOptions) (*BurnEvent, error) {
	call, err := BurnCall(p)
	if err != nil {
		return nil, err
	}
	ev := &BurnEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.FeeAMM, call, opts, "Burn", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// RebalanceSwapParams are the arguments for buying AmountOut user tokens
// from the pool with validator tokens. The user tokens are paid out to To.
type RebalanceSwapParams struct {
	UserToken      common.Address
	ValidatorToken common.Address
	AmountOut      *big.Int
	To             common.Address
}

// RebalanceSwapCall returns the call for the swap.
func RebalanceSwapCall(p RebalanceSwapParams) (tempo.Call, error) {
	if err := contract.RequireAmount("amountOut", p.AmountOut); err != nil {
		return tempo.Call{}, err
	}
	return ammCall("rebalanceSwap", p.UserToken, p.ValidatorToken, p.AmountOut, p.To), nil
}

// RebalanceSwap sends a rebalanceSwap transaction.
func RebalanceSwap(ctx context.Context, c tempo.ChainClient, p RebalanceSwapParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := RebalanceSwapCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// RebalanceSwapSync sends a rebalanceSwap transaction and returns the
// RebalanceSwap event, which holds the amount paid in, once it is mined.
func RebalanceSwapSync(ctx context.Context, c tempo.ChainClient, p RebalanceSwapParams, opts tempo.TxOptions) (
	*RebalanceSwapEvent, error) {
	call, err := RebalanceSwapCall(p)
	if err != nil {
		return nil, err
	}
	ev := &RebalanceSwapEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.FeeAMM, call, opts, "RebalanceSwap", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}
