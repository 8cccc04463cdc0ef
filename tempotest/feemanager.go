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

package tempotest

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions/contracts"
)

// Fee AMM parameters.
var (
	// MinLiquidity is locked on the first mint into a pool.
	MinLiquidity = big.NewInt(1000)

	// RebalanceSwap: amountIn = amountOut * RebalanceRate / RateScale + 1.
	RebalanceRate = big.NewInt(9985)
	// FeeSwap: amountOut = amountIn * FeeSwapRate / RateScale.
	FeeSwapRate = big.NewInt(9970)
	RateScale   = big.NewInt(10000)
)

type poolState struct {
	reserveUser      *big.Int
	reserveValidator *big.Int
	totalSupply      *big.Int
	balances         map[common.Address]*big.Int
}

// PoolID returns the id of the pool of the token pair, which is the hash
// of both addresses padded to 32 bytes.
func PoolID(userToken, validatorToken common.Address) [32]byte {
	return crypto.Keccak256Hash(common.LeftPadBytes(userToken[:], 32), common.LeftPadBytes(validatorToken[:], 32))
}

func (s *chainState) pool(userToken, validatorToken common.Address) *poolState {
	if p, ok := s.pools[PoolID(userToken, validatorToken)]; ok {
		return p
	}
	return &poolState{
		reserveUser:      new(big.Int),
		reserveValidator: new(big.Int),
		totalSupply:      new(big.Int),
		balances:         make(map[common.Address]*big.Int),
	}
}

func (p *poolState) balance(account common.Address) *big.Int {
	if bal, ok := p.balances[account]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

func (s *chainState) poolTokens(userToken, validatorToken common.Address) (*tokenState, *tokenState, error) {
	if userToken == validatorToken {
		return nil, nil, errors.New("user and validator token must differ")
	}
	u, ok := s.tokens[userToken]
	if !ok {
		return nil, nil, errors.Errorf("user token %s is not a TIP20 token", userToken.Hex())
	}
	v, ok := s.tokens[validatorToken]
	if !ok {
		return nil, nil, errors.Errorf("validator token %s is not a TIP20 token", validatorToken.Hex())
	}
	return u, v, nil
}

// nolint: funlen	// one case per method.
func (s *chainState) runFeeManager(c *contractCall) ([]interface{}, error) {
	switch c.method.Name {
	case "userTokens":
		return []interface{}{s.userTokens[c.args[0].(common.Address)]}, nil
	case "validatorTokens":
		return []interface{}{s.validatorTokens[c.args[0].(common.Address)]}, nil
	case "setUserToken", "setValidatorToken":
		token := c.args[0].(common.Address)
		if _, ok := s.tokens[token]; !ok {
			return nil, errors.Errorf("%s is not a TIP20 token", token.Hex())
		}
		if c.method.Name == "setUserToken" {
			s.userTokens[c.from] = token
			return nil, c.emit(contracts.FeeManager, "UserTokenSet", c.from, token)
		}
		s.validatorTokens[c.from] = token
		return nil, c.emit(contracts.FeeManager, "ValidatorTokenSet", c.from, token)

	case "getPoolId":
		return []interface{}{PoolID(c.args[0].(common.Address), c.args[1].(common.Address))}, nil
	case "getPool":
		p := s.pool(c.args[0].(common.Address), c.args[1].(common.Address))
		return []interface{}{new(big.Int).Set(p.reserveUser), new(big.Int).Set(p.reserveValidator)}, nil
	case "totalSupply":
		if p, ok := s.pools[c.args[0].([32]byte)]; ok {
			return []interface{}{new(big.Int).Set(p.totalSupply)}, nil
		}
		return []interface{}{new(big.Int)}, nil
	case "liquidityBalances":
		if p, ok := s.pools[c.args[0].([32]byte)]; ok {
			return []interface{}{p.balance(c.args[1].(common.Address))}, nil
		}
		return []interface{}{new(big.Int)}, nil

	case "mint":
		return s.mintLiquidity(c, c.args[0].(common.Address), c.args[1].(common.Address),
			c.args[2].(*big.Int), c.args[3].(*big.Int), c.args[4].(common.Address))
	case "mintWithValidatorToken":
		return s.mintLiquidity(c, c.args[0].(common.Address), c.args[1].(common.Address),
			new(big.Int), c.args[2].(*big.Int), c.args[3].(common.Address))
	case "burn":
		return s.burnLiquidity(c, c.args[0].(common.Address), c.args[1].(common.Address),
			c.args[2].(*big.Int), c.args[3].(common.Address))
	case "rebalanceSwap":
		return s.rebalanceSwap(c, c.args[0].(common.Address), c.args[1].(common.Address),
			c.args[2].(*big.Int), c.args[3].(common.Address))
	}
	return nil, unknownMethod(c)
}

func (s *chainState) mintLiquidity(c *contractCall, userToken, validatorToken common.Address,
	amountUser, amountValidator *big.Int, to common.Address) ([]interface{}, error) {
	u, v, err := s.poolTokens(userToken, validatorToken)
	if err != nil {
		return nil, err
	}
	deposit := new(big.Int).Add(amountUser, amountValidator)
	if deposit.Sign() == 0 {
		return nil, errors.New("no liquidity deposited")
	}
	if err := u.requireBalance(c.from, amountUser); err != nil {
		return nil, err
	}
	if err := v.requireBalance(c.from, amountValidator); err != nil {
		return nil, err
	}
	p := s.pool(userToken, validatorToken)
	var liquidity *big.Int
	if p.totalSupply.Sign() == 0 {
		liquidity = new(big.Int).Div(deposit, big.NewInt(2))
		if liquidity.Cmp(MinLiquidity) <= 0 {
			return nil, errors.Errorf("initial liquidity must exceed %s", MinLiquidity)
		}
		liquidity.Sub(liquidity, MinLiquidity)
		p.totalSupply.Add(p.totalSupply, MinLiquidity)
	} else {
		reserves := new(big.Int).Add(p.reserveUser, p.reserveValidator)
		liquidity = new(big.Int).Mul(deposit, p.totalSupply)
		liquidity.Div(liquidity, reserves)
		if liquidity.Sign() == 0 {
			return nil, errors.New("deposit too small")
		}
	}

	u.move(c.from, contracts.FeeAMMAddress, amountUser)
	v.move(c.from, contracts.FeeAMMAddress, amountValidator)
	p.reserveUser.Add(p.reserveUser, amountUser)
	p.reserveValidator.Add(p.reserveValidator, amountValidator)
	p.totalSupply.Add(p.totalSupply, liquidity)
	p.balances[to] = new(big.Int).Add(p.balance(to), liquidity)
	s.pools[PoolID(userToken, validatorToken)] = p

	err = c.emit(contracts.FeeAMM, "Mint", c.from, userToken, validatorToken, amountUser, amountValidator, liquidity)
	return []interface{}{liquidity}, err
}

func (s *chainState) burnLiquidity(c *contractCall, userToken, validatorToken common.Address,
	liquidity *big.Int, to common.Address) ([]interface{}, error) {
	u, v, err := s.poolTokens(userToken, validatorToken)
	if err != nil {
		return nil, err
	}
	p, ok := s.pools[PoolID(userToken, validatorToken)]
	if !ok {
		return nil, errors.New("pool does not exist")
	}
	if isZero(liquidity) || p.balance(c.from).Cmp(liquidity) < 0 {
		return nil, errors.Errorf("insufficient liquidity of %s", c.from.Hex())
	}
	amountUser := new(big.Int).Mul(liquidity, p.reserveUser)
	amountUser.Div(amountUser, p.totalSupply)
	amountValidator := new(big.Int).Mul(liquidity, p.reserveValidator)
	amountValidator.Div(amountValidator, p.totalSupply)

	p.balances[c.from] = new(big.Int).Sub(p.balance(c.from), liquidity)
	p.totalSupply.Sub(p.totalSupply, liquidity)
	p.reserveUser.Sub(p.reserveUser, amountUser)
	p.reserveValidator.Sub(p.reserveValidator, amountValidator)
	u.move(contracts.FeeAMMAddress, to, amountUser)
	v.move(contracts.FeeAMMAddress, to, amountValidator)

	err = c.emit(contracts.FeeAMM, "Burn",
		c.from, userToken, validatorToken, amountUser, amountValidator, liquidity, to)
	return []interface{}{amountUser, amountValidator}, err
}

// rebalanceSwap sells user tokens from the pool for validator tokens.
func (s *chainState) rebalanceSwap(c *contractCall, userToken, validatorToken common.Address,
	amountOut *big.Int, to common.Address) ([]interface{}, error) {
	u, v, err := s.poolTokens(userToken, validatorToken)
	if err != nil {
		return nil, err
	}
	p, ok := s.pools[PoolID(userToken, validatorToken)]
	if !ok {
		return nil, errors.New("pool does not exist")
	}
	if isZero(amountOut) || p.reserveUser.Cmp(amountOut) < 0 {
		return nil, errors.Errorf("insufficient user token reserve for %s", amountOut)
	}
	amountIn := new(big.Int).Mul(amountOut, RebalanceRate)
	amountIn.Div(amountIn, RateScale).Add(amountIn, big.NewInt(1))
	if err := v.requireBalance(c.from, amountIn); err != nil {
		return nil, err
	}

	v.move(c.from, contracts.FeeAMMAddress, amountIn)
	u.move(contracts.FeeAMMAddress, to, amountOut)
	p.reserveValidator.Add(p.reserveValidator, amountIn)
	p.reserveUser.Sub(p.reserveUser, amountOut)

	err = c.emit(contracts.FeeAMM, "RebalanceSwap", userToken, validatorToken, c.from, amountIn, amountOut)
	return []interface{}{amountIn}, err
}

// feeSwap converts collected user tokens into validator tokens.
func (s *chainState) feeSwap(c *contractCall, userToken, validatorToken common.Address, amountIn *big.Int) (
	*big.Int, error) {
	if _, _, err := s.poolTokens(userToken, validatorToken); err != nil {
		return nil, err
	}
	p, ok := s.pools[PoolID(userToken, validatorToken)]
	if !ok {
		return nil, errors.New("pool does not exist")
	}
	amountOut := new(big.Int).Mul(amountIn, FeeSwapRate)
	amountOut.Div(amountOut, RateScale)
	if p.reserveValidator.Cmp(amountOut) < 0 {
		return nil, errors.New("insufficient validator token reserve")
	}
	p.reserveUser.Add(p.reserveUser, amountIn)
	p.reserveValidator.Sub(p.reserveValidator, amountOut)
	return amountOut, c.emit(contracts.FeeAMM, "FeeSwap", userToken, validatorToken, amountIn, amountOut)
}
