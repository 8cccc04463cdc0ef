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
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions/contracts"
)

// TokenDecimals is the number of decimals of every TIP20 token.
const TokenDecimals = 6

// DefaultSupplyCap of new tokens is the max value of uint128.
var DefaultSupplyCap = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

type tokenState struct {
	addr       common.Address
	id         uint64
	name       string
	symbol     string
	currency   string
	quoteToken common.Address

	supply    *big.Int
	supplyCap *big.Int
	paused    bool
	policyID  uint64

	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
	roles      map[[32]byte]map[common.Address]bool
	roleAdmins map[[32]byte][32]byte
}

func (s *chainState) createToken(name, symbol, currency string, quoteToken, admin common.Address) *tokenState {
	id := s.tokenCounter
	s.tokenCounter++
	tok := &tokenState{
		addr:       contracts.TokenAddress(id),
		id:         id,
		name:       name,
		symbol:     symbol,
		currency:   currency,
		quoteToken: quoteToken,
		supply:     new(big.Int),
		supplyCap:  new(big.Int).Set(DefaultSupplyCap),
		policyID:   contracts.AllowAllPolicyID,
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
		roles:      make(map[[32]byte]map[common.Address]bool),
		roleAdmins: make(map[[32]byte][32]byte),
	}
	tok.setRole(contracts.DefaultAdminRole, admin, true)
	s.tokens[tok.addr] = tok
	return tok
}

func (t *tokenState) balance(account common.Address) *big.Int {
	if bal, ok := t.balances[account]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

func (t *tokenState) credit(account common.Address, amount *big.Int) {
	t.balances[account] = new(big.Int).Add(t.balance(account), amount)
}

func (t *tokenState) debit(account common.Address, amount *big.Int) {
	t.balances[account] = new(big.Int).Sub(t.balance(account), amount)
}

func (t *tokenState) requireBalance(account common.Address, amount *big.Int) error {
	if t.balance(account).Cmp(amount) < 0 {
		return errors.Errorf("insufficient %s balance of %s", t.symbol, account.Hex())
	}
	return nil
}

func (t *tokenState) allowance(owner, spender common.Address) *big.Int {
	if a, ok := t.allowances[owner][spender]; ok {
		return new(big.Int).Set(a)
	}
	return new(big.Int)
}

func (t *tokenState) setAllowance(owner, spender common.Address, amount *big.Int) {
	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[common.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (t *tokenState) hasRole(role [32]byte, account common.Address) bool {
	return t.roles[role][account]
}

func (t *tokenState) setRole(role [32]byte, account common.Address, granted bool) {
	if t.roles[role] == nil {
		t.roles[role] = make(map[common.Address]bool)
	}
	if granted {
		t.roles[role][account] = true
	} else {
		delete(t.roles[role], account)
	}
}

func (t *tokenState) requireRole(role [32]byte, account common.Address) error {
	if !t.hasRole(role, account) {
		return errors.Errorf("%s is missing role %x", account.Hex(), role)
	}
	return nil
}

func (s *chainState) runFactory(c *contractCall) ([]interface{}, error) {
	switch c.method.Name {
	case "tokenIdCounter":
		return []interface{}{new(big.Int).SetUint64(s.tokenCounter)}, nil
	case "isTIP20":
		_, ok := s.tokens[c.args[0].(common.Address)]
		return []interface{}{ok}, nil
	case "createToken":
		name, symbol, currency := c.args[0].(string), c.args[1].(string), c.args[2].(string)
		quoteToken, admin := c.args[3].(common.Address), c.args[4].(common.Address)
		if _, ok := s.tokens[quoteToken]; !ok {
			return nil, errors.Errorf("quote token %s is not a TIP20 token", quoteToken.Hex())
		}
		tok := s.createToken(name, symbol, currency, quoteToken, admin)
		err := c.emit(contracts.TIP20Factory, "TokenCreated",
			tok.addr, new(big.Int).SetUint64(tok.id), name, symbol, currency, quoteToken, admin)
		return []interface{}{tok.addr}, err
	}
	return nil, unknownMethod(c)
}

// transferChecks validates a transfer of amount from one account to another.
func (s *chainState) transferChecks(t *tokenState, from, to common.Address, amount *big.Int) error {
	if t.paused {
		return errors.Errorf("token %s is paused", t.symbol)
	}
	if !s.isAuthorized(t.policyID, from) {
		return errors.Errorf("sender %s not authorized by policy %d", from.Hex(), t.policyID)
	}
	if !s.isAuthorized(t.policyID, to) {
		return errors.Errorf("recipient %s not authorized by policy %d", to.Hex(), t.policyID)
	}
	return t.requireBalance(from, amount)
}

func (t *tokenState) move(from, to common.Address, amount *big.Int) {
	t.debit(from, amount)
	t.credit(to, amount)
}

// nolint: gocyclo, funlen	// one case per token method.
func (s *chainState) runToken(t *tokenState, c *contractCall) ([]interface{}, error) {
	tip20 := contracts.TIP20
	switch c.method.Name {
	case "name":
		return []interface{}{t.name}, nil
	case "symbol":
		return []interface{}{t.symbol}, nil
	case "decimals":
		return []interface{}{uint8(TokenDecimals)}, nil
	case "totalSupply":
		return []interface{}{new(big.Int).Set(t.supply)}, nil
	case "currency":
		return []interface{}{t.currency}, nil
	case "quoteToken":
		return []interface{}{t.quoteToken}, nil
	case "supplyCap":
		return []interface{}{new(big.Int).Set(t.supplyCap)}, nil
	case "paused":
		return []interface{}{t.paused}, nil
	case "transferPolicyId":
		return []interface{}{t.policyID}, nil
	case "balanceOf":
		return []interface{}{t.balance(c.args[0].(common.Address))}, nil
	case "allowance":
		return []interface{}{t.allowance(c.args[0].(common.Address), c.args[1].(common.Address))}, nil
	case "hasRole":
		return []interface{}{t.hasRole(c.args[1].([32]byte), c.args[0].(common.Address))}, nil

	case "transfer", "transferWithMemo":
		to, amount := c.args[0].(common.Address), c.args[1].(*big.Int)
		if err := s.transferChecks(t, c.from, to, amount); err != nil {
			return nil, err
		}
		t.move(c.from, to, amount)
		if err := c.emit(tip20, "Transfer", c.from, to, amount); err != nil {
			return nil, err
		}
		if c.method.Name == "transferWithMemo" {
			return nil, c.emit(tip20, "TransferWithMemo", c.from, to, amount, c.args[2].([32]byte))
		}
		return []interface{}{true}, nil

	case "transferFrom", "transferFromWithMemo":
		from, to, amount := c.args[0].(common.Address), c.args[1].(common.Address), c.args[2].(*big.Int)
		allowance := t.allowance(from, c.from)
		if allowance.Cmp(amount) < 0 {
			return nil, errors.Errorf("insufficient allowance of %s for %s", c.from.Hex(), from.Hex())
		}
		if err := s.transferChecks(t, from, to, amount); err != nil {
			return nil, err
		}
		t.setAllowance(from, c.from, allowance.Sub(allowance, amount))
		t.move(from, to, amount)
		if err := c.emit(tip20, "Transfer", from, to, amount); err != nil {
			return nil, err
		}
		if c.method.Name == "transferFromWithMemo" {
			if err := c.emit(tip20, "TransferWithMemo", from, to, amount, c.args[3].([32]byte)); err != nil {
				return nil, err
			}
		}
		return []interface{}{true}, nil

	case "approve":
		spender, amount := c.args[0].(common.Address), c.args[1].(*big.Int)
		t.setAllowance(c.from, spender, amount)
		return []interface{}{true}, c.emit(tip20, "Approval", c.from, spender, amount)

	case "mint", "mintWithMemo":
		to, amount := c.args[0].(common.Address), c.args[1].(*big.Int)
		if err := t.requireRole(contracts.IssuerRole, c.from); err != nil {
			return nil, err
		}
		newSupply := new(big.Int).Add(t.supply, amount)
		if newSupply.Cmp(t.supplyCap) > 0 {
			return nil, errors.Errorf("mint exceeds supply cap %s", t.supplyCap)
		}
		if !s.isAuthorized(t.policyID, to) {
			return nil, errors.Errorf("recipient %s not authorized by policy %d", to.Hex(), t.policyID)
		}
		t.supply = newSupply
		t.credit(to, amount)
		if err := c.emit(tip20, "Transfer", common.Address{}, to, amount); err != nil {
			return nil, err
		}
		return nil, c.emit(tip20, "Mint", to, amount)

	case "burn", "burnWithMemo":
		amount := c.args[0].(*big.Int)
		if err := t.requireRole(contracts.IssuerRole, c.from); err != nil {
			return nil, err
		}
		if err := t.requireBalance(c.from, amount); err != nil {
			return nil, err
		}
		t.debit(c.from, amount)
		t.supply.Sub(t.supply, amount)
		if err := c.emit(tip20, "Transfer", c.from, common.Address{}, amount); err != nil {
			return nil, err
		}
		return nil, c.emit(tip20, "Burn", c.from, amount)

	case "burnBlocked":
		from, amount := c.args[0].(common.Address), c.args[1].(*big.Int)
		if err := t.requireRole(contracts.BurnBlockedRole, c.from); err != nil {
			return nil, err
		}
		if s.isAuthorized(t.policyID, from) {
			return nil, errors.Errorf("%s is not blocked by policy %d", from.Hex(), t.policyID)
		}
		if err := t.requireBalance(from, amount); err != nil {
			return nil, err
		}
		t.debit(from, amount)
		t.supply.Sub(t.supply, amount)
		return nil, c.emit(tip20, "BurnBlocked", from, amount)

	case "pause", "unpause":
		role, paused := contracts.PauseRole, true
		if c.method.Name == "unpause" {
			role, paused = contracts.UnpauseRole, false
		}
		if err := t.requireRole(role, c.from); err != nil {
			return nil, err
		}
		t.paused = paused
		return nil, c.emit(tip20, "PauseStateUpdate", c.from, paused)

	case "changeTransferPolicyId":
		policyID := c.args[0].(uint64)
		if err := t.requireRole(contracts.DefaultAdminRole, c.from); err != nil {
			return nil, err
		}
		if _, ok := s.policies[policyID]; !ok {
			return nil, errors.Errorf("policy %d does not exist", policyID)
		}
		t.policyID = policyID
		return nil, c.emit(tip20, "TransferPolicyUpdate", c.from, policyID)

	case "setSupplyCap":
		supplyCap := c.args[0].(*big.Int)
		if err := t.requireRole(contracts.DefaultAdminRole, c.from); err != nil {
			return nil, err
		}
		if supplyCap.Cmp(t.supply) < 0 {
			return nil, errors.Errorf("supply cap %s below total supply %s", supplyCap, t.supply)
		}
		if supplyCap.Cmp(DefaultSupplyCap) > 0 {
			return nil, errors.Errorf("supply cap %s exceeds max uint128", supplyCap)
		}
		t.supplyCap = new(big.Int).Set(supplyCap)
		return nil, c.emit(tip20, "SupplyCapUpdate", c.from, supplyCap)

	case "grantRole", "revokeRole":
		role, account := c.args[0].([32]byte), c.args[1].(common.Address)
		if err := t.requireRole(t.roleAdmins[role], c.from); err != nil {
			return nil, err
		}
		granted := c.method.Name == "grantRole"
		t.setRole(role, account, granted)
		return nil, c.emit(tip20, "RoleMembershipUpdated", role, account, c.from, granted)

	case "renounceRole":
		role := c.args[0].([32]byte)
		if err := t.requireRole(role, c.from); err != nil {
			return nil, err
		}
		t.setRole(role, c.from, false)
		return nil, c.emit(tip20, "RoleMembershipUpdated", role, c.from, c.from, false)

	case "setRoleAdmin":
		role, adminRole := c.args[0].([32]byte), c.args[1].([32]byte)
		if err := t.requireRole(t.roleAdmins[role], c.from); err != nil {
			return nil, err
		}
		t.roleAdmins[role] = adminRole
		return nil, c.emit(tip20, "RoleAdminUpdated", role, adminRole, c.from)
	}
	return nil, unknownMethod(c)
}
