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

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions/contracts"
)

// chainState holds the storage of all simulated precompiles.
//
// Handlers validate all preconditions before changing any state, so that a
// failed call leaves the state unchanged.
type chainState struct {
	tokens       map[common.Address]*tokenState
	tokenCounter uint64

	policies      map[uint64]*policyState
	policyCounter uint64

	userTokens      map[common.Address]common.Address
	validatorTokens map[common.Address]common.Address
	pools           map[[32]byte]*poolState
}

func newChainState() *chainState {
	s := &chainState{
		tokens:          make(map[common.Address]*tokenState),
		policies:        make(map[uint64]*policyState),
		policyCounter:   2,
		userTokens:      make(map[common.Address]common.Address),
		validatorTokens: make(map[common.Address]common.Address),
		pools:           make(map[[32]byte]*poolState),
	}
	// Built-in policies: an empty whitelist rejects everyone and an empty
	// blacklist allows everyone.
	s.policies[contracts.RejectAllPolicyID] = newPolicyState(policyWhitelist, common.Address{})
	s.policies[contracts.AllowAllPolicyID] = newPolicyState(policyBlacklist, common.Address{})
	s.createToken("PathUSD", "PathUSD", "USD", common.Address{}, common.Address{})
	return s
}

func (s *chainState) hasContract(addr common.Address) bool {
	switch addr {
	case contracts.TIP20FactoryAddress, contracts.TIP403RegistryAddress, contracts.FeeManagerAddress:
		return true
	}
	_, ok := s.tokens[addr]
	return ok
}

// contractCall is a decoded invocation of a precompile method.
type contractCall struct {
	from   common.Address
	to     common.Address
	method *abi.Method
	args   []interface{}
	logs   []*types.Log
}

// emit records an event of the given contract ABI, with args in the order of
// the event inputs.
func (c *contractCall) emit(parsed *abi.ABI, name string, args ...interface{}) error {
	ev, ok := parsed.Events[name]
	if !ok {
		return errors.Errorf("unknown event %s", name)
	}
	if len(args) != len(ev.Inputs) {
		return errors.Errorf("event %s: got %d args, expected %d", name, len(args), len(ev.Inputs))
	}
	topics := []common.Hash{ev.ID}
	var data []interface{}
	for i, input := range ev.Inputs {
		if !input.Indexed {
			data = append(data, args[i])
			continue
		}
		t, err := abi.MakeTopics([]interface{}{args[i]})
		if err != nil {
			return errors.Wrapf(err, "encoding topic %s of event %s", input.Name, name)
		}
		topics = append(topics, t[0][0])
	}
	packed, err := ev.Inputs.NonIndexed().Pack(data...)
	if err != nil {
		return errors.Wrapf(err, "encoding data of event %s", name)
	}
	c.logs = append(c.logs, &types.Log{Address: c.to, Topics: topics, Data: packed})
	return nil
}

type handler func(c *contractCall) ([]interface{}, error)

// run decodes and executes the calldata on the contract at addr. If write is
// false, only view methods are accepted.
func (s *chainState) run(from, to common.Address, data []byte, write bool) ([]byte, []*types.Log, error) {
	var abis []*abi.ABI
	var h handler
	switch to {
	case contracts.TIP20FactoryAddress:
		abis, h = []*abi.ABI{contracts.TIP20Factory}, s.runFactory
	case contracts.TIP403RegistryAddress:
		abis, h = []*abi.ABI{contracts.TIP403Registry}, s.runRegistry
	case contracts.FeeManagerAddress:
		abis, h = []*abi.ABI{contracts.FeeManager, contracts.FeeAMM}, s.runFeeManager
	default:
		tok, ok := s.tokens[to]
		if !ok {
			return nil, nil, errors.Errorf("no contract at %s", to.Hex())
		}
		abis = []*abi.ABI{contracts.TIP20}
		h = func(c *contractCall) ([]interface{}, error) { return s.runToken(tok, c) }
	}

	method, args, err := decodeCall(data, abis...)
	if err != nil {
		return nil, nil, err
	}
	if !write && !method.IsConstant() {
		return nil, nil, errors.Errorf("method %s changes state and cannot be called", method.Name)
	}
	c := &contractCall{from: from, to: to, method: method, args: args}
	out, err := h(c)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "execution reverted")
	}
	packed, err := method.Outputs.Pack(out...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encoding outputs of %s", method.Name)
	}
	return packed, c.logs, nil
}

func decodeCall(data []byte, abis ...*abi.ABI) (*abi.Method, []interface{}, error) {
	if len(data) < 4 {
		return nil, nil, errors.New("calldata shorter than method selector")
	}
	for _, parsed := range abis {
		method, err := parsed.MethodById(data[:4])
		if err != nil {
			continue
		}
		args, err := method.Inputs.Unpack(data[4:])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decoding arguments of %s", method.Name)
		}
		return method, args, nil
	}
	return nil, nil, errors.Errorf("unknown method selector %x", data[:4])
}

func unknownMethod(c *contractCall) error {
	return errors.Errorf("method %s not implemented", c.method.Name)
}

func isZero(x *big.Int) bool {
	return x == nil || x.Sign() == 0
}
