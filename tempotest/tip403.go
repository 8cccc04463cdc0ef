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
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions/contracts"
)

// Policy types as encoded in the registry.
const (
	policyWhitelist uint8 = 0
	policyBlacklist uint8 = 1
)

type policyState struct {
	policyType uint8
	admin      common.Address
	members    map[common.Address]bool
}

func newPolicyState(policyType uint8, admin common.Address) *policyState {
	return &policyState{policyType: policyType, admin: admin, members: make(map[common.Address]bool)}
}

// isAuthorized reports whether the user may send or receive tokens governed
// by the policy. Unknown policies authorize no one.
func (s *chainState) isAuthorized(policyID uint64, user common.Address) bool {
	p, ok := s.policies[policyID]
	if !ok {
		return false
	}
	if p.policyType == policyWhitelist {
		return p.members[user]
	}
	return !p.members[user]
}

func (s *chainState) policyAsAdmin(policyID uint64, sender common.Address) (*policyState, error) {
	p, ok := s.policies[policyID]
	if !ok || policyID == contracts.RejectAllPolicyID || policyID == contracts.AllowAllPolicyID {
		return nil, errors.Errorf("policy %d cannot be modified", policyID)
	}
	if p.admin != sender {
		return nil, errors.Errorf("%s is not admin of policy %d", sender.Hex(), policyID)
	}
	return p, nil
}

func membershipEvent(policyType uint8) string {
	if policyType == policyWhitelist {
		return "WhitelistUpdated"
	}
	return "BlacklistUpdated"
}

func (s *chainState) runRegistry(c *contractCall) ([]interface{}, error) {
	registry := contracts.TIP403Registry
	switch c.method.Name {
	case "policyIdCounter":
		return []interface{}{s.policyCounter}, nil
	case "policyData":
		p, ok := s.policies[c.args[0].(uint64)]
		if !ok {
			return nil, errors.Errorf("policy %d does not exist", c.args[0].(uint64))
		}
		return []interface{}{p.policyType, p.admin}, nil
	case "isAuthorized":
		return []interface{}{s.isAuthorized(c.args[0].(uint64), c.args[1].(common.Address))}, nil

	case "createPolicy", "createPolicyWithAccounts":
		admin, policyType := c.args[0].(common.Address), c.args[1].(uint8)
		if policyType != policyWhitelist && policyType != policyBlacklist {
			return nil, errors.Errorf("invalid policy type %d", policyType)
		}
		var accounts []common.Address
		if c.method.Name == "createPolicyWithAccounts" {
			accounts = c.args[2].([]common.Address)
		}
		id := s.policyCounter
		s.policyCounter++
		p := newPolicyState(policyType, admin)
		s.policies[id] = p
		if err := c.emit(registry, "PolicyCreated", id, c.from, policyType); err != nil {
			return nil, err
		}
		if err := c.emit(registry, "PolicyAdminUpdated", id, c.from, admin); err != nil {
			return nil, err
		}
		for _, acc := range accounts {
			p.members[acc] = true
			if err := c.emit(registry, membershipEvent(policyType), id, c.from, acc, true); err != nil {
				return nil, err
			}
		}
		return []interface{}{id}, nil

	case "setPolicyAdmin":
		id, admin := c.args[0].(uint64), c.args[1].(common.Address)
		p, err := s.policyAsAdmin(id, c.from)
		if err != nil {
			return nil, err
		}
		p.admin = admin
		return nil, c.emit(registry, "PolicyAdminUpdated", id, c.from, admin)

	case "modifyPolicyWhitelist", "modifyPolicyBlacklist":
		id, account, member := c.args[0].(uint64), c.args[1].(common.Address), c.args[2].(bool)
		p, err := s.policyAsAdmin(id, c.from)
		if err != nil {
			return nil, err
		}
		wantType := policyWhitelist
		if c.method.Name == "modifyPolicyBlacklist" {
			wantType = policyBlacklist
		}
		if p.policyType != wantType {
			return nil, errors.Errorf("policy %d has type %d", id, p.policyType)
		}
		if member {
			p.members[account] = true
		} else {
			delete(p.members, account)
		}
		return nil, c.emit(registry, membershipEvent(wantType), id, c.from, account, member)
	}
	return nil, unknownMethod(c)
}
