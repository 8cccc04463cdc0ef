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

// Package contracts holds the static ABI descriptors and addresses of the
// Tempo precompile contracts. All values are immutable after package
// initialization.
package contracts

import (
	"encoding/binary"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Parsed ABIs of the precompile contracts.
var (
	TIP20          = mustABI(TIP20ABI)
	TIP20Factory   = mustABI(TIP20FactoryABI)
	TIP403Registry = mustABI(TIP403RegistryABI)
	FeeManager     = mustABI(FeeManagerABI)
	FeeAMM         = mustABI(FeeAMMABI)
)

// Addresses of the singleton precompiles.
var (
	TIP20FactoryAddress   = common.HexToAddress("0x20Fc000000000000000000000000000000000000")
	TIP403RegistryAddress = common.HexToAddress("0x403c000000000000000000000000000000000000")
	FeeManagerAddress     = common.HexToAddress("0xfeEC000000000000000000000000000000000000")
	// The fee AMM is implemented by the fee manager precompile.
	FeeAMMAddress = FeeManagerAddress

	// PathUSDAddress is the address of the first TIP20 token (id 0), which is
	// the default fee token and the root of the quote token tree.
	PathUSDAddress = TokenAddress(0)
)

// tip20Prefix are the leading 12 bytes of every TIP20 token address. The
// trailing 8 bytes hold the big endian token id.
var tip20Prefix = [12]byte{0x20, 0xc0}

// TokenAddress returns the address of the TIP20 token with the given id.
func TokenAddress(id uint64) common.Address {
	var addr common.Address
	copy(addr[:12], tip20Prefix[:])
	binary.BigEndian.PutUint64(addr[12:], id)
	return addr
}

// IsTIP20Address reports whether the address lies in the TIP20 token address
// range. It does not check whether the token was created.
func IsTIP20Address(addr common.Address) bool {
	var prefix [12]byte
	copy(prefix[:], addr[:12])
	return prefix == tip20Prefix
}

// TokenID returns the id of the TIP20 token at the given address. The second
// return value is false if the address is not in the TIP20 address range.
func TokenID(addr common.Address) (uint64, bool) {
	if !IsTIP20Address(addr) {
		return 0, false
	}
	return binary.BigEndian.Uint64(addr[12:]), true
}

// Policy ids that exist on every chain without being created.
const (
	RejectAllPolicyID uint64 = 0
	AllowAllPolicyID  uint64 = 1
)

// Roles defined by the TIP20 token standard.
var (
	DefaultAdminRole = [32]byte{}
	IssuerRole       = roleHash("ISSUER_ROLE")
	PauseRole        = roleHash("PAUSE_ROLE")
	UnpauseRole      = roleHash("UNPAUSE_ROLE")
	BurnBlockedRole  = roleHash("BURN_BLOCKED_ROLE")
)

var rolesByName = map[string][32]byte{
	"defaultAdmin": DefaultAdminRole,
	"issuer":       IssuerRole,
	"pause":        PauseRole,
	"unpause":      UnpauseRole,
	"burnBlocked":  BurnBlockedRole,
}

// RoleByName returns the role hash for one of the names "defaultAdmin",
// "issuer", "pause", "unpause" or "burnBlocked".
func RoleByName(name string) ([32]byte, bool) {
	role, ok := rolesByName[name]
	return role, ok
}

// RoleNames returns the names accepted by RoleByName.
func RoleNames() []string {
	return []string{"defaultAdmin", "issuer", "pause", "unpause", "burnBlocked"}
}

func roleHash(name string) [32]byte {
	return crypto.Keccak256Hash([]byte(name))
}

func mustABI(json string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(json))
	if err != nil {
		panic(err)
	}
	return &parsed
}
