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

package tempo

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions/log"
)

// Backend is the set of node methods used by the action packages for reading
// contract state, sending transactions, waiting for receipts and filtering
// logs. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// ChainClient wraps a Backend together with the account used for signing
// transactions.
//
// The timeout for waiting on transaction receipts is implemented by the
// action packages using the value returned by TxTimeout.
type ChainClient interface {
	Backend() Backend

	// Account returns the address used as sender for transactions and as the
	// from field of calls. It is the zero address for read-only clients.
	Account() common.Address

	// NewTransactor returns transact options bound to the given context.
	// It returns an error if the client has no signer.
	NewTransactor(ctx context.Context) (*bind.TransactOpts, error)

	TxTimeout() time.Duration
	Logger() log.Logger
}

// Call represents a single invocation of a contract method: the target
// address, the ABI it is encoded with, the (possibly overloaded) method name
// and the arguments in ABI order.
type Call struct {
	To     common.Address
	ABI    *abi.ABI
	Method string
	Args   []interface{}
}

// Data returns the ABI encoded calldata for the call.
func (c Call) Data() ([]byte, error) {
	if c.ABI == nil {
		return nil, errors.New("call has no abi")
	}
	data, err := c.ABI.Pack(c.Method, c.Args...)
	return data, errors.Wrapf(err, "packing arguments for %s", c.Method)
}

// Msg returns the call as a message that can be passed to eth_call or
// eth_estimateGas.
func (c Call) Msg(from common.Address) (ethereum.CallMsg, error) {
	data, err := c.Data()
	if err != nil {
		return ethereum.CallMsg{}, err
	}
	to := c.To
	return ethereum.CallMsg{From: from, To: &to, Data: data}, nil
}

// CallOptions are the optional parameters for read-only calls.
type CallOptions struct {
	// BlockNumber to run the call against. Nil means latest.
	BlockNumber *big.Int
	// Pending runs the call against the pending state.
	Pending bool
}

// TxOptions are the optional overrides for transactions. Zero values are
// filled in by the backend (nonce, gas estimation, fee suggestion).
type TxOptions struct {
	Nonce     *uint64
	GasLimit  uint64
	GasFeeCap *big.Int
	GasTipCap *big.Int
}

// WatchOptions are the optional parameters for event subscriptions.
type WatchOptions struct {
	// FromBlock replays matching logs starting at this block before
	// streaming new ones. Nil streams only new logs.
	FromBlock *uint64
}

// Currency converts token amounts between the base units used on chain and
// the decimal representation shown to users.
type Currency interface {
	Parse(string) (*big.Int, error)
	Print(*big.Int) string
	Symbol() string
	Decimals() uint8
}

// EntryKind distinguishes the addresses stored in an address book.
type EntryKind string

// Enumeration of the kinds of address book entries.
const (
	KindToken   EntryKind = "token"
	KindAccount EntryKind = "account"
)

// Entry is a named address in an address book.
type Entry struct {
	Alias         string         `yaml:"alias"`
	Kind          EntryKind      `yaml:"kind"`
	AddressString string         `yaml:"address"`
	Address       common.Address `yaml:"-"`
}

// AddressBookReader represents a read only address book.
type AddressBookReader interface {
	ReadByAlias(alias string) (e Entry, isPresent bool)
	ReadByAddress(addr common.Address) (e Entry, isPresent bool)
}

// AddressBook represents an address book that can be modified and persisted.
type AddressBook interface {
	AddressBookReader
	Write(alias string, e Entry) error
	Delete(alias string) error
	Entries() []Entry
	UpdateStorage() error
}

// ClientConfig represents the configurable parameters of a chain client.
type ClientConfig struct {
	LogLevel    string        // LogLevel for the client and all derived loggers.
	LogFile     string        // LogFile to write logs. Empty string represents stdout.
	ChainURL    string        // URL of the blockchain node.
	WSURL       string        // Optional websocket URL used for log subscriptions.
	ChainID     int64         // Expected chain id. Zero skips the check.
	ConnTimeout time.Duration // Timeout for connecting to blockchain node.
	TxTimeout   time.Duration // Timeout to wait for confirmation of on-chain tx.

	Keystore string // Keystore directory holding the signing key.
	Account  string // Address of the signing account. Empty for read-only use.
	Password string // Password for unlocking the signing account.

	AddressBook string // Path to the address book yaml file.
}
