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
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ContractName identifies a precompile contract in error messages and logs.
type ContractName string

// Enumeration of the contracts the action packages bind to.
const (
	TIP20          ContractName = "TIP20"
	TIP20Factory   ContractName = "TIP20Factory"
	TIP403Registry ContractName = "TIP403Registry"
	FeeManager     ContractName = "FeeManager"
	FeeAMM         ContractName = "FeeAMM"
)

// EventNotFoundError indicates that the receipt of a mined transaction does
// not contain the event expected for the invoked method.
type EventNotFoundError struct {
	Contract ContractName
	Event    string
	TxHash   common.Hash
}

// Error implements error interface.
func (e EventNotFoundError) Error() string {
	return fmt.Sprintf("event %s not found in logs of tx %s on %s contract", e.Event, e.TxHash.Hex(), e.Contract)
}

// NewEventNotFoundError constructs and returns an EventNotFoundError.
func NewEventNotFoundError(contract ContractName, event string, txHash common.Hash) error {
	return errors.WithStack(EventNotFoundError{
		Contract: contract,
		Event:    event,
		TxHash:   txHash,
	})
}

// TxRevertedError indicates that a transaction was mined, but its execution
// failed.
type TxRevertedError struct {
	Contract ContractName
	Method   string
	TxHash   common.Hash
}

// Error implements error interface.
func (e TxRevertedError) Error() string {
	return fmt.Sprintf("tx %s calling %s on %s contract reverted", e.TxHash.Hex(), e.Method, e.Contract)
}

// NewTxRevertedError constructs and returns a TxRevertedError.
func NewTxRevertedError(contract ContractName, method string, txHash common.Hash) error {
	return errors.WithStack(TxRevertedError{
		Contract: contract,
		Method:   method,
		TxHash:   txHash,
	})
}

// InvalidArgumentError indicates that an argument cannot be mapped to the
// parameters of any contract method.
type InvalidArgumentError struct {
	Name        string
	Value       string
	Requirement string
}

// Error implements error interface.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s, requirement: %s", e.Name, e.Value, e.Requirement)
}

// NewInvalidArgumentError constructs and returns an InvalidArgumentError.
func NewInvalidArgumentError(name, value, requirement string) error {
	return errors.WithStack(InvalidArgumentError{
		Name:        name,
		Value:       value,
		Requirement: requirement,
	})
}

// IsEventNotFound reports whether err (or any error it wraps) is an
// EventNotFoundError.
func IsEventNotFound(err error) bool {
	var e EventNotFoundError
	return errors.As(err, &e)
}

// IsTxReverted reports whether err (or any error it wraps) is a
// TxRevertedError.
func IsTxReverted(err error) bool {
	var e TxRevertedError
	return errors.As(err, &e)
}

// IsInvalidArgument reports whether err (or any error it wraps) is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var e InvalidArgumentError
	return errors.As(err, &e)
}
