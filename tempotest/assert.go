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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
)

// AssertInvalidArgumentError tests if the error is an InvalidArgumentError
// for the given argument name and value.
func AssertInvalidArgumentError(t *testing.T, err error, name, value string) {
	t.Helper()

	require.Error(t, err)
	var e tempo.InvalidArgumentError
	require.True(t, errors.As(err, &e), "want InvalidArgumentError, got %v", err)
	assert.Equal(t, name, e.Name)
	assert.Equal(t, value, e.Value)
	t.Log("requirement:", e.Requirement)
}

// AssertTxRevertedError tests if the error is a TxRevertedError for the
// given contract and method.
func AssertTxRevertedError(t *testing.T, err error, contract tempo.ContractName, method string) {
	t.Helper()

	require.Error(t, err)
	var e tempo.TxRevertedError
	require.True(t, errors.As(err, &e), "want TxRevertedError, got %v", err)
	assert.Equal(t, contract, e.Contract)
	assert.Equal(t, method, e.Method)
	assert.NotEqual(t, common.Hash{}, e.TxHash)
}

// AssertEventNotFoundError tests if the error is an EventNotFoundError for
// the given contract, event and transaction.
func AssertEventNotFoundError(t *testing.T, err error, contract tempo.ContractName, event string,
	txHash common.Hash) {
	t.Helper()

	require.Error(t, err)
	var e tempo.EventNotFoundError
	require.True(t, errors.As(err, &e), "want EventNotFoundError, got %v", err)
	assert.Equal(t, contract, e.Contract)
	assert.Equal(t, event, e.Event)
	assert.Equal(t, txHash, e.TxHash)
}

// AssertReceiptSuccessful tests if the receipt is for a successful tx.
func AssertReceiptSuccessful(t *testing.T, receipt *types.Receipt) {
	t.Helper()

	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
}

// ReceiveWithin returns the next value on ch, failing the test if none
// arrives within the timeout.
func ReceiveWithin[T any](t *testing.T, ch <-chan T, timeout time.Duration) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(timeout):
		require.FailNow(t, "timed out waiting for value")
	}
	var zero T
	return zero
}

// AssertNoneWithin tests that no value arrives on ch within the duration.
func AssertNoneWithin[T any](t *testing.T, ch <-chan T, d time.Duration) {
	t.Helper()

	select {
	case v := <-ch:
		assert.Failf(t, "unexpected value", "%v", v)
	case <-time.After(d):
	}
}
