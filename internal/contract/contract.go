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

// Package contract implements the read, write, wait and watch steps shared
// by all action packages. Each function takes a tempo.Call built by an
// action package and hands it over to go-ethereum's bind package.
package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/log"
)

func bound(c tempo.ChainClient, addr common.Address, parsed *abi.ABI) *bind.BoundContract {
	b := c.Backend()
	return bind.NewBoundContract(addr, *parsed, b, b, b)
}

// Read runs the call against the chain without creating a transaction and
// returns the decoded outputs in ABI order.
func Read(ctx context.Context, c tempo.ChainClient, call tempo.Call, opts tempo.CallOptions) ([]interface{}, error) {
	var out []interface{}
	callOpts := &bind.CallOpts{
		Context:     ctx,
		From:        c.Account(),
		BlockNumber: opts.BlockNumber,
		Pending:     opts.Pending,
	}
	err := bound(c, call.To, call.ABI).Call(callOpts, &out, call.Method, call.Args...)
	if err != nil {
		return nil, errors.WithMessagef(err, "calling %s on %s", call.Method, call.To.Hex())
	}
	return out, nil
}

// ReadOne is like Read for methods with a single output.
func ReadOne(ctx context.Context, c tempo.ChainClient, call tempo.Call, opts tempo.CallOptions) (interface{}, error) {
	out, err := Read(ctx, c, call, opts)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, errors.Errorf("%s returned %d values, expected 1", call.Method, len(out))
	}
	return out[0], nil
}

// Write signs the call as a transaction with the client's account and sends
// it. It does not wait for the transaction to be mined.
func Write(ctx context.Context, c tempo.ChainClient, call tempo.Call, opts tempo.TxOptions) (*types.Transaction, error) {
	txOpts, err := c.NewTransactor(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Nonce != nil {
		txOpts.Nonce = new(big.Int).SetUint64(*opts.Nonce)
	}
	txOpts.GasLimit = opts.GasLimit
	txOpts.GasFeeCap = opts.GasFeeCap
	txOpts.GasTipCap = opts.GasTipCap

	tx, err := bound(c, call.To, call.ABI).Transact(txOpts, call.Method, call.Args...)
	if err != nil {
		return nil, errors.WithMessagef(err, "sending %s tx to %s", call.Method, call.To.Hex())
	}
	c.Logger().WithFields(log.Fields{
		log.ContractKey: call.To.Hex(),
		log.MethodKey:   call.Method,
		log.TxKey:       tx.Hash().Hex(),
	}).Debug("Sent tx")
	return tx, nil
}

// Wait waits for the transaction to be mined, bounded by the client's tx
// timeout. It returns a TxRevertedError if the transaction failed.
func Wait(ctx context.Context, c tempo.ChainClient, name tempo.ContractName, method string, tx *types.Transaction) (
	*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.TxTimeout())
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.Backend(), tx)
	if err != nil {
		return nil, errors.WithMessagef(err, "waiting for %s tx %s to be mined", method, tx.Hash().Hex())
	}
	logger := c.Logger().WithFields(log.Fields{
		log.ContractKey: string(name),
		log.MethodKey:   method,
		log.TxKey:       tx.Hash().Hex(),
		log.BlockKey:    receipt.BlockNumber,
	})
	if receipt.Status != types.ReceiptStatusSuccessful {
		logger.Error("Tx reverted")
		return receipt, tempo.NewTxRevertedError(name, method, tx.Hash())
	}
	logger.Debug("Tx mined")
	return receipt, nil
}

// WriteSync sends the call as a transaction, waits for it to be mined and
// decodes the first log of the named event emitted by the call's target
// into out. The decoded log is returned.
func WriteSync(ctx context.Context, c tempo.ChainClient, name tempo.ContractName, call tempo.Call,
	opts tempo.TxOptions, eventName string, out interface{}) (types.Log, error) {
	tx, err := Write(ctx, c, call, opts)
	if err != nil {
		return types.Log{}, err
	}
	receipt, err := Wait(ctx, c, name, call.Method, tx)
	if err != nil {
		return types.Log{}, err
	}
	l, err := ExtractEvent(receipt.Logs, name, call.To, call.ABI, eventName, out)
	if tempo.IsEventNotFound(err) {
		// The receipt may hold no logs to take the hash from.
		return types.Log{}, tempo.NewEventNotFoundError(name, eventName, receipt.TxHash)
	}
	return l, err
}

// ExtractEvent decodes the first log in logs that was emitted by addr and
// matches the named event of the ABI into out, and returns that log. If no
// such log exists, it returns an EventNotFoundError.
func ExtractEvent(logs []*types.Log, name tempo.ContractName, addr common.Address, parsed *abi.ABI,
	eventName string, out interface{}) (types.Log, error) {
	ev, ok := parsed.Events[eventName]
	if !ok {
		return types.Log{}, errors.Errorf("event %s not defined in %s abi", eventName, name)
	}
	var txHash common.Hash
	for _, l := range logs {
		if l == nil {
			continue
		}
		txHash = l.TxHash
		if l.Address != addr || len(l.Topics) == 0 || l.Topics[0] != ev.ID {
			continue
		}
		if err := UnpackLog(parsed, out, eventName, *l); err != nil {
			return types.Log{}, errors.WithMessagef(err, "decoding %s event", eventName)
		}
		return *l, nil
	}
	return types.Log{}, tempo.NewEventNotFoundError(name, eventName, txHash)
}

// UnpackLog decodes both the indexed and the non-indexed fields of the log
// into out.
func UnpackLog(parsed *abi.ABI, out interface{}, eventName string, l types.Log) error {
	// Address is not used for unpacking.
	return bind.NewBoundContract(l.Address, *parsed, nil, nil, nil).UnpackLog(out, eventName, l)
}

// Watch subscribes to logs of the named event emitted by addr and invokes
// handle for each of them from a single goroutine. The query rules filter on
// the indexed event fields in order; nil rules match any value.
//
// If opts has a from block, the matching logs mined since that block are
// read with a filter query after subscribing and handled before the live
// ones. Live logs at or before the last replayed one are dropped.
//
// The subscription ends when it is unsubscribed, when the underlying log
// subscription fails or when handle returns an error. The error is
// reported on the Err channel of the returned subscription.
func Watch(c tempo.ChainClient, addr common.Address, parsed *abi.ABI, eventName string, opts tempo.WatchOptions,
	query [][]interface{}, handle func(types.Log) error) (event.Subscription, error) {
	if _, ok := parsed.Events[eventName]; !ok {
		return nil, errors.Errorf("event %s not defined in abi", eventName)
	}
	ctx, cancel := context.WithCancel(context.Background())
	logs, sub, err := bound(c, addr, parsed).WatchLogs(&bind.WatchOpts{Context: ctx}, eventName, query...)
	if err != nil {
		cancel()
		return nil, errors.WithMessagef(err, "subscribing to %s events of %s", eventName, addr.Hex())
	}
	var replay []types.Log
	if opts.FromBlock != nil {
		if replay, err = filterLogs(ctx, c, addr, parsed, eventName, *opts.FromBlock, query); err != nil {
			sub.Unsubscribe()
			cancel()
			return nil, err
		}
	}

	logger := c.Logger().WithFields(log.Fields{log.ContractKey: addr.Hex(), log.EventKey: eventName})
	logger.WithField("replayed", len(replay)).Debug("Watching events")
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer cancel()
		defer sub.Unsubscribe()
		var last *types.Log
		for i := range replay {
			if err := handle(replay[i]); err != nil {
				logger.WithError(err).Error("Handling event")
				return err
			}
			last = &replay[i]
			select {
			case <-quit:
				return nil
			default:
			}
		}
		for {
			select {
			case l := <-logs:
				if l.Removed || (last != nil && !isAfter(l, *last)) {
					continue
				}
				if err := handle(l); err != nil {
					logger.WithError(err).Error("Handling event")
					return err
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				logger.Debug("Stopped watching events")
				return nil
			}
		}
	}), nil
}

// filterLogs returns the logs of the named event emitted by addr since the
// given block that match the query rules.
func filterLogs(ctx context.Context, c tempo.ChainClient, addr common.Address, parsed *abi.ABI, eventName string,
	fromBlock uint64, query [][]interface{}) ([]types.Log, error) {
	rules := append([][]interface{}{{parsed.Events[eventName].ID}}, query...)
	topics, err := abi.MakeTopics(rules...)
	if err != nil {
		return nil, errors.WithMessagef(err, "building %s event filter", eventName)
	}
	logs, err := c.Backend().FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{addr},
		Topics:    topics,
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "reading %s events of %s since block %d", eventName, addr.Hex(),
			fromBlock)
	}
	replay := logs[:0]
	for _, l := range logs {
		if !l.Removed {
			replay = append(replay, l)
		}
	}
	return replay, nil
}

// isAfter reports whether l comes after ref on chain.
func isAfter(l, ref types.Log) bool {
	if l.BlockNumber != ref.BlockNumber {
		return l.BlockNumber > ref.BlockNumber
	}
	return l.Index > ref.Index
}

// AddressRule returns a topic rule matching the given address, or any
// address if addr is nil.
func AddressRule(addr *common.Address) []interface{} {
	if addr == nil {
		return nil
	}
	return []interface{}{*addr}
}

// RequireAmount returns an InvalidArgumentError if the amount is missing or
// negative.
func RequireAmount(name string, amount *big.Int) error {
	if amount == nil {
		return tempo.NewInvalidArgumentError(name, "nil", "value is required")
	}
	if amount.Sign() < 0 {
		return tempo.NewInvalidArgumentError(name, amount.String(), "value must not be negative")
	}
	return nil
}
