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
	"context"
	"encoding/binary"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions/contracts"
)

// Gas and fee values reported by the backend. Gas is not metered.
const (
	GasLimit  = 500_000
	BaseFee   = 1_000_000_000
	GasTipCap = 1_000_000_000
)

// precompileCode is returned as code for every address hosting a contract,
// so that the bind package accepts calls and transactions to it.
var precompileCode = []byte{0xef}

// Backend is an in-memory blockchain implementing tempo.Backend. It hosts
// simulated versions of the TIP20 tokens and factory, the TIP403 registry,
// the fee manager and the fee AMM.
//
// Every accepted transaction is mined immediately in its own block. Failing
// calls are mined with a failed receipt status and leave the state
// unchanged. Gas estimation does not execute the call, so transactions that
// fail are still sent.
type Backend struct {
	chainID *big.Int
	signer  types.Signer

	// sendMtx serializes mining together with the delivery of the mined logs
	// to subscribers.
	sendMtx sync.Mutex
	feed    event.Feed

	mtx      sync.Mutex
	head     uint64
	nonces   map[common.Address]uint64
	receipts map[common.Hash]*types.Receipt
	latest   *types.Receipt
	logs     []types.Log
	state    *chainState
}

// NewBackend returns a backend for the given chain id. The path USD token
// (token id 0) exists from the start.
func NewBackend(chainID *big.Int) *Backend {
	return &Backend{
		chainID:  new(big.Int).Set(chainID),
		signer:   types.LatestSignerForChainID(chainID),
		nonces:   make(map[common.Address]uint64),
		receipts: make(map[common.Hash]*types.Receipt),
		state:    newChainState(),
	}
}

// ChainID returns the chain id of the backend.
func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.chainID), nil
}

// Head returns the number of the latest block.
func (b *Backend) Head() uint64 {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.head
}

// CodeAt returns non empty code for all addresses hosting a contract.
func (b *Backend) CodeAt(_ context.Context, addr common.Address, _ *big.Int) ([]byte, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	if !b.state.hasContract(addr) {
		return nil, nil
	}
	return precompileCode, nil
}

// PendingCodeAt is the same as CodeAt, since there is no pending state.
func (b *Backend) PendingCodeAt(ctx context.Context, addr common.Address) ([]byte, error) {
	return b.CodeAt(ctx, addr, nil)
}

// CallContract executes a view method against the latest state. The block
// number is ignored, since no historic state is kept.
func (b *Backend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if msg.To == nil {
		return nil, errors.New("call without target address")
	}
	b.mtx.Lock()
	defer b.mtx.Unlock()
	out, _, err := b.state.run(msg.From, *msg.To, msg.Data, false)
	return out, err
}

// PendingCallContract is the same as CallContract.
func (b *Backend) PendingCallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	return b.CallContract(ctx, msg, nil)
}

// HeaderByNumber returns the header of the latest block, irrespective of the
// requested number.
func (b *Backend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return &types.Header{
		Number:   new(big.Int).SetUint64(b.head),
		GasLimit: 30_000_000,
		BaseFee:  big.NewInt(BaseFee),
	}, nil
}

// PendingNonceAt returns the next nonce of the account.
func (b *Backend) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.nonces[account], nil
}

// SuggestGasPrice returns the base fee plus the suggested tip.
func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(BaseFee + GasTipCap), nil
}

// SuggestGasTipCap returns a constant tip.
func (b *Backend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(GasTipCap), nil
}

// EstimateGas returns a constant gas limit without executing the call.
func (b *Backend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return GasLimit, nil
}

// SendTransaction mines the transaction in a new block and delivers its logs
// to all matching subscriptions before returning.
func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	from, err := types.Sender(b.signer, tx)
	if err != nil {
		return errors.Wrap(err, "recovering tx sender")
	}
	if tx.To() == nil {
		return errors.New("contract creation is not supported")
	}

	b.sendMtx.Lock()
	defer b.sendMtx.Unlock()

	b.mtx.Lock()
	if expected := b.nonces[from]; tx.Nonce() != expected {
		b.mtx.Unlock()
		return errors.Errorf("invalid nonce for %s: got %d, expected %d", from.Hex(), tx.Nonce(), expected)
	}
	b.nonces[from]++
	_, logs, err := b.state.run(from, *tx.To(), tx.Data(), true)
	status := types.ReceiptStatusSuccessful
	if err != nil {
		status = types.ReceiptStatusFailed
		logs = nil
	}
	receipt := b.mine(tx.Hash(), status, logs)
	b.mtx.Unlock()

	b.deliver(receipt.Logs)
	return nil
}

// TransactionReceipt returns the receipt of a mined transaction or
// ethereum.NotFound.
func (b *Backend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	receipt, ok := b.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// LatestReceipt returns the receipt of the most recently mined transaction,
// or nil if none was mined.
func (b *Backend) LatestReceipt() *types.Receipt {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.latest
}

// FilterLogs returns all mined logs matching the query.
func (b *Backend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	var logs []types.Log
	for _, l := range b.logs {
		if matchBlocks(q, l) && matchLog(q, l) {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

// SubscribeFilterLogs streams logs matching the query to ch. As on a real
// node, only logs mined after subscribing are sent, regardless of the from
// block of the query.
func (b *Backend) SubscribeFilterLogs(_ context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (
	ethereum.Subscription, error) {
	b.sendMtx.Lock()
	live := make(chan types.Log, 16)
	feedSub := b.feed.Subscribe(live)
	b.sendMtx.Unlock()

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer feedSub.Unsubscribe()
		for {
			select {
			case l := <-live:
				if !matchLog(q, l) {
					continue
				}
				select {
				case ch <- l:
				case <-quit:
					return nil
				}
			case err := <-feedSub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

// mine appends a block holding a single transaction. It must be called with
// mtx held.
func (b *Backend) mine(txHash common.Hash, status uint64, logs []*types.Log) *types.Receipt {
	b.head++
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], b.head)
	blockHash := crypto.Keccak256Hash(b.chainID.Bytes(), num[:])

	for _, l := range logs {
		l.BlockNumber = b.head
		l.BlockHash = blockHash
		l.TxHash = txHash
		l.Index = uint(len(b.logs))
		b.logs = append(b.logs, *l)
	}
	receipt := &types.Receipt{
		Type:              types.DynamicFeeTxType,
		Status:            status,
		CumulativeGasUsed: GasLimit,
		GasUsed:           GasLimit,
		Logs:              logs,
		TxHash:            txHash,
		BlockHash:         blockHash,
		BlockNumber:       new(big.Int).SetUint64(b.head),
	}
	if logs == nil {
		receipt.Logs = []*types.Log{}
	}
	b.receipts[txHash] = receipt
	b.latest = receipt
	return receipt
}

// deliver sends the logs to all subscriptions. It must be called with
// sendMtx held and mtx released.
func (b *Backend) deliver(logs []*types.Log) {
	for _, l := range logs {
		b.feed.Send(*l)
	}
}

func matchBlocks(q ethereum.FilterQuery, l types.Log) bool {
	if q.BlockHash != nil {
		return *q.BlockHash == l.BlockHash
	}
	if q.FromBlock != nil && l.BlockNumber < q.FromBlock.Uint64() {
		return false
	}
	if q.ToBlock != nil && q.ToBlock.Sign() >= 0 && l.BlockNumber > q.ToBlock.Uint64() {
		return false
	}
	return true
}

func matchLog(q ethereum.FilterQuery, l types.Log) bool {
	if len(q.Addresses) > 0 && !containsAddr(q.Addresses, l.Address) {
		return false
	}
	if len(q.Topics) > len(l.Topics) {
		return false
	}
	for i, rule := range q.Topics {
		if len(rule) == 0 {
			continue
		}
		if !containsHash(rule, l.Topics[i]) {
			return false
		}
	}
	return true
}

func containsAddr(addrs []common.Address, addr common.Address) bool {
	for i := range addrs {
		if addrs[i] == addr {
			return true
		}
	}
	return false
}

func containsHash(hashes []common.Hash, hash common.Hash) bool {
	for i := range hashes {
		if hashes[i] == hash {
			return true
		}
	}
	return false
}

// CreateToken creates a TIP20 token quoted in path USD without sending a
// transaction, with admin holding the default admin role.
func (b *Backend) CreateToken(name, symbol, currency string, admin common.Address) common.Address {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.state.createToken(name, symbol, currency, contracts.PathUSDAddress, admin).addr
}

// GrantRole grants the role on the token to the account without sending a
// transaction.
func (b *Backend) GrantRole(token common.Address, role [32]byte, account common.Address) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	tok, ok := b.state.tokens[token]
	if !ok {
		return errors.Errorf("no token at %s", token.Hex())
	}
	tok.setRole(role, account, true)
	return nil
}

// Mint credits amount of the token to the account without sending a
// transaction. Supply cap and transfer policy are not checked.
func (b *Backend) Mint(token, to common.Address, amount *big.Int) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	tok, ok := b.state.tokens[token]
	if !ok {
		return errors.Errorf("no token at %s", token.Hex())
	}
	tok.credit(to, amount)
	tok.supply.Add(tok.supply, amount)
	return nil
}

// ExecuteFeeSwap swaps amountIn of the user token into the validator token
// in the pool, the way the protocol does when collecting fees, and mines
// the resulting FeeSwap event in a new block. It returns the amount out.
func (b *Backend) ExecuteFeeSwap(userToken, validatorToken common.Address, amountIn *big.Int) (*big.Int, error) {
	b.sendMtx.Lock()
	defer b.sendMtx.Unlock()

	b.mtx.Lock()
	c := &contractCall{to: contracts.FeeAMMAddress}
	amountOut, err := b.state.feeSwap(c, userToken, validatorToken, amountIn)
	if err != nil {
		b.mtx.Unlock()
		return nil, err
	}
	var txHash common.Hash
	copy(txHash[:], crypto.Keccak256([]byte("feeSwap"), new(big.Int).SetUint64(b.head).Bytes()))
	receipt := b.mine(txHash, types.ReceiptStatusSuccessful, c.logs)
	b.mtx.Unlock()

	b.deliver(receipt.Logs)
	return amountOut, nil
}
