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

package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// MemoLen is the size of a memo in bytes.
const MemoLen = 32

// EncodeMemo returns the memo right padded with zeros. Memos longer than
// MemoLen bytes are rejected.
func EncodeMemo(memo string) ([MemoLen]byte, error) {
	var b [MemoLen]byte
	if len(memo) > MemoLen {
		return b, tempo.NewInvalidArgumentError("memo", memo, "at most 32 bytes")
	}
	copy(b[:], memo)
	return b, nil
}

// TransferParams are the arguments for a token transfer.
//
// If From is set, tokens are moved from that account using the allowance of
// the sender. If Memo is not empty, the memo is attached to the transfer.
type TransferParams struct {
	Token  common.Address
	From   *common.Address
	To     common.Address
	Amount *big.Int
	Memo   string
}

// TransferCall returns the call for the transfer, choosing between transfer,
// transferWithMemo, transferFrom and transferFromWithMemo.
func TransferCall(p TransferParams) (tempo.Call, error) {
	if err := contract.RequireAmount("amount", p.Amount); err != nil {
		return tempo.Call{}, err
	}
	var args []interface{}
	method := "transfer"
	if p.From != nil {
		method = "transferFrom"
		args = append(args, *p.From)
	}
	args = append(args, p.To, p.Amount)
	if p.Memo != "" {
		memo, err := EncodeMemo(p.Memo)
		if err != nil {
			return tempo.Call{}, err
		}
		method += "WithMemo"
		args = append(args, memo)
	}
	return tokenCall(p.Token, method, args...), nil
}

// Transfer sends a transfer transaction.
func Transfer(ctx context.Context, c tempo.ChainClient, p TransferParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := TransferCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// TransferSync sends a transfer transaction and returns the Transfer event
// once it is mined.
func TransferSync(ctx context.Context, c tempo.ChainClient, p TransferParams, opts tempo.TxOptions) (
	*TransferEvent, error) {
	call, err := TransferCall(p)
	if err != nil {
		return nil, err
	}
	ev := &TransferEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "Transfer", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// ApproveParams are the arguments for setting an allowance.
type ApproveParams struct {
	Token   common.Address
	Spender common.Address
	Amount  *big.Int
}

// ApproveCall returns the call for setting the allowance.
func ApproveCall(p ApproveParams) (tempo.Call, error) {
	if err := contract.RequireAmount("amount", p.Amount); err != nil {
		return tempo.Call{}, err
	}
	return tokenCall(p.Token, "approve", p.Spender, p.Amount), nil
}

// Approve sends an approve transaction.
func Approve(ctx context.Context, c tempo.ChainClient, p ApproveParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := ApproveCall(p)
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// ApproveSync sends an approve transaction and returns the Approval event
// once it is mined.
func ApproveSync(ctx context.Context, c tempo.ChainClient, p ApproveParams, opts tempo.TxOptions) (
	*ApprovalEvent, error) {
	call, err := ApproveCall(p)
	if err != nil {
		return nil, err
	}
	ev := &ApprovalEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "Approval", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}
