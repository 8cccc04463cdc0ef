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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// PauseCall returns the call for pausing all transfers of the token. The
// sender needs the pause role.
func PauseCall(token common.Address) tempo.Call {
	return tokenCall(token, "pause")
}

// Pause sends a pause transaction.
func Pause(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, PauseCall(token), opts)
}

// PauseSync sends a pause transaction and returns the PauseStateUpdate
// event once it is mined.
func PauseSync(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*PauseStateEvent, error) {
	return pauseStateSync(ctx, c, PauseCall(token), opts)
}

// UnpauseCall returns the call for resuming transfers of the token. The
// sender needs the unpause role.
func UnpauseCall(token common.Address) tempo.Call {
	return tokenCall(token, "unpause")
}

// Unpause sends an unpause transaction.
func Unpause(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*types.Transaction, error) {
	return contract.Write(ctx, c, UnpauseCall(token), opts)
}

// UnpauseSync sends an unpause transaction and returns the PauseStateUpdate
// event once it is mined.
func UnpauseSync(ctx context.Context, c tempo.ChainClient, token common.Address, opts tempo.TxOptions) (
	*PauseStateEvent, error) {
	return pauseStateSync(ctx, c, UnpauseCall(token), opts)
}

func pauseStateSync(ctx context.Context, c tempo.ChainClient, call tempo.Call, opts tempo.TxOptions) (
	*PauseStateEvent, error) {
	ev := &PauseStateEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.TIP20, call, opts, "PauseStateUpdate", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}

// ChangeTransferPolicyParams are the arguments for switching the TIP403
// policy of the token. The sender needs the default admin role.
type ChangeTransferPolicyParams struct {
	Token    common.Address
	PolicyID uint64
}

// ChangeTransferPolicyCall returns the call for switching the policy.
func ChangeTransferPolicyCall(p ChangeTransferPolicyParams) tempo.Call {
	return tokenCall(p.Token, "changeTransferPolicyId", p.PolicyID)
}

// ChangeTransferPolicy sends a changeTransferPolicyId transaction.
func ChangeTransferPolicy(ctx context.Context, c tempo.ChainClient, p ChangeTransferPolicyParams,
	opts tempo.TxOptions) (*types.Transaction, error) {
	return contract.Write(ctx, c, ChangeTransferPolicyCall(p), opts)
}

// ChangeTransferPolicySync sends a changeTransferPolicyId transaction and
// returns the TransferPolicyUpdate event once it is mined.
func ChangeTransferPolicySync(ctx context.Context, c tempo.ChainClient, p ChangeTransferPolicyParams,
	opts tempo.TxOptions) (*TransferPolicyEvent, error) {
	ev := &TransferPolicyEvent{}
	raw, err := contract.WriteSync(ctx, c, tempo.TIP20, ChangeTransferPolicyCall(p), opts,
		"TransferPolicyUpdate", ev)
	if err != nil {
		return nil, err
	}
	ev.Raw = raw
	return ev, nil
}
