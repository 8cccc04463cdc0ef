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
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/internal/contract"
)

// DefaultCurrency is used for new tokens if no currency is given.
const DefaultCurrency = "USD"

// CreateParams are the arguments for creating a token with the factory.
//
// Currency defaults to DefaultCurrency and QuoteToken to the path USD
// token. If Admin is the zero address, Create and CreateSync use the
// sending account.
type CreateParams struct {
	Name       string
	Symbol     string
	Currency   string
	QuoteToken common.Address
	Admin      common.Address
}

// CreateCall returns the call for creating the token.
func CreateCall(p CreateParams) (tempo.Call, error) {
	if p.Name == "" {
		return tempo.Call{}, tempo.NewInvalidArgumentError("name", p.Name, "non empty")
	}
	if p.Symbol == "" {
		return tempo.Call{}, tempo.NewInvalidArgumentError("symbol", p.Symbol, "non empty")
	}
	if p.Admin == (common.Address{}) {
		return tempo.Call{}, tempo.NewInvalidArgumentError("admin", p.Admin.Hex(), "non zero address")
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.QuoteToken == (common.Address{}) {
		p.QuoteToken = contracts.PathUSDAddress
	}
	return tempo.Call{
		To:     contracts.TIP20FactoryAddress,
		ABI:    contracts.TIP20Factory,
		Method: "createToken",
		Args:   []interface{}{p.Name, p.Symbol, p.Currency, p.QuoteToken, p.Admin},
	}, nil
}

func withAdmin(c tempo.ChainClient, p CreateParams) CreateParams {
	if p.Admin == (common.Address{}) {
		p.Admin = c.Account()
	}
	return p
}

// Create sends a createToken transaction.
func Create(ctx context.Context, c tempo.ChainClient, p CreateParams, opts tempo.TxOptions) (
	*types.Transaction, error) {
	call, err := CreateCall(withAdmin(c, p))
	if err != nil {
		return nil, err
	}
	return contract.Write(ctx, c, call, opts)
}

// CreateSync sends a createToken transaction and returns the TokenCreated
// event, which holds the address of the new token, once it is mined.
func CreateSync(ctx context.Context, c tempo.ChainClient, p CreateParams, opts tempo.TxOptions) (
	*CreateEvent, error) {
	call, err := CreateCall(withAdmin(c, p))
	if err != nil {
		return nil, err
	}
	ev := &CreateEvent{}
	ev.Raw, err = contract.WriteSync(ctx, c, tempo.TIP20Factory, call, opts, "TokenCreated", ev)
	if err != nil {
		return nil, err
	}
	return ev, nil
}
