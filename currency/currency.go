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


// Package currency converts TIP20 amounts between base units and their
// decimal representation, and keeps a registry of known tokens.
package currency

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/tempo-labs/tempo-actions"
)

// TIP20Decimals is the number of decimal places of every TIP20 token.
const TIP20Decimals uint8 = 6

type currency struct {
	symbol     string
	decimals   uint8
	multiplier decimal.Decimal
}

// New returns a currency with the given symbol and number of decimal places.
func New(symbol string, decimals uint8) tempo.Currency {
	return currency{
		symbol:     symbol,
		decimals:   decimals,
		multiplier: decimal.New(1, int32(decimals)),
	}
}

// Parse parses a decimal string and returns the amount in base units.
//
// Amounts that are negative or have more decimal places than the currency
// are rejected, so that no value is lost by rounding.
func (c currency) Parse(input string) (*big.Int, error) {
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return nil, tempo.NewInvalidArgumentError("amount", input, "decimal number")
	}
	if amount.Sign() < 0 {
		return nil, tempo.NewInvalidArgumentError("amount", input, "not negative")
	}
	base := amount.Mul(c.multiplier)
	if !base.Equal(base.Truncate(0)) {
		return nil, tempo.NewInvalidArgumentError("amount", input,
			fmt.Sprintf("at most %d decimal places", c.decimals))
	}
	return base.BigInt(), nil
}

// Print returns the amount with exactly as many decimal places as the
// currency has. A nil amount is printed as zero.
func (c currency) Print(input *big.Int) string {
	if input == nil {
		input = new(big.Int)
	}
	return decimal.NewFromBigInt(input, -int32(c.decimals)).StringFixed(int32(c.decimals))
}

func (c currency) Symbol() string {
	return c.symbol
}

func (c currency) Decimals() uint8 {
	return c.decimals
}
