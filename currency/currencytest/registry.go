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


package currencytest

import (
	"github.com/tempo-labs/tempo-actions/contracts"
	"github.com/tempo-labs/tempo-actions/currency"
)

// PathUSDSymbol is the symbol of the first TIP20 token.
const PathUSDSymbol = "PathUSD"

// Registry returns a new currency registry with PathUSD registered.
func Registry() *currency.Registry {
	r := currency.NewRegistry()
	//nolint: errcheck		// Registering on a new registry will not fail.
	r.Register(contracts.PathUSDAddress, PathUSDSymbol, currency.TIP20Decimals)
	return r
}
