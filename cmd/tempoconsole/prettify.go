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


package main

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/kylelemons/godebug/pretty"
)

var prettyFormatterOverrides = map[reflect.Type]interface{}{
	reflect.TypeOf(time.Duration(0)): fmt.Sprint,
	reflect.TypeOf(common.Address{}): func(a common.Address) string { return name(a) },
	reflect.TypeOf(new(big.Int)):     func(v *big.Int) string { return v.String() },
	reflect.TypeOf(types.Log{}): func(l types.Log) string {
		return fmt.Sprintf("block %d", l.BlockNumber)
	},
}

var prettyFormatterConfig = &pretty.Config{
	Compact:   true,
	Formatter: prettyFormatterOverrides,
}

// prettify returns a prettified single line version of the input data.
// Addresses are replaced by their aliases where known.
func prettify(vals ...interface{}) string {
	return prettyFormatterConfig.Sprint(vals...)
}
