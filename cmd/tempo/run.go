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
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/cobra"
)

const asyncF = "async"

// handler implements a command that needs a connection to the chain.
type handler func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error

// run returns a cobra run function that parses the configuration, connects
// and calls h. The context passed to h is cancelled on interrupt.
func (c *cli) run(h handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := parseClientConfig(cmd.Flags(), c.cfgViper)
		if err != nil {
			return err
		}
		e, err := c.connect(cfg)
		if err != nil {
			return err
		}
		defer e.close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return h(ctx, cmd, e, args)
	}
}

func defineAsyncFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(asyncF, false, "Return after sending the transaction, without waiting for it to be mined")
}

func isAsync(cmd *cobra.Command) bool {
	async, err := cmd.Flags().GetBool(asyncF)
	return err == nil && async
}

func printTx(cmd *cobra.Command, tx *types.Transaction) {
	cmd.Printf("Sent transaction %s\n", tx.Hash().Hex())
}

var prettyFormatterOverrides = map[reflect.Type]interface{}{
	reflect.TypeOf(time.Duration(0)): fmt.Sprint,
	reflect.TypeOf(common.Address{}): func(a common.Address) string { return a.Hex() },
	reflect.TypeOf([32]byte{}):       func(b [32]byte) string { return hexutil.Encode(b[:]) },
	reflect.TypeOf(new(big.Int)):     func(v *big.Int) string { return v.String() },
	reflect.TypeOf(types.Log{}): func(l types.Log) string {
		return fmt.Sprintf("tx %s in block %d", l.TxHash.Hex(), l.BlockNumber)
	},
}

var prettyFormatterConfig = &pretty.Config{
	Formatter: prettyFormatterOverrides,
}

// prettify returns a prettified string version of the input data.
// Addresses, hashes and big integers are printed in their usual notation
// and logs are reduced to their position on chain.
func prettify(vals ...interface{}) string {
	return prettyFormatterConfig.Sprint(vals...)
}
