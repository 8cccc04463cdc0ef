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

package tempo_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/contracts"
)

func Test_Call(t *testing.T) {
	account := common.HexToAddress("0x0a")
	call := tempo.Call{
		To:     contracts.PathUSDAddress,
		ABI:    contracts.TIP20,
		Method: "balanceOf",
		Args:   []interface{}{account},
	}

	t.Run("data", func(t *testing.T) {
		data, err := call.Data()
		require.NoError(t, err)
		require.Len(t, data, 4+32)
		assert.Equal(t, contracts.TIP20.Methods["balanceOf"].ID, data[:4])
		assert.Equal(t, common.LeftPadBytes(account[:], 32), data[4:])
	})

	t.Run("msg", func(t *testing.T) {
		from := common.HexToAddress("0x0b")
		msg, err := call.Msg(from)
		require.NoError(t, err)
		assert.Equal(t, from, msg.From)
		require.NotNil(t, msg.To)
		assert.Equal(t, contracts.PathUSDAddress, *msg.To)
		assert.NotEmpty(t, msg.Data)
	})

	t.Run("no_abi", func(t *testing.T) {
		_, err := tempo.Call{To: contracts.PathUSDAddress, Method: "balanceOf"}.Data()
		assert.Error(t, err)
	})

	t.Run("wrong_args", func(t *testing.T) {
		bad := call
		bad.Args = []interface{}{big.NewInt(1)}
		_, err := bad.Data()
		assert.Error(t, err)
		_, err = bad.Msg(account)
		assert.Error(t, err)
	})

	t.Run("unknown_method", func(t *testing.T) {
		bad := call
		bad.Method = "balance"
		_, err := bad.Data()
		assert.Error(t, err)
	})
}
