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

package contracts

// TIP20ABI is the interface of every TIP20 token precompile.
const TIP20ABI = `[
  {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"currency","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"quoteToken","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"supplyCap","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"paused","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferPolicyId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"role","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferWithMemo","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferFromWithMemo","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"mintWithMemo","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"burnWithMemo","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"burnBlocked","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"pause","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"unpause","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"changeTransferPolicyId","stateMutability":"nonpayable","inputs":[{"name":"newPolicyId","type":"uint64"}],"outputs":[]},
  {"type":"function","name":"setSupplyCap","stateMutability":"nonpayable","inputs":[{"name":"newSupplyCap","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"grantRole","stateMutability":"nonpayable","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[]},
  {"type":"function","name":"revokeRole","stateMutability":"nonpayable","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[]},
  {"type":"function","name":"renounceRole","stateMutability":"nonpayable","inputs":[{"name":"role","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"setRoleAdmin","stateMutability":"nonpayable","inputs":[{"name":"role","type":"bytes32"},{"name":"adminRole","type":"bytes32"}],"outputs":[]},
  {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}]},
  {"type":"event","name":"TransferWithMemo","anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"amount","type":"uint256"},{"indexed":true,"name":"memo","type":"bytes32"}]},
  {"type":"event","name":"Approval","anonymous":false,"inputs":[{"indexed":true,"name":"owner","type":"address"},{"indexed":true,"name":"spender","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}]},
  {"type":"event","name":"Mint","anonymous":false,"inputs":[{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}]},
  {"type":"event","name":"Burn","anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}]},
  {"type":"event","name":"BurnBlocked","anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":false,"name":"amount","type":"uint256"}]},
  {"type":"event","name":"PauseStateUpdate","anonymous":false,"inputs":[{"indexed":true,"name":"updater","type":"address"},{"indexed":false,"name":"isPaused","type":"bool"}]},
  {"type":"event","name":"TransferPolicyUpdate","anonymous":false,"inputs":[{"indexed":true,"name":"updater","type":"address"},{"indexed":true,"name":"newPolicyId","type":"uint64"}]},
  {"type":"event","name":"SupplyCapUpdate","anonymous":false,"inputs":[{"indexed":true,"name":"updater","type":"address"},{"indexed":true,"name":"newSupplyCap","type":"uint256"}]},
  {"type":"event","name":"RoleMembershipUpdated","anonymous":false,"inputs":[{"indexed":true,"name":"role","type":"bytes32"},{"indexed":true,"name":"account","type":"address"},{"indexed":true,"name":"sender","type":"address"},{"indexed":false,"name":"hasRole","type":"bool"}]},
  {"type":"event","name":"RoleAdminUpdated","anonymous":false,"inputs":[{"indexed":true,"name":"role","type":"bytes32"},{"indexed":true,"name":"newAdminRole","type":"bytes32"},{"indexed":true,"name":"sender","type":"address"}]}
]`

// TIP20FactoryABI is the interface of the TIP20 factory precompile.
const TIP20FactoryABI = `[
  {"type":"function","name":"createToken","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"currency","type":"string"},{"name":"quoteToken","type":"address"},{"name":"admin","type":"address"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"tokenIdCounter","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"isTIP20","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"event","name":"TokenCreated","anonymous":false,"inputs":[{"indexed":true,"name":"token","type":"address"},{"indexed":true,"name":"id","type":"uint256"},{"indexed":false,"name":"name","type":"string"},{"indexed":false,"name":"symbol","type":"string"},{"indexed":false,"name":"currency","type":"string"},{"indexed":false,"name":"quoteToken","type":"address"},{"indexed":false,"name":"admin","type":"address"}]}
]`

// TIP403RegistryABI is the interface of the transfer policy registry precompile.
const TIP403RegistryABI = `[
  {"type":"function","name":"policyIdCounter","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"policyData","stateMutability":"view","inputs":[{"name":"policyId","type":"uint64"}],"outputs":[{"name":"policyType","type":"uint8"},{"name":"admin","type":"address"}]},
  {"type":"function","name":"isAuthorized","stateMutability":"view","inputs":[{"name":"policyId","type":"uint64"},{"name":"user","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"createPolicy","stateMutability":"nonpayable","inputs":[{"name":"admin","type":"address"},{"name":"policyType","type":"uint8"}],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"createPolicyWithAccounts","stateMutability":"nonpayable","inputs":[{"name":"admin","type":"address"},{"name":"policyType","type":"uint8"},{"name":"accounts","type":"address[]"}],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"setPolicyAdmin","stateMutability":"nonpayable","inputs":[{"name":"policyId","type":"uint64"},{"name":"admin","type":"address"}],"outputs":[]},
  {"type":"function","name":"modifyPolicyWhitelist","stateMutability":"nonpayable","inputs":[{"name":"policyId","type":"uint64"},{"name":"account","type":"address"},{"name":"allowed","type":"bool"}],"outputs":[]},
  {"type":"function","name":"modifyPolicyBlacklist","stateMutability":"nonpayable","inputs":[{"name":"policyId","type":"uint64"},{"name":"account","type":"address"},{"name":"restricted","type":"bool"}],"outputs":[]},
  {"type":"event","name":"PolicyAdminUpdated","anonymous":false,"inputs":[{"indexed":true,"name":"policyId","type":"uint64"},{"indexed":true,"name":"updater","type":"address"},{"indexed":true,"name":"admin","type":"address"}]},
  {"type":"event","name":"PolicyCreated","anonymous":false,"inputs":[{"indexed":true,"name":"policyId","type":"uint64"},{"indexed":true,"name":"updater","type":"address"},{"indexed":false,"name":"policyType","type":"uint8"}]},
  {"type":"event","name":"WhitelistUpdated","anonymous":false,"inputs":[{"indexed":true,"name":"policyId","type":"uint64"},{"indexed":true,"name":"updater","type":"address"},{"indexed":true,"name":"account","type":"address"},{"indexed":false,"name":"allowed","type":"bool"}]},
  {"type":"event","name":"BlacklistUpdated","anonymous":false,"inputs":[{"indexed":true,"name":"policyId","type":"uint64"},{"indexed":true,"name":"updater","type":"address"},{"indexed":true,"name":"account","type":"address"},{"indexed":false,"name":"restricted","type":"bool"}]}
]`

// FeeManagerABI is the interface of the fee manager precompile used for
// fee token preferences.
const FeeManagerABI = `[
  {"type":"function","name":"userTokens","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"validatorTokens","stateMutability":"view","inputs":[{"name":"validator","type":"address"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"setUserToken","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"}],"outputs":[]},
  {"type":"function","name":"setValidatorToken","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"}],"outputs":[]},
  {"type":"event","name":"UserTokenSet","anonymous":false,"inputs":[{"indexed":true,"name":"user","type":"address"},{"indexed":true,"name":"token","type":"address"}]},
  {"type":"event","name":"ValidatorTokenSet","anonymous":false,"inputs":[{"indexed":true,"name":"validator","type":"address"},{"indexed":true,"name":"token","type":"address"}]}
]`

// FeeAMMABI is the interface of the fee AMM, hosted at the fee manager
// address.
const FeeAMMABI = `[
  {"type":"function","name":"getPoolId","stateMutability":"pure","inputs":[{"name":"userToken","type":"address"},{"name":"validatorToken","type":"address"}],"outputs":[{"name":"","type":"bytes32"}]},
  {"type":"function","name":"getPool","stateMutability":"view","inputs":[{"name":"userToken","type":"address"},{"name":"validatorToken","type":"address"}],"outputs":[{"name":"reserveUserToken","type":"uint128"},{"name":"reserveValidatorToken","type":"uint128"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[{"name":"poolId","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"liquidityBalances","stateMutability":"view","inputs":[{"name":"poolId","type":"bytes32"},{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"userToken","type":"address"},{"name":"validatorToken","type":"address"},{"name":"amountUserToken","type":"uint256"},{"name":"amountValidatorToken","type":"uint256"},{"name":"to","type":"address"}],"outputs":[{"name":"liquidity","type":"uint256"}]},
  {"type":"function","name":"mintWithValidatorToken","stateMutability":"nonpayable","inputs":[{"name":"userToken","type":"address"},{"name":"validatorToken","type":"address"},{"name":"amountValidatorToken","type":"uint256"},{"name":"to","type":"address"}],"outputs":[{"name":"liquidity","type":"uint256"}]},
  {"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"userToken","type":"address"},{"name":"validatorToken","type":"address"},{"name":"liquidity","type":"uint256"},{"name":"to","type":"address"}],"outputs":[{"name":"amountUserToken","type":"uint256"},{"name":"amountValidatorToken","type":"uint256"}]},
  {"type":"function","name":"rebalanceSwap","stateMutability":"nonpayable","inputs":[{"name":"userToken","type":"address"},{"name":"validatorToken","type":"address"},{"name":"amountOut","type":"uint256"},{"name":"to","type":"address"}],"outputs":[{"name":"amountIn","type":"uint256"}]},
  {"type":"event","name":"Mint","anonymous":false,"inputs":[{"indexed":true,"name":"sender","type":"address"},{"indexed":true,"name":"userToken","type":"address"},{"indexed":true,"name":"validatorToken","type":"address"},{"indexed":false,"name":"amountUserToken","type":"uint256"},{"indexed":false,"name":"amountValidatorToken","type":"uint256"},{"indexed":false,"name":"liquidity","type":"uint256"}]},
  {"type":"event","name":"Burn","anonymous":false,"inputs":[{"indexed":true,"name":"sender","type":"address"},{"indexed":true,"name":"userToken","type":"address"},{"indexed":true,"name":"validatorToken","type":"address"},{"indexed":false,"name":"amountUserToken","type":"uint256"},{"indexed":false,"name":"amountValidatorToken","type":"uint256"},{"indexed":false,"name":"liquidity","type":"uint256"},{"indexed":false,"name":"to","type":"address"}]},
  {"type":"event","name":"RebalanceSwap","anonymous":false,"inputs":[{"indexed":true,"name":"userToken","type":"address"},{"indexed":true,"name":"validatorToken","type":"address"},{"indexed":true,"name":"swapper","type":"address"},{"indexed":false,"name":"amountIn","type":"uint256"},{"indexed":false,"name":"amountOut","type":"uint256"}]},
  {"type":"event","name":"FeeSwap","anonymous":false,"inputs":[{"indexed":true,"name":"userToken","type":"address"},{"indexed":true,"name":"validatorToken","type":"address"},{"indexed":false,"name":"amountIn","type":"uint256"},{"indexed":false,"name":"amountOut","type":"uint256"}]}
]`
