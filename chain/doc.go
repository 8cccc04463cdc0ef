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

// Package chain provides the go-ethereum backed implementation of
// tempo.ChainClient. It dials the blockchain node, optionally over a separate
// websocket endpoint for log subscriptions, and sets up the signer for the
// configured account from an ethereum keystore.
//
// All other packages in this module depend only on the tempo.ChainClient
// interface, so that they can be used with any backend, including the
// in-memory backend in the tempotest package.
package chain
