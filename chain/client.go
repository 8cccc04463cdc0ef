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

package chain

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/log"
)

// Defaults used for zero valued timeouts.
const (
	DefaultTxTimeout   = 1 * time.Minute
	DefaultConnTimeout = 10 * time.Second
)

// Client implements tempo.ChainClient over a Backend and an optional signer.
type Client struct {
	logger log.Logger

	backend   tempo.Backend
	chainID   *big.Int
	account   common.Address
	signer    bind.SignerFn
	txTimeout time.Duration

	closers []func()
}

// NewClient returns a client for the given backend. If signer is nil, the
// client is read-only: calls are sent from the zero address and
// NewTransactor returns an error.
func NewClient(backend tempo.Backend, chainID *big.Int, txTimeout time.Duration, signer *bind.TransactOpts) *Client {
	if txTimeout == 0 {
		txTimeout = DefaultTxTimeout
	}
	c := &Client{
		logger:    log.NewLoggerWithField(log.ChainKey, chainID),
		backend:   backend,
		chainID:   new(big.Int).Set(chainID),
		txTimeout: txTimeout,
	}
	if signer != nil {
		c.account = signer.From
		c.signer = signer.Signer
		c.logger = log.NewDerivedLoggerWithField(c.logger, log.AccountKey, c.account.Hex())
	}
	return c
}

// Dial connects to the blockchain node at cfg.ChainURL and returns a client
// for it.
//
// If cfg.WSURL is set, log subscriptions are made over a separate connection
// to that URL, so that watches work when ChainURL is an http endpoint.
// If cfg.Account is set, the account is unlocked from cfg.Keystore and used
// for signing transactions. Otherwise the client is read-only.
func Dial(cfg tempo.ClientConfig) (*Client, error) {
	connTimeout := cfg.ConnTimeout
	if connTimeout == 0 {
		connTimeout = DefaultConnTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()
	eth, err := ethclient.DialContext(ctx, cfg.ChainURL)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to blockchain node at "+cfg.ChainURL)
	}
	closers := []func(){eth.Close}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		closeAll(closers)
		return nil, errors.Wrap(err, "reading chain id from "+cfg.ChainURL)
	}
	if cfg.ChainID != 0 && chainID.Cmp(big.NewInt(cfg.ChainID)) != 0 {
		closeAll(closers)
		return nil, errors.Errorf("chain id mismatch: configured %d, node reports %s", cfg.ChainID, chainID)
	}

	var backend tempo.Backend = eth
	if wsURL := strings.TrimSpace(cfg.WSURL); wsURL != "" && wsURL != cfg.ChainURL {
		ws, err := ethclient.DialContext(ctx, wsURL)
		if err != nil {
			closeAll(closers)
			return nil, errors.Wrap(err, "connecting to blockchain node at "+wsURL)
		}
		closers = append(closers, ws.Close)
		backend = &splitBackend{Client: eth, logs: ws}
	}

	var signer *bind.TransactOpts
	if cfg.Account != "" {
		addr, err := ParseAddr(cfg.Account)
		if err != nil {
			closeAll(closers)
			return nil, errors.WithMessage(err, "signing account")
		}
		signer, err = NewKeystoreTransactor(cfg.Keystore, addr, cfg.Password, chainID, StandardScryptParams())
		if err != nil {
			closeAll(closers)
			return nil, err
		}
	}

	c := NewClient(backend, chainID, cfg.TxTimeout, signer)
	c.closers = closers
	c.logger.WithField(log.URLKey, cfg.ChainURL).Debug("Connected to blockchain node")
	return c, nil
}

// Backend returns the backend used for all on-chain communication.
func (c *Client) Backend() tempo.Backend {
	return c.backend
}

// Account returns the address of the signing account, or the zero address
// for read-only clients.
func (c *Client) Account() common.Address {
	return c.account
}

// ChainID returns the id of the chain the client is connected to.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// TxTimeout is the max time to wait for confirmation of transactions on blockchain.
func (c *Client) TxTimeout() time.Duration {
	return c.txTimeout
}

// Logger returns the logger of this client.
func (c *Client) Logger() log.Logger {
	return c.logger
}

// NewTransactor returns transact options for the signing account, bound to
// the given context.
func (c *Client) NewTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	if c.signer == nil {
		return nil, errors.New("client is read-only, no signing account configured")
	}
	return &bind.TransactOpts{
		From:    c.account,
		Signer:  c.signer,
		Context: ctx,
	}, nil
}

// Close releases the connections held by the client. It is a no-op for
// clients created using NewClient.
func (c *Client) Close() {
	closeAll(c.closers)
	c.closers = nil
}

func closeAll(closers []func()) {
	for i := range closers {
		closers[i]()
	}
}

// splitBackend routes log subscriptions to a dedicated connection and
// everything else to the primary client.
type splitBackend struct {
	*ethclient.Client
	logs *ethclient.Client
}

// SubscribeFilterLogs subscribes using the dedicated connection.
func (b *splitBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (
	ethereum.Subscription, error) {
	return b.logs.SubscribeFilterLogs(ctx, q, ch)
}
