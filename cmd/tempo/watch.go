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
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/spf13/cobra"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/amm"
	"github.com/tempo-labs/tempo-actions/fee"
	"github.com/tempo-labs/tempo-actions/policy"
	"github.com/tempo-labs/tempo-actions/token"
)

const fromBlockF = "from-block"

func (c *cli) newWatchCmd() *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print events as they are emitted, until interrupted",
	}
	watchCmd.PersistentFlags().Int64(fromBlockF, -1, "Replay events starting at this block before watching new ones")

	transferCmd := &cobra.Command{
		Use:   "transfer [token]",
		Short: "Watch transfers of the token",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run(watchTransfer),
	}
	transferCmd.Flags().String(fromF, "", "Only transfers from this account")
	transferCmd.Flags().String(toF, "", "Only transfers to this account")

	watchCmd.AddCommand(
		transferCmd,
		&cobra.Command{
			Use:   "supply [token]",
			Short: "Watch mints and burns of the token",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(watchSupply),
		},
		&cobra.Command{
			Use:   "approval [token] [owner]",
			Short: "Watch approvals of the owner, or of all owners if omitted",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  c.run(watchApproval),
		},
		&cobra.Command{
			Use:   "role [token] [account]",
			Short: "Watch role changes of the account, or of all accounts if omitted",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  c.run(watchRole),
		},
		&cobra.Command{
			Use:   "token-created",
			Short: "Watch the creation of tokens",
			Args:  cobra.NoArgs,
			RunE:  c.run(watchTokenCreated),
		},
		&cobra.Command{
			Use:   "policy [policy id]",
			Short: "Watch changes of the policy, or of all policies if omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.run(watchPolicy),
		},
		&cobra.Command{
			Use:   "fee [account]",
			Short: "Watch fee token changes of the account, or of all users and validators if omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.run(watchFee),
		},
		&cobra.Command{
			Use:   "amm [user token] [validator token]",
			Short: "Watch the pool of the pair, or all pools if omitted",
			Args:  cobra.RangeArgs(0, 2),
			RunE:  c.run(watchAMM),
		},
	)
	return watchCmd
}

func watchOptions(cmd *cobra.Command) tempo.WatchOptions {
	var opts tempo.WatchOptions
	fromBlock, err := cmd.Flags().GetInt64(fromBlockF)
	if err == nil && fromBlock >= 0 {
		from := uint64(fromBlock)
		opts.FromBlock = &from
	}
	return opts
}

// printer serializes the output of concurrently running event handlers.
type printer struct {
	mtx sync.Mutex
	cmd *cobra.Command
}

func (p *printer) event(name string, ev interface{}) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.cmd.Printf("%s %s\n", name, prettify(ev))
}

// watcher collects the subscriptions of a watch command.
type watcher struct {
	*printer
	subs []event.Subscription
}

func newWatcher(cmd *cobra.Command) *watcher {
	return &watcher{printer: &printer{cmd: cmd}}
}

func (w *watcher) add(sub event.Subscription, err error) error {
	if err != nil {
		w.unsubscribe()
		return err
	}
	w.subs = append(w.subs, sub)
	return nil
}

func (w *watcher) unsubscribe() {
	for _, sub := range w.subs {
		sub.Unsubscribe()
	}
}

// wait blocks until the context is done or a subscription fails and ends
// all subscriptions.
func (w *watcher) wait(ctx context.Context) error {
	defer w.unsubscribe()

	errc := make(chan error, len(w.subs))
	for _, sub := range w.subs {
		go func(sub event.Subscription) {
			errc <- <-sub.Err()
		}(sub)
	}
	select {
	case <-ctx.Done():
		return nil
	case err := <-errc:
		return err
	}
}

func optionalAccount(e *env, args []string, i int) (*common.Address, error) {
	if len(args) <= i {
		return nil, nil
	}
	addr, err := e.account(args[i])
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func accountFlag(e *env, cmd *cobra.Command, name string) (*common.Address, error) {
	s, _ := cmd.Flags().GetString(name) // nolint: errcheck	// flag is defined on the command.
	if s == "" {
		return nil, nil
	}
	addr, err := e.account(s)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func watchTransfer(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	var f token.TransferFilter
	if f.From, err = accountFlag(e, cmd, fromF); err != nil {
		return err
	}
	if f.To, err = accountFlag(e, cmd, toF); err != nil {
		return err
	}
	w := newWatcher(cmd)
	if err = w.add(token.WatchTransfer(e.client, tok, f, watchOptions(cmd), func(ev *token.TransferEvent) {
		w.event("Transfer", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchSupply(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	opts := watchOptions(cmd)
	w := newWatcher(cmd)
	if err = w.add(token.WatchMint(e.client, tok, nil, opts, func(ev *token.MintEvent) {
		w.event("Mint", ev)
	})); err != nil {
		return err
	}
	if err = w.add(token.WatchBurn(e.client, tok, nil, opts, func(ev *token.BurnEvent) {
		w.event("Burn", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchApproval(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	var f token.ApprovalFilter
	if f.Owner, err = optionalAccount(e, args, 1); err != nil {
		return err
	}
	w := newWatcher(cmd)
	if err = w.add(token.WatchApprove(e.client, tok, f, watchOptions(cmd), func(ev *token.ApprovalEvent) {
		w.event("Approval", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchRole(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	var f token.RoleFilter
	if f.Account, err = optionalAccount(e, args, 1); err != nil {
		return err
	}
	w := newWatcher(cmd)
	if err = w.add(token.WatchRole(e.client, tok, f, watchOptions(cmd), func(ev *token.RoleMembershipEvent) {
		w.event("RoleMembershipUpdated", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchTokenCreated(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
	w := newWatcher(cmd)
	if err := w.add(token.WatchCreate(e.client, watchOptions(cmd), func(ev *token.CreateEvent) {
		w.event("TokenCreated", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchPolicy(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	var policyID *uint64
	if len(args) == 1 {
		id, err := parsePolicyID(args[0])
		if err != nil {
			return err
		}
		policyID = &id
	}
	opts := watchOptions(cmd)
	w := newWatcher(cmd)
	if policyID == nil {
		if err := w.add(policy.WatchCreate(e.client, nil, opts, func(ev *policy.CreatedEvent) {
			w.event("PolicyCreated", ev)
		})); err != nil {
			return err
		}
	}
	if err := w.add(policy.WatchAdminUpdated(e.client, policyID, opts, func(ev *policy.AdminUpdatedEvent) {
		w.event("PolicyAdminUpdated", ev)
	})); err != nil {
		return err
	}
	if err := w.add(policy.WatchWhitelistUpdated(e.client, policyID, opts, func(ev *policy.WhitelistUpdatedEvent) {
		w.event("WhitelistUpdated", ev)
	})); err != nil {
		return err
	}
	if err := w.add(policy.WatchBlacklistUpdated(e.client, policyID, opts, func(ev *policy.BlacklistUpdatedEvent) {
		w.event("BlacklistUpdated", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchFee(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	account, err := optionalAccount(e, args, 0)
	if err != nil {
		return err
	}
	opts := watchOptions(cmd)
	w := newWatcher(cmd)
	if err = w.add(fee.WatchSetUserToken(e.client, account, opts, func(ev *fee.UserTokenSetEvent) {
		w.event("UserTokenSet", ev)
	})); err != nil {
		return err
	}
	if err = w.add(fee.WatchSetValidatorToken(e.client, account, opts, func(ev *fee.ValidatorTokenSetEvent) {
		w.event("ValidatorTokenSet", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}

func watchAMM(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	var f amm.PoolFilter
	if len(args) == 1 {
		return tempo.NewInvalidArgumentError("arguments", args[0], "both tokens of the pair or none")
	}
	if len(args) == 2 {
		userToken, validatorToken, err := e.pair(args)
		if err != nil {
			return err
		}
		f = amm.PoolFilter{UserToken: &userToken, ValidatorToken: &validatorToken}
	}
	opts := watchOptions(cmd)
	w := newWatcher(cmd)
	if err := w.add(amm.WatchMint(e.client, f, opts, func(ev *amm.MintEvent) {
		w.event("Mint", ev)
	})); err != nil {
		return err
	}
	if err := w.add(amm.WatchBurn(e.client, f, opts, func(ev *amm.BurnEvent) {
		w.event("Burn", ev)
	})); err != nil {
		return err
	}
	if err := w.add(amm.WatchRebalanceSwap(e.client, f, opts, func(ev *amm.RebalanceSwapEvent) {
		w.event("RebalanceSwap", ev)
	})); err != nil {
		return err
	}
	if err := w.add(amm.WatchFeeSwap(e.client, f, opts, func(ev *amm.FeeSwapEvent) {
		w.event("FeeSwap", ev)
	})); err != nil {
		return err
	}
	return w.wait(ctx)
}
