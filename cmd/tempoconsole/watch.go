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
	"sort"
	"sync"

	"github.com/abiosoft/ishell"
	"github.com/ethereum/go-ethereum/event"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/amm"
	"github.com/tempo-labs/tempo-actions/fee"
	"github.com/tempo-labs/tempo-actions/token"
)

var (
	// Active subscriptions, indexed by alias. Aliases are of the form
	// "<kind>-<counter>".
	subs       = make(map[string]event.Subscription)
	subCounter = 0
	subsMtx    sync.Mutex

	watchCmdUsage = "Usage: watch [sub-command]"
	watchCmd      = &ishell.Cmd{
		Name: "watch",
		Help: "Use this command to subscribe to events. Events are printed as they arrive." + watchCmdUsage,
		Func: watchFn,
	}

	watchTransferCmdUsage = "Usage: watch transfer [token]"
	watchTransferCmd      = &ishell.Cmd{
		Name:      "transfer",
		Help:      "Subscribe to the transfers of the token." + watchTransferCmdUsage,
		Completer: completeAliases(tempo.KindToken),
		Func:      watchTransferFn,
	}

	watchFeeCmdUsage = "Usage: watch fee"
	watchFeeCmd      = &ishell.Cmd{
		Name: "fee",
		Help: "Subscribe to fee token changes of all users." + watchFeeCmdUsage,
		Func: watchFeeFn,
	}

	watchAMMCmdUsage = "Usage: watch amm"
	watchAMMCmd      = &ishell.Cmd{
		Name: "amm",
		Help: "Subscribe to the fee swaps of all pools." + watchAMMCmdUsage,
		Func: watchAMMFn,
	}

	watchListCmdUsage = "Usage: watch list"
	watchListCmd      = &ishell.Cmd{
		Name: "list",
		Help: "List the active subscriptions." + watchListCmdUsage,
		Func: watchListFn,
	}

	watchStopCmdUsage = "Usage: watch stop [subscription alias]"
	watchStopCmd      = &ishell.Cmd{
		Name: "stop",
		Help: "Stop the subscription. Use tab completion to cycle through active subscriptions." +
			watchStopCmdUsage,
		Completer: func([]string) []string {
			return subAliases()
		},
		Func: watchStopFn,
	}
)

func init() {
	watchCmd.AddCmd(watchTransferCmd)
	watchCmd.AddCmd(watchFeeCmd)
	watchCmd.AddCmd(watchAMMCmd)
	watchCmd.AddCmd(watchListCmd)
	watchCmd.AddCmd(watchStopCmd)
}

func watchFn(c *ishell.Context) {
	c.Println(c.Cmd.HelpText())
}

func watchTransferFn(c *ishell.Context) {
	if !checkArgs(c, 1) {
		return
	}
	tok, err := resolveToken(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}

	sub, err := token.WatchTransfer(client, tok, token.TransferFilter{}, tempo.WatchOptions{},
		func(ev *token.TransferEvent) {
			sh.Printf("%s\n\n", greenf("Transfer of %s: %s", name(tok), prettify(ev)))
		})
	addSub(c, "transfer", sub, err)
}

func watchFeeFn(c *ishell.Context) {
	if !checkArgs(c, 0) {
		return
	}

	sub, err := fee.WatchSetUserToken(client, nil, tempo.WatchOptions{}, func(ev *fee.UserTokenSetEvent) {
		sh.Printf("%s\n\n", greenf("Fee token of %s set to %s", name(ev.User), name(ev.Token)))
	})
	addSub(c, "fee", sub, err)
}

func watchAMMFn(c *ishell.Context) {
	if !checkArgs(c, 0) {
		return
	}

	sub, err := amm.WatchFeeSwap(client, amm.PoolFilter{}, tempo.WatchOptions{}, func(ev *amm.FeeSwapEvent) {
		sh.Printf("%s\n\n", greenf("Fee swap: %s", prettify(ev)))
	})
	addSub(c, "amm", sub, err)
}

// addSub registers the subscription under a new alias and starts a
// handler reporting its termination.
func addSub(c *ishell.Context, kind string, sub event.Subscription, err error) {
	if err != nil {
		printCommandError(c, err)
		return
	}

	subsMtx.Lock()
	subCounter++
	alias := fmt.Sprintf("%s-%d", kind, subCounter)
	subs[alias] = sub
	subsMtx.Unlock()

	go subErrHandler(alias, sub)
	c.Printf("%s\n\n", greenf("Subscribed as %s.", alias))
}

func subErrHandler(alias string, sub event.Subscription) {
	err, ok := <-sub.Err()
	subsMtx.Lock()
	delete(subs, alias)
	subsMtx.Unlock()
	if !ok {
		return // Unsubscribed.
	}
	sh.Printf("%s\n\n", redf("Subscription %s closed: %v.", alias, err))
}

func watchListFn(c *ishell.Context) {
	if len(c.Args) != 0 {
		printArgCountError(c, 0)
		return
	}
	aliases := subAliases()
	if len(aliases) == 0 {
		c.Printf("No active subscriptions.\n\n")
		return
	}
	c.Printf("%s\n\n", greenf("Active subscriptions:\n%v", aliases))
}

func watchStopFn(c *ishell.Context) {
	if len(c.Args) != 1 {
		printArgCountError(c, 1)
		return
	}
	subsMtx.Lock()
	sub, ok := subs[c.Args[0]]
	subsMtx.Unlock()
	if !ok {
		c.Printf("%s\n\n", redf("Unknown subscription alias %s.", c.Args[0]))
		c.Printf("%s\n\n", redf("Known subscription aliases:\n%v", subAliases()))
		return
	}
	sub.Unsubscribe()
	c.Printf("%s\n\n", greenf("Stopped %s.", c.Args[0]))
}

func subAliases() []string {
	subsMtx.Lock()
	defer subsMtx.Unlock()
	aliases := make([]string, 0, len(subs))
	for alias := range subs {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

func unsubscribeAll() {
	subsMtx.Lock()
	all := make([]event.Subscription, 0, len(subs))
	for _, sub := range subs {
		all = append(all, sub)
	}
	subsMtx.Unlock()
	for _, sub := range all {
		sub.Unsubscribe()
	}
}
