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
	"math/big"

	"github.com/abiosoft/ishell"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/token"
)

var (
	tokenCmdUsage = "Usage: token [sub-command]"
	tokenCmd      = &ishell.Cmd{
		Name: "token",
		Help: "Use this command to read and transfer TIP20 tokens." + tokenCmdUsage,
		Func: tokenFn,
	}

	tokenBalanceCmdUsage = "Usage: token balance [token] [account]"
	tokenBalanceCmd      = &ishell.Cmd{
		Name:      "balance",
		Help:      "Print the balance of the account. Use tab completion to cycle through tokens." + tokenBalanceCmdUsage,
		Completer: completeAliases(tempo.KindToken),
		Func:      tokenBalanceFn,
	}

	tokenTransferCmdUsage = "Usage: token transfer [token] [to] [amount]"
	tokenTransferCmd      = &ishell.Cmd{
		Name:      "transfer",
		Help:      "Transfer tokens from the connected account and wait until it is mined." + tokenTransferCmdUsage,
		Completer: completeAliases(tempo.KindToken),
		Func:      tokenTransferFn,
	}

	tokenInfoCmdUsage = "Usage: token info [token]"
	tokenInfoCmd      = &ishell.Cmd{
		Name:      "info",
		Help:      "Print the metadata of the token." + tokenInfoCmdUsage,
		Completer: completeAliases(tempo.KindToken),
		Func:      tokenInfoFn,
	}
)

func init() {
	tokenCmd.AddCmd(tokenBalanceCmd)
	tokenCmd.AddCmd(tokenTransferCmd)
	tokenCmd.AddCmd(tokenInfoCmd)
}

func tokenFn(c *ishell.Context) {
	c.Println(c.Cmd.HelpText())
}

func tokenBalanceFn(c *ishell.Context) {
	if !checkArgs(c, 2) {
		return
	}
	tok, err := resolveToken(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}
	account, err := resolveAccount(c.Args[1])
	if err != nil {
		printCommandError(c, err)
		return
	}

	ctx := context.Background()
	bal, err := token.GetBalance(ctx, client, tok, account, tempo.CallOptions{})
	if err != nil {
		printCommandError(c, err)
		return
	}
	c.Printf("%s\n\n", greenf("Balance of %s: %s", name(account), printAmount(ctx, tok, bal)))
}

func tokenTransferFn(c *ishell.Context) {
	if !checkArgs(c, 3) {
		return
	}
	tok, err := resolveToken(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}
	to, err := resolveAccount(c.Args[1])
	if err != nil {
		printCommandError(c, err)
		return
	}

	ctx := context.Background()
	cur, err := currencies.Load(ctx, client, tok)
	if err != nil {
		printCommandError(c, err)
		return
	}
	amount, err := cur.Parse(c.Args[2])
	if err != nil {
		printCommandError(c, err)
		return
	}

	c.Printf("Sending transfer, waiting until it is mined...\n")
	ev, err := token.TransferSync(ctx, client, token.TransferParams{Token: tok, To: to, Amount: amount},
		tempo.TxOptions{})
	if err != nil {
		printCommandError(c, err)
		return
	}
	c.Printf("%s\n\n", greenf("Transferred %s to %s in tx %s.", printAmount(ctx, tok, ev.Amount), name(ev.To),
		ev.Raw.TxHash.Hex()))
}

func tokenInfoFn(c *ishell.Context) {
	if !checkArgs(c, 1) {
		return
	}
	tok, err := resolveToken(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}

	m, err := token.GetMetadata(context.Background(), client, tok, tempo.CallOptions{})
	if err != nil {
		printCommandError(c, err)
		return
	}
	c.Printf("%s\n\n", greenf("Token %s:\n%v", name(tok), prettify(m)))
}

// printAmount formats the amount in the currency of the token, falling back
// to base units if the token cannot be read.
func printAmount(ctx context.Context, tok common.Address, amount *big.Int) string {
	cur, err := currencies.Load(ctx, client, tok)
	if err != nil {
		return amount.String()
	}
	return cur.Print(amount) + " " + cur.Symbol()
}
