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

	"github.com/abiosoft/ishell"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/fee"
)

var (
	feeCmdUsage = "Usage: fee [sub-command]"
	feeCmd      = &ishell.Cmd{
		Name: "fee",
		Help: "Use this command to read and set the fee token." + feeCmdUsage,
		Func: feeFn,
	}

	feeTokenCmdUsage = "Usage: fee token [account]"
	feeTokenCmd      = &ishell.Cmd{
		Name:      "token",
		Help:      "Print the fee token of the account." + feeTokenCmdUsage,
		Completer: completeAliases(tempo.KindAccount),
		Func:      feeTokenFn,
	}

	feeSetTokenCmdUsage = "Usage: fee set-token [token]"
	feeSetTokenCmd      = &ishell.Cmd{
		Name:      "set-token",
		Help:      "Set the fee token of the connected account." + feeSetTokenCmdUsage,
		Completer: completeAliases(tempo.KindToken),
		Func:      feeSetTokenFn,
	}
)

func init() {
	feeCmd.AddCmd(feeTokenCmd)
	feeCmd.AddCmd(feeSetTokenCmd)
}

func feeFn(c *ishell.Context) {
	c.Println(c.Cmd.HelpText())
}

func feeTokenFn(c *ishell.Context) {
	if !checkArgs(c, 1) {
		return
	}
	account, err := resolveAccount(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}

	tok, isSet, err := fee.GetUserToken(context.Background(), client, account, tempo.CallOptions{})
	if err != nil {
		printCommandError(c, err)
		return
	}
	if !isSet {
		c.Printf("%s\n\n", greenf("Fee token of %s: not set", name(account)))
		return
	}
	c.Printf("%s\n\n", greenf("Fee token of %s: %s", name(account), name(tok)))
}

func feeSetTokenFn(c *ishell.Context) {
	if !checkArgs(c, 1) {
		return
	}
	tok, err := resolveToken(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}

	ev, err := fee.SetUserTokenSync(context.Background(), client, tok, tempo.TxOptions{})
	if err != nil {
		printCommandError(c, err)
		return
	}
	c.Printf("%s\n\n", greenf("Fee token of %s set to %s.", name(ev.User), name(ev.Token)))
}
