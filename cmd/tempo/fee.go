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

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/fee"
)

func (c *cli) newFeeCmd() *cobra.Command {
	feeCmd := &cobra.Command{
		Use:   "fee",
		Short: "Read and set the fee tokens of users and validators",
	}
	defineAsyncFlag(feeCmd)

	feeCmd.AddCommand(
		&cobra.Command{
			Use:   "user-token [account]",
			Short: "Print the fee token of the account, or of the configured account if omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.run(feeUserToken),
		},
		&cobra.Command{
			Use:   "validator-token [validator]",
			Short: "Print the fee token of the validator",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(feeValidatorToken),
		},
		&cobra.Command{
			Use:   "set-user-token [token]",
			Short: "Set the token the account pays fees in",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(feeSetUserToken),
		},
		&cobra.Command{
			Use:   "set-validator-token [token]",
			Short: "Set the token the account receives fees in as validator",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(feeSetValidatorToken),
		},
	)
	return feeCmd
}

func (e *env) printFeeToken(cmd *cobra.Command, account, tok common.Address, ok bool) {
	if !ok {
		cmd.Printf("Fee token of %s: not set\n", e.name(account))
		return
	}
	cmd.Printf("Fee token of %s: %s\n", e.name(account), e.name(tok))
}

func feeUserToken(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	account := e.client.Account()
	var err error
	if len(args) == 1 {
		if account, err = e.account(args[0]); err != nil {
			return err
		}
	}
	tok, ok, err := fee.GetUserToken(ctx, e.client, account, tempo.CallOptions{})
	if err != nil {
		return err
	}
	e.printFeeToken(cmd, account, tok, ok)
	return nil
}

func feeValidatorToken(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	validator, err := e.account(args[0])
	if err != nil {
		return err
	}
	tok, ok, err := fee.GetValidatorToken(ctx, e.client, validator, tempo.CallOptions{})
	if err != nil {
		return err
	}
	e.printFeeToken(cmd, validator, tok, ok)
	return nil
}

func feeSetUserToken(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	if isAsync(cmd) {
		tx, err := fee.SetUserToken(ctx, e.client, tok, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := fee.SetUserTokenSync(ctx, e.client, tok, tempo.TxOptions{})
	if err != nil {
		return err
	}
	e.printFeeToken(cmd, ev.User, ev.Token, true)
	return nil
}

func feeSetValidatorToken(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	if isAsync(cmd) {
		tx, err := fee.SetValidatorToken(ctx, e.client, tok, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := fee.SetValidatorTokenSync(ctx, e.client, tok, tempo.TxOptions{})
	if err != nil {
		return err
	}
	e.printFeeToken(cmd, ev.Validator, ev.Token, true)
	return nil
}
