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
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/amm"
)

const (
	toF         = "to"
	userAmountF = "user-amount"
)

func (c *cli) newAMMCmd() *cobra.Command {
	ammCmd := &cobra.Command{
		Use:   "amm",
		Short: "Read and write the pools of the fee AMM",
		Long: `
Read and write the pools of the fee AMM. Pools are identified by the pair of
user token and validator token. Liquidity is given in base units.`,
	}
	defineAsyncFlag(ammCmd)
	ammCmd.PersistentFlags().String(toF, "", "Recipient of minted liquidity or paid out tokens, defaults to the account")

	mintCmd := &cobra.Command{
		Use:   "mint [user token] [validator token] [validator token amount]",
		Short: "Add liquidity to the pool",
		Args:  cobra.ExactArgs(3),
		RunE:  c.run(ammMint),
	}
	mintCmd.Flags().String(userAmountF, "", "Amount of user tokens deposited together with the validator tokens")

	ammCmd.AddCommand(
		&cobra.Command{
			Use:   "pool [user token] [validator token]",
			Short: "Print the reserves and total liquidity of the pool",
			Args:  cobra.ExactArgs(2),
			RunE:  c.run(ammPool),
		},
		&cobra.Command{
			Use:   "liquidity [user token] [validator token] [account]",
			Short: "Print the liquidity the account, or the configured account if omitted, holds in the pool",
			Args:  cobra.RangeArgs(2, 3),
			RunE:  c.run(ammLiquidity),
		},
		mintCmd,
		&cobra.Command{
			Use:   "burn [user token] [validator token] [liquidity]",
			Short: "Remove liquidity from the pool",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(ammBurn),
		},
		&cobra.Command{
			Use:   "rebalance-swap [user token] [validator token] [user token amount]",
			Short: "Buy user tokens from the pool with validator tokens",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(ammRebalanceSwap),
		},
	)
	return ammCmd
}

func (e *env) pair(args []string) (userToken, validatorToken common.Address, err error) {
	if userToken, err = e.token(args[0]); err != nil {
		return common.Address{}, common.Address{}, err
	}
	validatorToken, err = e.token(args[1])
	return userToken, validatorToken, err
}

// recipient returns the account given by the to flag or the configured
// account.
func (e *env) recipient(cmd *cobra.Command) (common.Address, error) {
	to, _ := cmd.Flags().GetString(toF) // nolint: errcheck	// flag is defined on the command.
	if to == "" {
		return e.client.Account(), nil
	}
	return e.account(to)
}

func ammPool(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	userToken, validatorToken, err := e.pair(args)
	if err != nil {
		return err
	}
	pool, err := amm.GetPool(ctx, e.client, userToken, validatorToken, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Pool %s\n", hexutil.Encode(pool.ID[:]))
	cmd.Printf("  Reserve user token:      %s\n", e.printAmount(ctx, userToken, pool.ReserveUserToken))
	cmd.Printf("  Reserve validator token: %s\n", e.printAmount(ctx, validatorToken, pool.ReserveValidatorToken))
	cmd.Printf("  Total liquidity:         %s\n", pool.TotalSupply)
	return nil
}

func ammLiquidity(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	userToken, validatorToken, err := e.pair(args)
	if err != nil {
		return err
	}
	account := e.client.Account()
	if len(args) == 3 {
		if account, err = e.account(args[2]); err != nil {
			return err
		}
	}
	ref := amm.PoolRef{UserToken: userToken, ValidatorToken: validatorToken}
	liquidity, err := amm.GetLiquidityBalance(ctx, e.client, ref, account, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Liquidity of %s: %s\n", e.name(account), liquidity)
	return nil
}

func ammMint(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	userToken, validatorToken, err := e.pair(args)
	if err != nil {
		return err
	}
	p := amm.MintParams{
		UserToken:      amm.TokenAmount{Address: userToken},
		ValidatorToken: amm.TokenAmount{Address: validatorToken},
	}
	if p.ValidatorToken.Amount, err = e.parseAmount(ctx, validatorToken, args[2]); err != nil {
		return err
	}
	userAmount, _ := cmd.Flags().GetString(userAmountF) // nolint: errcheck	// flag is defined on the command.
	if userAmount != "" {
		if p.UserToken.Amount, err = e.parseAmount(ctx, userToken, userAmount); err != nil {
			return err
		}
	}
	if p.To, err = e.recipient(cmd); err != nil {
		return err
	}

	if isAsync(cmd) {
		tx, err := amm.Mint(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := amm.MintSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Minted %s liquidity\n", ev.Liquidity)
	return nil
}

func ammBurn(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	userToken, validatorToken, err := e.pair(args)
	if err != nil {
		return err
	}
	p := amm.BurnParams{UserToken: userToken, ValidatorToken: validatorToken}
	if p.Liquidity, err = parseUint("liquidity", args[2]); err != nil {
		return err
	}
	if p.To, err = e.recipient(cmd); err != nil {
		return err
	}

	if isAsync(cmd) {
		tx, err := amm.Burn(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := amm.BurnSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Burned %s liquidity for %s and %s\n", ev.Liquidity,
		e.printAmount(ctx, userToken, ev.AmountUserToken), e.printAmount(ctx, validatorToken, ev.AmountValidatorToken))
	return nil
}

func ammRebalanceSwap(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	userToken, validatorToken, err := e.pair(args)
	if err != nil {
		return err
	}
	p := amm.RebalanceSwapParams{UserToken: userToken, ValidatorToken: validatorToken}
	if p.AmountOut, err = e.parseAmount(ctx, userToken, args[2]); err != nil {
		return err
	}
	if p.To, err = e.recipient(cmd); err != nil {
		return err
	}

	if isAsync(cmd) {
		tx, err := amm.RebalanceSwap(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := amm.RebalanceSwapSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Swapped %s for %s\n", e.printAmount(ctx, validatorToken, ev.AmountIn),
		e.printAmount(ctx, userToken, ev.AmountOut))
	return nil
}
