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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/token"
)

const (
	memoF       = "memo"
	fromF       = "from"
	currencyF   = "currency"
	quoteTokenF = "quote-token"
	adminF      = "admin"
)

func (c *cli) newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Read and write TIP20 tokens",
	}
	defineAsyncFlag(tokenCmd)

	transferCmd := &cobra.Command{
		Use:   "transfer [token] [to] [amount]",
		Short: "Transfer tokens, optionally with a memo or on behalf of an approved owner",
		Args:  cobra.ExactArgs(3),
		RunE:  c.run(tokenTransfer),
	}
	transferCmd.Flags().String(memoF, "", "Memo of at most 32 bytes attached to the transfer")
	transferCmd.Flags().String(fromF, "", "Owner to transfer from, using the allowance of the account")

	mintCmd := &cobra.Command{
		Use:   "mint [token] [to] [amount]",
		Short: "Mint tokens, requires the issuer role",
		Args:  cobra.ExactArgs(3),
		RunE:  c.run(tokenMint),
	}
	mintCmd.Flags().String(memoF, "", "Memo of at most 32 bytes attached to the mint")

	burnCmd := &cobra.Command{
		Use:   "burn [token] [amount]",
		Short: "Burn tokens of the account, requires the issuer role",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run(tokenBurn),
	}
	burnCmd.Flags().String(memoF, "", "Memo of at most 32 bytes attached to the burn")

	createCmd := &cobra.Command{
		Use:   "create [name] [symbol]",
		Short: "Create a new token",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run(tokenCreate),
	}
	createCmd.Flags().String(currencyF, "USD", "Currency the token is denominated in")
	createCmd.Flags().String(quoteTokenF, "", "Quote token, defaults to PathUSD")
	createCmd.Flags().String(adminF, "", "Admin of the token, defaults to the account")

	tokenCmd.AddCommand(
		&cobra.Command{
			Use:   "balance [token] [account]",
			Short: "Print the balance of the account, or of the configured account if omitted",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  c.run(tokenBalance),
		},
		&cobra.Command{
			Use:   "allowance [token] [owner] [spender]",
			Short: "Print the amount the spender may transfer on behalf of the owner",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(tokenAllowance),
		},
		&cobra.Command{
			Use:   "info [token]",
			Short: "Print the metadata of the token",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(tokenInfo),
		},
		&cobra.Command{
			Use:   "has-role [token] [account] [role]",
			Short: "Print whether the account holds the role",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(tokenHasRole),
		},
		transferCmd,
		&cobra.Command{
			Use:   "approve [token] [spender] [amount]",
			Short: "Set the amount the spender may transfer on behalf of the account",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(tokenApprove),
		},
		mintCmd,
		burnCmd,
		&cobra.Command{
			Use:   "burn-blocked [token] [from] [amount]",
			Short: "Burn tokens of an account that is not authorized by the transfer policy",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(tokenBurnBlocked),
		},
		createCmd,
		&cobra.Command{
			Use:   "pause [token]",
			Short: "Pause all transfers of the token",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(tokenPause),
		},
		&cobra.Command{
			Use:   "unpause [token]",
			Short: "Resume transfers of the token",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(tokenUnpause),
		},
		&cobra.Command{
			Use:   "set-supply-cap [token] [amount]",
			Short: "Set the maximum total supply of the token",
			Args:  cobra.ExactArgs(2),
			RunE:  c.run(tokenSetSupplyCap),
		},
		&cobra.Command{
			Use:   "set-policy [token] [policy id]",
			Short: "Set the transfer policy of the token",
			Args:  cobra.ExactArgs(2),
			RunE:  c.run(tokenSetPolicy),
		},
		&cobra.Command{
			Use:   "grant [token] [account] [roles...]",
			Short: "Grant roles to the account, one transaction per role",
			Args:  cobra.MinimumNArgs(3),
			RunE:  c.run(tokenGrant),
		},
		&cobra.Command{
			Use:   "revoke [token] [account] [roles...]",
			Short: "Revoke roles from the account, one transaction per role",
			Args:  cobra.MinimumNArgs(3),
			RunE:  c.run(tokenRevoke),
		},
		&cobra.Command{
			Use:   "renounce [token] [roles...]",
			Short: "Renounce roles held by the account, one transaction per role",
			Args:  cobra.MinimumNArgs(2),
			RunE:  c.run(tokenRenounce),
		},
		&cobra.Command{
			Use:   "set-role-admin [token] [role] [admin role]",
			Short: "Set the role whose holders may grant and revoke the role",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(tokenSetRoleAdmin),
		},
	)
	return tokenCmd
}

func tokenBalance(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	account := e.client.Account()
	if len(args) == 2 {
		if account, err = e.account(args[1]); err != nil {
			return err
		}
	}
	bal, err := token.GetBalance(ctx, e.client, tok, account, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Balance of %s: %s\n", e.name(account), e.printAmount(ctx, tok, bal))
	return nil
}

func tokenAllowance(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	owner, err := e.account(args[1])
	if err != nil {
		return err
	}
	spender, err := e.account(args[2])
	if err != nil {
		return err
	}
	allowance, err := token.GetAllowance(ctx, e.client, tok, owner, spender, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Allowance of %s for %s: %s\n", e.name(spender), e.name(owner), e.printAmount(ctx, tok, allowance))
	return nil
}

func tokenInfo(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	m, err := token.GetMetadata(ctx, e.client, tok, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Println(prettify(m))
	return nil
}

func tokenHasRole(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	account, err := e.account(args[1])
	if err != nil {
		return err
	}
	role, err := token.ParseRole(args[2])
	if err != nil {
		return err
	}
	hasRole, err := token.HasRole(ctx, e.client, tok, account, role, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("%s holds %s: %t\n", e.name(account), args[2], hasRole)
	return nil
}

// tokenAndAmount resolves the token at args[i] and parses the amount at
// args[j] in units of the token.
func tokenAndAmount(ctx context.Context, e *env, args []string, i, j int) (common.Address, *big.Int, error) {
	tok, err := e.token(args[i])
	if err != nil {
		return common.Address{}, nil, err
	}
	amount, err := e.parseAmount(ctx, tok, args[j])
	return tok, amount, err
}

func tokenTransfer(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, amount, err := tokenAndAmount(ctx, e, args, 0, 2)
	if err != nil {
		return err
	}
	to, err := e.account(args[1])
	if err != nil {
		return err
	}
	memo, _ := cmd.Flags().GetString(memoF)  // nolint: errcheck	// flag is defined on the command.
	fromS, _ := cmd.Flags().GetString(fromF) // nolint: errcheck	// flag is defined on the command.
	p := token.TransferParams{Token: tok, To: to, Amount: amount, Memo: memo}
	if fromS != "" {
		from, err := e.account(fromS)
		if err != nil {
			return err
		}
		p.From = &from
	}

	if isAsync(cmd) {
		tx, err := token.Transfer(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.TransferSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Transferred %s from %s to %s\n", e.printAmount(ctx, tok, ev.Amount), e.name(ev.From), e.name(ev.To))
	return nil
}

func tokenApprove(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, amount, err := tokenAndAmount(ctx, e, args, 0, 2)
	if err != nil {
		return err
	}
	spender, err := e.account(args[1])
	if err != nil {
		return err
	}
	p := token.ApproveParams{Token: tok, Spender: spender, Amount: amount}
	if isAsync(cmd) {
		tx, err := token.Approve(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.ApproveSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Approved %s to spend %s\n", e.name(ev.Spender), e.printAmount(ctx, tok, ev.Amount))
	return nil
}

func tokenMint(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, amount, err := tokenAndAmount(ctx, e, args, 0, 2)
	if err != nil {
		return err
	}
	to, err := e.account(args[1])
	if err != nil {
		return err
	}
	memo, _ := cmd.Flags().GetString(memoF) // nolint: errcheck	// flag is defined on the command.
	p := token.MintParams{Token: tok, To: to, Amount: amount, Memo: memo}
	if isAsync(cmd) {
		tx, err := token.Mint(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.MintSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Minted %s to %s\n", e.printAmount(ctx, tok, ev.Amount), e.name(ev.To))
	return nil
}

func tokenBurn(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, amount, err := tokenAndAmount(ctx, e, args, 0, 1)
	if err != nil {
		return err
	}
	memo, _ := cmd.Flags().GetString(memoF) // nolint: errcheck	// flag is defined on the command.
	p := token.BurnParams{Token: tok, Amount: amount, Memo: memo}
	if isAsync(cmd) {
		tx, err := token.Burn(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.BurnSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Burned %s of %s\n", e.printAmount(ctx, tok, ev.Amount), e.name(ev.From))
	return nil
}

func tokenBurnBlocked(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, amount, err := tokenAndAmount(ctx, e, args, 0, 2)
	if err != nil {
		return err
	}
	from, err := e.account(args[1])
	if err != nil {
		return err
	}
	p := token.BurnBlockedParams{Token: tok, From: from, Amount: amount}
	if isAsync(cmd) {
		tx, err := token.BurnBlocked(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.BurnBlockedSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Burned %s of blocked account %s\n", e.printAmount(ctx, tok, ev.Amount), e.name(ev.From))
	return nil
}

func tokenCreate(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	cur, _ := cmd.Flags().GetString(currencyF)      // nolint: errcheck	// flag is defined on the command.
	quoteS, _ := cmd.Flags().GetString(quoteTokenF) // nolint: errcheck	// flag is defined on the command.
	adminS, _ := cmd.Flags().GetString(adminF)      // nolint: errcheck	// flag is defined on the command.
	p := token.CreateParams{Name: args[0], Symbol: args[1], Currency: cur}
	var err error
	if quoteS != "" {
		if p.QuoteToken, err = e.token(quoteS); err != nil {
			return err
		}
	}
	if adminS != "" {
		if p.Admin, err = e.account(adminS); err != nil {
			return err
		}
	}
	if isAsync(cmd) {
		tx, err := token.Create(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.CreateSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Created token %s (%s) with id %s at %s\n", ev.Name, ev.Symbol, ev.Id, ev.Token.Hex())
	return nil
}

func tokenPause(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	return tokenSetPaused(ctx, cmd, e, args[0], token.Pause, token.PauseSync)
}

func tokenUnpause(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	return tokenSetPaused(ctx, cmd, e, args[0], token.Unpause, token.UnpauseSync)
}

type pauseFunc func(context.Context, tempo.ChainClient, common.Address, tempo.TxOptions) (*types.Transaction, error)

type pauseSyncFunc func(context.Context, tempo.ChainClient, common.Address, tempo.TxOptions) (
	*token.PauseStateEvent, error)

func tokenSetPaused(ctx context.Context, cmd *cobra.Command, e *env, tokenS string, async pauseFunc,
	sync pauseSyncFunc) error {
	tok, err := e.token(tokenS)
	if err != nil {
		return err
	}
	if isAsync(cmd) {
		tx, err := async(ctx, e.client, tok, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := sync(ctx, e.client, tok, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Token %s paused: %t\n", e.name(tok), ev.IsPaused)
	return nil
}

func tokenSetSupplyCap(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, amount, err := tokenAndAmount(ctx, e, args, 0, 1)
	if err != nil {
		return err
	}
	p := token.SetSupplyCapParams{Token: tok, SupplyCap: amount}
	if isAsync(cmd) {
		tx, err := token.SetSupplyCap(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.SetSupplyCapSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Supply cap set to %s\n", e.printAmount(ctx, tok, ev.NewSupplyCap))
	return nil
}

func tokenSetPolicy(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	policyID, err := parsePolicyID(args[1])
	if err != nil {
		return err
	}
	p := token.ChangeTransferPolicyParams{Token: tok, PolicyID: policyID}
	if isAsync(cmd) {
		tx, err := token.ChangeTransferPolicy(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := token.ChangeTransferPolicySync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Transfer policy set to %d\n", ev.NewPolicyId)
	return nil
}

func tokenGrant(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	return tokenChangeRoles(ctx, cmd, e, args, token.GrantRoles, token.GrantRolesSync)
}

func tokenRevoke(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	return tokenChangeRoles(ctx, cmd, e, args, token.RevokeRoles, token.RevokeRolesSync)
}

type rolesFunc func(context.Context, tempo.ChainClient, token.RolesParams, tempo.TxOptions) (
	[]*types.Transaction, error)

type rolesSyncFunc func(context.Context, tempo.ChainClient, token.RolesParams, tempo.TxOptions) (
	[]*token.RoleMembershipEvent, error)

func tokenChangeRoles(ctx context.Context, cmd *cobra.Command, e *env, args []string, async rolesFunc,
	sync rolesSyncFunc) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	account, err := e.account(args[1])
	if err != nil {
		return err
	}
	p := token.RolesParams{Token: tok, Roles: args[2:], Account: account}
	if isAsync(cmd) {
		txs, err := async(ctx, e.client, p, tempo.TxOptions{})
		for _, tx := range txs {
			printTx(cmd, tx)
		}
		return err
	}
	evs, err := sync(ctx, e.client, p, tempo.TxOptions{})
	printRoleEvents(cmd, e, p.Roles, evs)
	return err
}

func tokenRenounce(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	p := token.RenounceRolesParams{Token: tok, Roles: args[1:]}
	if isAsync(cmd) {
		txs, err := token.RenounceRoles(ctx, e.client, p, tempo.TxOptions{})
		for _, tx := range txs {
			printTx(cmd, tx)
		}
		return err
	}
	evs, err := token.RenounceRolesSync(ctx, e.client, p, tempo.TxOptions{})
	printRoleEvents(cmd, e, p.Roles, evs)
	return err
}

// printRoleEvents prints the role changes that were mined, which may be
// fewer than requested if one of the transactions failed.
func printRoleEvents(cmd *cobra.Command, e *env, roles []string, evs []*token.RoleMembershipEvent) {
	for i, ev := range evs {
		cmd.Printf("Role %s of %s: %t\n", roles[i], e.name(ev.Account), ev.HasRole)
	}
}

func tokenSetRoleAdmin(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	tok, err := e.token(args[0])
	if err != nil {
		return err
	}
	p := token.SetRoleAdminParams{Token: tok, Role: args[1], AdminRole: args[2]}
	if isAsync(cmd) {
		tx, err := token.SetRoleAdmin(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	if _, err = token.SetRoleAdminSync(ctx, e.client, p, tempo.TxOptions{}); err != nil {
		return err
	}
	cmd.Printf("Admin role of %s set to %s\n", args[1], args[2])
	return nil
}
