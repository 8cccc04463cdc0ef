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
	"github.com/tempo-labs/tempo-actions/policy"
)

func (c *cli) newPolicyCmd() *cobra.Command {
	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "Read and write TIP403 transfer policies",
	}
	defineAsyncFlag(policyCmd)

	createCmd := &cobra.Command{
		Use:   "create [whitelist|blacklist] [accounts...]",
		Short: "Create a policy with the given initial members",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.run(policyCreate),
	}
	createCmd.Flags().String(adminF, "", "Admin of the policy, defaults to the account")

	policyCmd.AddCommand(
		&cobra.Command{
			Use:   "info [policy id]",
			Short: "Print the type and admin of the policy",
			Args:  cobra.ExactArgs(1),
			RunE:  c.run(policyInfo),
		},
		&cobra.Command{
			Use:   "counter",
			Short: "Print the id the next created policy will get",
			Args:  cobra.NoArgs,
			RunE:  c.run(policyCounter),
		},
		&cobra.Command{
			Use:   "authorized [policy id] [account]",
			Short: "Print whether the policy authorizes the account",
			Args:  cobra.ExactArgs(2),
			RunE:  c.run(policyAuthorized),
		},
		createCmd,
		&cobra.Command{
			Use:   "set-admin [policy id] [admin]",
			Short: "Hand the policy over to a new admin",
			Args:  cobra.ExactArgs(2),
			RunE:  c.run(policySetAdmin),
		},
		&cobra.Command{
			Use:   "whitelist [policy id] [account] [true|false]",
			Short: "Add the account to or remove it from a whitelist",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(policyModifyWhitelist),
		},
		&cobra.Command{
			Use:   "blacklist [policy id] [account] [true|false]",
			Short: "Add the account to or remove it from a blacklist",
			Args:  cobra.ExactArgs(3),
			RunE:  c.run(policyModifyBlacklist),
		},
	)
	return policyCmd
}

func policyInfo(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	policyID, err := parsePolicyID(args[0])
	if err != nil {
		return err
	}
	data, err := policy.GetData(ctx, e.client, policyID, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Policy %d: %s administered by %s\n", policyID, data.Type, e.name(data.Admin))
	return nil
}

func policyCounter(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
	counter, err := policy.GetCounter(ctx, e.client, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Next policy id: %d\n", counter)
	return nil
}

func policyAuthorized(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	policyID, err := parsePolicyID(args[0])
	if err != nil {
		return err
	}
	account, err := e.account(args[1])
	if err != nil {
		return err
	}
	authorized, err := policy.IsAuthorized(ctx, e.client, policyID, account, tempo.CallOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("%s authorized by policy %d: %t\n", e.name(account), policyID, authorized)
	return nil
}

func policyCreate(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	typ, err := policy.ParseType(args[0])
	if err != nil {
		return err
	}
	p := policy.CreateParams{Type: typ, Addresses: make([]common.Address, len(args)-1)}
	for i := range p.Addresses {
		if p.Addresses[i], err = e.account(args[i+1]); err != nil {
			return err
		}
	}
	adminS, _ := cmd.Flags().GetString(adminF) // nolint: errcheck	// flag is defined on the command.
	if adminS != "" {
		if p.Admin, err = e.account(adminS); err != nil {
			return err
		}
	}

	if isAsync(cmd) {
		tx, err := policy.Create(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := policy.CreateSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Created %s policy with id %d\n", ev.Type(), ev.PolicyId)
	return nil
}

func policySetAdmin(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	policyID, err := parsePolicyID(args[0])
	if err != nil {
		return err
	}
	admin, err := e.account(args[1])
	if err != nil {
		return err
	}
	p := policy.SetAdminParams{PolicyID: policyID, Admin: admin}
	if isAsync(cmd) {
		tx, err := policy.SetAdmin(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := policy.SetAdminSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("Admin of policy %d set to %s\n", ev.PolicyId, e.name(ev.Admin))
	return nil
}

// membership parses the policy id, account and flag of the whitelist and
// blacklist commands.
func membership(e *env, args []string) (uint64, common.Address, bool, error) {
	policyID, err := parsePolicyID(args[0])
	if err != nil {
		return 0, common.Address{}, false, err
	}
	account, err := e.account(args[1])
	if err != nil {
		return 0, common.Address{}, false, err
	}
	member, err := parseBool("member", args[2])
	return policyID, account, member, err
}

func policyModifyWhitelist(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	policyID, account, allowed, err := membership(e, args)
	if err != nil {
		return err
	}
	p := policy.ModifyWhitelistParams{PolicyID: policyID, Account: account, Allowed: allowed}
	if isAsync(cmd) {
		tx, err := policy.ModifyWhitelist(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := policy.ModifyWhitelistSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("%s whitelisted in policy %d: %t\n", e.name(ev.Account), ev.PolicyId, ev.Allowed)
	return nil
}

func policyModifyBlacklist(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	policyID, account, restricted, err := membership(e, args)
	if err != nil {
		return err
	}
	p := policy.ModifyBlacklistParams{PolicyID: policyID, Account: account, Restricted: restricted}
	if isAsync(cmd) {
		tx, err := policy.ModifyBlacklist(ctx, e.client, p, tempo.TxOptions{})
		if err != nil {
			return err
		}
		printTx(cmd, tx)
		return nil
	}
	ev, err := policy.ModifyBlacklistSync(ctx, e.client, p, tempo.TxOptions{})
	if err != nil {
		return err
	}
	cmd.Printf("%s blacklisted in policy %d: %t\n", e.name(ev.Account), ev.PolicyId, ev.Restricted)
	return nil
}
