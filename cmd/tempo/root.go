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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(connect).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli holds the state shared by all commands of one command tree.
type cli struct {
	cfgViper *viper.Viper
	connect  connectFunc
}

// newRootCmd builds the command tree. All commands that talk to the chain
// obtain their environment from connect.
func newRootCmd(connect connectFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tempo",
		Short: "Read, write and watch the Tempo precompile contracts.",
		Long: `
Read, write and watch the Tempo precompile contracts: TIP20 tokens, the TIP403
policy registry, the fee manager and the fee AMM.

Configuration can be specified in the config file or via flags. Values in the
flags override that in the config file. Addresses can be given as hex strings
or as aliases from the address book. Token amounts are given in decimal
notation using the decimals of the token.`,
		SilenceUsage: true,
	}
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})

	c := &cli{cfgViper: viper.New(), connect: connect}
	defineConfigFlags(rootCmd.PersistentFlags())
	bindConfigFlags(c.cfgViper, rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		c.newTokenCmd(),
		c.newPolicyCmd(),
		c.newFeeCmd(),
		c.newAMMCmd(),
		c.newWatchCmd(),
		c.newAddressBookCmd(),
		newGenerateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
