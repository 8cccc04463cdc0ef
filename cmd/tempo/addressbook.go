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
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/addressbook"
)

func (c *cli) newAddressBookCmd() *cobra.Command {
	bookCmd := &cobra.Command{
		Use:   "addressbook",
		Short: "List and edit the aliases in the address book",
	}
	bookCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all entries",
			Args:  cobra.NoArgs,
			RunE:  c.withAddressBook(addressBookList),
		},
		&cobra.Command{
			Use:   "add [alias] [token|account] [address]",
			Short: "Add an alias for the address",
			Args:  cobra.ExactArgs(3),
			RunE:  c.withAddressBook(addressBookAdd),
		},
		&cobra.Command{
			Use:   "remove [alias]",
			Short: "Remove the alias",
			Args:  cobra.ExactArgs(1),
			RunE:  c.withAddressBook(addressBookRemove),
		},
	)
	return bookCmd
}

// withAddressBook loads the address book configured for the command
// without connecting to the chain.
func (c *cli) withAddressBook(h func(*cobra.Command, tempo.AddressBook, []string) error) func(
	*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := parseClientConfig(cmd.Flags(), c.cfgViper)
		if err != nil {
			return err
		}
		if cfg.AddressBook == "" {
			return errors.New("address book file is not configured")
		}
		b, err := addressbook.New(cfg.AddressBook)
		if err != nil {
			return err
		}
		return h(cmd, b, args)
	}
}

func addressBookList(cmd *cobra.Command, b tempo.AddressBook, _ []string) error {
	for _, e := range b.Entries() {
		cmd.Printf("%-20s %-8s %s\n", e.Alias, e.Kind, e.AddressString)
	}
	return nil
}

func addressBookAdd(cmd *cobra.Command, b tempo.AddressBook, args []string) error {
	e := tempo.Entry{Kind: tempo.EntryKind(args[1]), AddressString: args[2]}
	if err := b.Write(args[0], e); err != nil {
		return err
	}
	if err := b.UpdateStorage(); err != nil {
		return err
	}
	cmd.Printf("Added %s\n", args[0])
	return nil
}

func addressBookRemove(cmd *cobra.Command, b tempo.AddressBook, args []string) error {
	if err := b.Delete(args[0]); err != nil {
		return err
	}
	if err := b.UpdateStorage(); err != nil {
		return err
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}
