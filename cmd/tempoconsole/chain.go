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
	"github.com/abiosoft/ishell"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/addressbook"
	"github.com/tempo-labs/tempo-actions/chain"
	"github.com/tempo-labs/tempo-actions/log"
)

var (
	chainCmdUsage = "Usage: chain [sub-command]"
	chainCmd      = &ishell.Cmd{
		Name: "chain",
		Help: "Use this command to connect to a chain and inspect the connection." + chainCmdUsage,
		Func: chainFn,
	}

	chainConnectCmdUsage = "Usage: chain connect [config file]"
	chainConnectCmd      = &ishell.Cmd{
		Name: "connect",
		Help: "Connect to the chain using the config file generated by 'tempo generate'. " +
			"Use tab completion to cycle through default values." + chainConnectCmdUsage,
		Completer: func([]string) []string {
			return []string{"tempo.yaml"} // Provide default values as autocompletion.
		},
		Func: chainConnectFn,
	}

	chainInfoCmdUsage = "Usage: chain info"
	chainInfoCmd      = &ishell.Cmd{
		Name: "info",
		Help: "Print chain id and account of the connection." + chainInfoCmdUsage,
		Func: chainInfoFn,
	}
)

func init() {
	chainCmd.AddCmd(chainConnectCmd)
	chainCmd.AddCmd(chainInfoCmd)
}

func chainFn(c *ishell.Context) {
	c.Println(c.Cmd.HelpText())
}

func chainConnectFn(c *ishell.Context) {
	countReqArgs := 1
	if len(c.Args) != countReqArgs {
		printArgCountError(c, countReqArgs)
		return
	}

	cfg, err := readConfig(c.Args[0])
	if err != nil {
		printCommandError(c, err)
		return
	}
	if err = log.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		printCommandError(c, errors.WithMessage(err, "initializing logger"))
		return
	}
	var newBook tempo.AddressBook
	if cfg.AddressBook != "" {
		if newBook, err = addressbook.New(cfg.AddressBook); err != nil {
			printCommandError(c, err)
			return
		}
	}
	newClient, err := chain.Dial(cfg)
	if err != nil {
		printCommandError(c, err)
		return
	}

	unsubscribeAll()
	if client != nil {
		client.Close()
	}
	client, book = newClient, newBook
	c.Printf("%s\n\n", greenf("Connected to %s with chain id %s.", cfg.ChainURL, client.ChainID()))
}

// readConfig reads the client config from the file. Keys match the flags
// of the tempo command.
func readConfig(path string) (tempo.ClientConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	var cfg tempo.ClientConfig
	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	return cfg, errors.Wrap(v.Unmarshal(&cfg), "parsing config file")
}

func chainInfoFn(c *ishell.Context) {
	if !checkArgs(c, 0) {
		return
	}

	account := "none (read only)"
	if client.Account() != (common.Address{}) {
		account = name(client.Account())
	}
	c.Printf("%s\n\n", greenf("Chain id: %s\nAccount: %s\nTx timeout: %v",
		client.ChainID(), account, client.TxTimeout()))
}

// name returns the alias of the address if it is in the address book and
// the hex address otherwise.
func name(addr common.Address) string {
	if book != nil {
		if e, ok := book.ReadByAddress(addr); ok {
			return e.Alias
		}
	}
	return addr.Hex()
}

func resolveToken(s string) (common.Address, error) {
	return addressbook.Resolve(bookReader(), s, tempo.KindToken)
}

func resolveAccount(s string) (common.Address, error) {
	return addressbook.Resolve(bookReader(), s, tempo.KindAccount)
}

func bookReader() tempo.AddressBookReader {
	if book == nil {
		return nil
	}
	return book
}

// completeAliases provides the aliases of the given kind for tab
// completion.
func completeAliases(kind tempo.EntryKind) func([]string) []string {
	return func([]string) []string {
		if book == nil {
			return nil
		}
		var aliases []string
		for _, e := range book.Entries() {
			if e.Kind == kind {
				aliases = append(aliases, e.Alias)
			}
		}
		return aliases
	}
}
