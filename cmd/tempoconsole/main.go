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
	"github.com/fatih/color"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/chain"
	"github.com/tempo-labs/tempo-actions/currency"
)

var (
	// File that stores history of commands used in the interactive shell.
	// It is located in the home directory and preserved across runs.
	historyFile = ".tempoconsole_history"

	// Singleton instance of ishell that is used throughout this program.
	// It is initialized in main() and accessed by the event handlers to
	// print the received events.
	sh *ishell.Shell

	// Client of the connected chain. It is set by 'chain connect' and safe
	// for concurrent use.
	client *chain.Client

	// Address book of the connected configuration. Nil if none is
	// configured.
	book tempo.AddressBook

	// Currencies of the tokens used in this session, loaded on first use.
	currencies = currency.NewRegistry()

	// SPrintf style functions that produce colored text.
	redf   = color.New(color.FgRed).SprintfFunc()
	greenf = color.New(color.FgGreen).SprintfFunc()
)

func main() {
	// New shell includes help, clear, exit commands by default.
	sh = ishell.New()

	// Read and write history to $HOME/historyFile
	sh.SetHomeHistoryPath(historyFile)

	sh.AddCmd(chainCmd)
	sh.AddCmd(tokenCmd)
	sh.AddCmd(feeCmd)
	sh.AddCmd(watchCmd)

	sh.Printf("Tempo console.\n\n")
	sh.Printf("%s\n\n", greenf("Connect to a chain using 'chain connect' before sending any command."))

	sh.Run()
	unsubscribeAll()
	if client != nil {
		client.Close()
	}
}

// printNotConnectedError is a helper function to print error message that is used across mutiple commands.
func printNotConnectedError(c ishell.Actions) {
	c.Printf("%s\n\n", redf("Not connected to a chain, connect using 'chain connect' command."))
}

// printArgCountError is a helper function to print error message that is used across mutiple commands.
func printArgCountError(c *ishell.Context, reqArgCount int) {
	c.Printf("%s\n\n", redf("Got %d arg(s). Want %d.", len(c.Args), reqArgCount))
	c.Printf("Command help:\t%s\n\n", c.Cmd.Help)
}

// printCommandError is a helper function to print error message that is used across mutiple commands.
func printCommandError(c ishell.Actions, err error) {
	c.Printf("%s\n\n", redf("Error: %v.", err))
}

// checkArgs prints an error and returns false if the client is not
// connected or the arg count does not match.
func checkArgs(c *ishell.Context, reqArgCount int) bool {
	if client == nil {
		printNotConnectedError(c)
		return false
	}
	if len(c.Args) != reqArgCount {
		printArgCountError(c, reqArgCount)
		return false
	}
	return true
}
