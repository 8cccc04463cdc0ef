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
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tempo-labs/tempo-actions"
	"github.com/tempo-labs/tempo-actions/addressbook"
	"github.com/tempo-labs/tempo-actions/chain"
	"github.com/tempo-labs/tempo-actions/contracts"
)

const (
	keystoreDir     = "keystore"
	addressBookFile = "addressbook.yaml"
	dirF            = "dir"
	accountAlias    = "me"
	pathUSDAlias    = "pathusd"
	defaultChainURL = "http://127.0.0.1:8545"

	dirFileMode = os.FileMode(0o750)
)

// scryptParams used for encrypting the generated key.
var scryptParams = chain.StandardScryptParams()

// fileConfig is the layout of the config file. Keys match the flag names.
type fileConfig struct {
	LogLevel    string        `yaml:"loglevel"`
	LogFile     string        `yaml:"logfile"`
	ChainURL    string        `yaml:"chainurl"`
	WSURL       string        `yaml:"wsurl"`
	ChainID     int64         `yaml:"chainid"`
	ConnTimeout time.Duration `yaml:"conntimeout"`
	TxTimeout   time.Duration `yaml:"txtimeout"`
	Keystore    string        `yaml:"keystore"`
	Account     string        `yaml:"account"`
	Password    string        `yaml:"password"`
	AddressBook string        `yaml:"addressbook"`
}

func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a config file, a keystore with a new account and an address book",
		Long: `
Generate the artifacts for using tempo:

- tempo.yaml config file.
- keystore directory with a newly generated account, encrypted with the
  password given by the password flag.
- addressbook.yaml with aliases for the new account and PathUSD.

The chain url and chain id flags are copied into the config file.`,
		Args: cobra.NoArgs,
		RunE: generate,
	}
	generateCmd.Flags().String(dirF, ".", "Directory to generate the artifacts in")
	return generateCmd
}

func generate(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString(dirF)           // nolint: errcheck	// flag is defined on the command.
	password, _ := cmd.Flags().GetString(passwordF) // nolint: errcheck	// flag is defined on the root command.
	chainURL, _ := cmd.Flags().GetString(chainurlF) // nolint: errcheck	// flag is defined on the root command.
	chainID, _ := cmd.Flags().GetInt64(chainidF)    // nolint: errcheck	// flag is defined on the root command.
	if chainURL == "" {
		chainURL = defaultChainURL
	}

	cfgFile := filepath.Join(dir, defaultConfigFile)
	for _, path := range []string{cfgFile, filepath.Join(dir, keystoreDir), filepath.Join(dir, addressBookFile)} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			return errors.New("file exists - " + path)
		}
	}
	if err := os.MkdirAll(dir, dirFileMode); err != nil {
		return errors.Wrap(err, "creating dir - "+dir)
	}

	ks := keystore.NewKeyStore(filepath.Join(dir, keystoreDir), scryptParams.N, scryptParams.P)
	acc, err := ks.NewAccount(password)
	if err != nil {
		return errors.Wrap(err, "generating account")
	}

	bookFile := filepath.Join(dir, addressBookFile)
	if err = generateAddressBook(bookFile, tempo.Entry{
		Kind: tempo.KindAccount, AddressString: acc.Address.Hex(),
	}); err != nil {
		return err
	}

	cfg := fileConfig{
		LogLevel:    defaultLogLevel,
		ChainURL:    chainURL,
		ChainID:     chainID,
		ConnTimeout: defaultConnTimeout,
		TxTimeout:   defaultTxTimeout,
		Keystore:    filepath.Join(dir, keystoreDir),
		Account:     acc.Address.Hex(),
		Password:    password,
		AddressBook: bookFile,
	}
	if err = writeYAML(cfgFile, cfg); err != nil {
		return err
	}
	cmd.Printf("Generated account %s\n", acc.Address.Hex())
	cmd.Printf("Generated config file: %s, address book: %s\n", cfgFile, bookFile)
	return nil
}

func generateAddressBook(path string, account tempo.Entry) error {
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		return errors.Wrap(err, "creating address book file")
	}
	b, err := addressbook.New(path)
	if err != nil {
		return err
	}
	if err = b.Write(accountAlias, account); err != nil {
		return err
	}
	pathUSD := tempo.Entry{Kind: tempo.KindToken, AddressString: contracts.PathUSDAddress.Hex()}
	if err = b.Write(pathUSDAlias, pathUSD); err != nil {
		return err
	}
	return b.UpdateStorage()
}

func writeYAML(path string, v interface{}) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return errors.Wrap(err, "creating file - "+path)
	}
	encoder := yaml.NewEncoder(f)
	if err = encoder.Encode(v); err != nil {
		f.Close() // nolint: errcheck, gosec	// encoding error is returned.
		return errors.Wrap(err, "encoding "+path)
	}
	if err = encoder.Close(); err != nil {
		f.Close() // nolint: errcheck, gosec	// encoding error is returned.
		return errors.Wrap(err, "encoding "+path)
	}
	return errors.Wrap(f.Close(), "closing "+path)
}
