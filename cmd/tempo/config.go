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

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tempo-labs/tempo-actions"
)

const (
	// flag names for the client configuration.
	loglevelF    = "loglevel"
	logfileF     = "logfile"
	chainurlF    = "chainurl"
	wsurlF       = "wsurl"
	chainidF     = "chainid"
	conntimeoutF = "conntimeout"
	txtimeoutF   = "txtimeout"
	keystoreF    = "keystore"
	accountF     = "account"
	passwordF    = "password"
	addressbookF = "addressbook"
	configfileF  = "configfile" // can only be specified in flag, not via config file.

	defaultConfigFile  = "tempo.yaml"
	defaultLogLevel    = "error"
	defaultConnTimeout = 10 * time.Second
	defaultTxTimeout   = 30 * time.Second
)

// Flags corresponding to client configuration parameters. Each of these
// flags can individually override the value in the config file. If all of
// them are specified, the config file is not read.
var cfgFlags = []string{
	loglevelF,
	logfileF,
	chainurlF,
	wsurlF,
	chainidF,
	conntimeoutF,
	txtimeoutF,
	keystoreF,
	accountF,
	passwordF,
	addressbookF,
}

func defineConfigFlags(fs *pflag.FlagSet) {
	fs.String(configfileF, defaultConfigFile, "config file")

	// All these flags should have zero values for defaults, as their only purpose is to allow the user to
	// explicitly specify the configuration.
	fs.String(loglevelF, "", "Log level. Supported levels: debug, info, error")
	fs.String(logfileF, "", "Log file path. Use empty string for stdout")
	fs.String(chainurlF, "", "URL of the blockchain node")
	fs.String(wsurlF, "", "Websocket URL of the blockchain node used for watching events")
	fs.Int64(chainidF, 0, "Expected chain id of the blockchain node. Zero skips the check")
	fs.Duration(conntimeoutF, time.Duration(0), "Connection timeout for connecting to the blockchain node")
	fs.Duration(txtimeoutF, time.Duration(0), "Max duration to wait for a transaction to be mined")
	fs.String(keystoreF, "", "Keystore directory holding the key of the account")
	fs.String(accountF, "", "Address of the account used for sending transactions")
	fs.String(passwordF, "", "Password for unlocking the account")
	fs.String(addressbookF, "", "Address book file")
}

// bindConfigFlags attaches the config flags to the viper instance, so that
// values in flags (when specified) take precedence over those in the config
// file.
func bindConfigFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for i := range cfgFlags {
		if err := v.BindPFlag(cfgFlags[i], fs.Lookup(cfgFlags[i])); err != nil {
			panic(err)
		}
	}
	v.SetDefault(loglevelF, defaultLogLevel)
	v.SetDefault(conntimeoutF, defaultConnTimeout)
	v.SetDefault(txtimeoutF, defaultTxTimeout)
}

// parseClientConfig reads the client configuration from the config file and
// the flags. A missing config file is an error only if its path was
// specified explicitly.
func parseClientConfig(fs *pflag.FlagSet, v *viper.Viper) (tempo.ClientConfig, error) {
	if needsConfigFile(fs) {
		cfgFile, err := fs.GetString(configfileF)
		if err != nil {
			return tempo.ClientConfig{}, errors.WithStack(err)
		}
		_, statErr := os.Stat(cfgFile)
		if statErr == nil || fs.Changed(configfileF) {
			v.SetConfigFile(filepath.Clean(cfgFile))
			v.SetConfigType("yaml")
			if err = v.ReadInConfig(); err != nil {
				return tempo.ClientConfig{}, errors.Wrap(err, "reading config file")
			}
		}
	}

	var cfg tempo.ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return tempo.ClientConfig{}, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// needsConfigFile reports whether any of the config values was left unset
// on the command line.
func needsConfigFile(fs *pflag.FlagSet) bool {
	for _, f := range cfgFlags {
		if !fs.Changed(f) {
			return true
		}
	}
	return false
}
