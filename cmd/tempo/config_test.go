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
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-labs/tempo-actions"
)

var testCfg = tempo.ClientConfig{
	LogLevel:    "debug",
	LogFile:     "tempo.log",
	ChainURL:    "ws://127.0.0.1:8545",
	ChainID:     1337,
	ConnTimeout: 5 * time.Second,
	TxTimeout:   20 * time.Second,
	Keystore:    "keystore",
	Account:     "0x9daEdAcb21dce86Af8604Ba1A1D7F9BFE55ddd63",
	Password:    "pwd",
	AddressBook: "addressbook.yaml",
}

func newConfigFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), defaultConfigFile)
	require.NoError(t, writeYAML(path, fileConfig{
		LogLevel:    testCfg.LogLevel,
		LogFile:     testCfg.LogFile,
		ChainURL:    testCfg.ChainURL,
		ChainID:     testCfg.ChainID,
		ConnTimeout: testCfg.ConnTimeout,
		TxTimeout:   testCfg.TxTimeout,
		Keystore:    testCfg.Keystore,
		Account:     testCfg.Account,
		Password:    testCfg.Password,
		AddressBook: testCfg.AddressBook,
	}))
	return path
}

func parseArgs(t *testing.T, args ...string) (tempo.ClientConfig, error) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	defineConfigFlags(fs)
	v := viper.New()
	bindConfigFlags(v, fs)
	require.NoError(t, fs.Parse(args))
	return parseClientConfig(fs, v)
}

func Test_parseClientConfig(t *testing.T) {
	t.Run("happy_config_file", func(t *testing.T) {
		gotCfg, err := parseArgs(t, "--"+configfileF, newConfigFile(t))
		require.NoError(t, err)
		assert.Equal(t, testCfg, gotCfg)
	})

	t.Run("happy_flags_override_config_file", func(t *testing.T) {
		gotCfg, err := parseArgs(t, "--"+configfileF, newConfigFile(t),
			"--"+chainurlF, "http://localhost:8545", "--"+txtimeoutF, "1m")
		require.NoError(t, err)
		wantCfg := testCfg
		wantCfg.ChainURL = "http://localhost:8545"
		wantCfg.TxTimeout = time.Minute
		assert.Equal(t, wantCfg, gotCfg)
	})

	t.Run("happy_defaults_without_config_file", func(t *testing.T) {
		gotCfg, err := parseArgs(t, "--"+chainurlF, "http://localhost:8545")
		require.NoError(t, err)
		assert.Equal(t, tempo.ClientConfig{
			LogLevel:    defaultLogLevel,
			ChainURL:    "http://localhost:8545",
			ConnTimeout: defaultConnTimeout,
			TxTimeout:   defaultTxTimeout,
		}, gotCfg)
	})

	t.Run("happy_all_flags_ignore_config_file", func(t *testing.T) {
		values := map[string]string{chainidF: "5", conntimeoutF: "1s", txtimeoutF: "2s"}
		args := []string{"--" + configfileF, "missing_file"}
		for _, f := range cfgFlags {
			args = append(args, "--"+f+"="+values[f])
		}
		gotCfg, err := parseArgs(t, args...)
		require.NoError(t, err)
		assert.Equal(t, tempo.ClientConfig{ChainID: 5, ConnTimeout: time.Second, TxTimeout: 2 * time.Second}, gotCfg)
	})

	t.Run("needs_config_file", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		defineConfigFlags(fs)
		assert.True(t, needsConfigFile(fs))

		for _, f := range cfgFlags[:len(cfgFlags)-1] {
			require.NoError(t, fs.Set(f, fs.Lookup(f).DefValue))
		}
		assert.True(t, needsConfigFile(fs), "one flag is still unset")

		last := cfgFlags[len(cfgFlags)-1]
		require.NoError(t, fs.Set(last, fs.Lookup(last).DefValue))
		assert.False(t, needsConfigFile(fs))
	})

	t.Run("err_missing_file", func(t *testing.T) {
		_, err := parseArgs(t, "--"+configfileF, "missing_file")
		require.Error(t, err)
		t.Log(err)
	})

	t.Run("err_invalid_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("chainurl: : ws://127.0.0.1"), 0o600))
		_, err := parseArgs(t, "--"+configfileF, path)
		require.Error(t, err)
		t.Log(err)
	})

	t.Run("err_invalid_duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("txtimeout: soon"), 0o600))
		_, err := parseArgs(t, "--"+configfileF, path)
		require.Error(t, err)
		t.Log(err)
	})
}
