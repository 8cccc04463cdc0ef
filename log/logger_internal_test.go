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


package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewLoggerWithField(t *testing.T) {
	t.Run("happy_without_init", func(t *testing.T) {
		setCleanup(t)

		l := NewLoggerWithField("testkey", "testval")
		require.NotNil(t, l)
		entry, ok := l.(*logrus.Entry)
		require.True(t, ok)
		assert.Equal(t, logrus.InfoLevel, entry.Logger.Level)
		assert.Equal(t, "testval", entry.Data["testkey"])
	})

	t.Run("derived_before_init", func(t *testing.T) {
		setCleanup(t)
		logFile := filepath.Join(t.TempDir(), "tempo.log")
		l := NewLoggerWithField(ChainKey, 1337)

		require.NoError(t, InitLogger("debug", logFile))
		l.Debug("test-message")

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "▶ "))
		assert.Contains(t, string(content), "chain=1337")
		assert.Contains(t, string(content), "test-message")
	})
}

func Test_NewDerivedLoggerWithField(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		setCleanup(t)
		parent := NewLoggerWithField("parent", 1)
		child := NewDerivedLoggerWithField(parent, "child", 2)

		entry, ok := child.(*logrus.Entry)
		require.True(t, ok)
		assert.Equal(t, 1, entry.Data["parent"])
		assert.Equal(t, 2, entry.Data["child"])
	})

	t.Run("nil_parent", func(t *testing.T) {
		assert.Panics(t, func() { NewDerivedLoggerWithField(nil, "child", 2) })
	})
}

func Test_InitLogger(t *testing.T) {
	t.Run("happy_stderr", func(t *testing.T) {
		setCleanup(t)
		require.NoError(t, InitLogger("error", ""))

		assert.Equal(t, logrus.ErrorLevel, root.Level)
		assert.Equal(t, os.Stderr, root.Out)
		assert.Nil(t, logFile)
	})

	t.Run("reconfigure", func(t *testing.T) {
		setCleanup(t)
		dir := t.TempDir()
		file1, file2 := filepath.Join(dir, "1.log"), filepath.Join(dir, "2.log")
		l := NewLoggerWithField("testkey", "testval")

		require.NoError(t, InitLogger("info", file1))
		l.Info("first")
		f1 := logFile
		require.NoError(t, InitLogger("warn", file2))
		l.Info("dropped")
		l.Warn("second")

		assert.Equal(t, logrus.WarnLevel, root.Level)
		_, err := f1.Write([]byte("x"))
		assert.Error(t, err, "previous log file should be closed")

		content1, err := os.ReadFile(file1)
		require.NoError(t, err)
		assert.Contains(t, string(content1), "first")
		assert.NotContains(t, string(content1), "second")
		content2, err := os.ReadFile(file2)
		require.NoError(t, err)
		assert.Contains(t, string(content2), "second")
		assert.NotContains(t, string(content2), "dropped")
	})

	t.Run("err_invalid_level", func(t *testing.T) {
		setCleanup(t)
		err := InitLogger("invalid-level", "")
		require.Error(t, err)
		t.Log(err)

		assert.Equal(t, logrus.InfoLevel, root.Level)
	})

	t.Run("err_setting_up_file", func(t *testing.T) {
		setCleanup(t)
		require.NoError(t, InitLogger("warn", ""))
		logFile := filepath.Join(t.TempDir(), "missing-dir", "tempo.log")

		err := InitLogger("error", logFile)
		require.Error(t, err)
		t.Log(err)

		assert.Equal(t, logrus.WarnLevel, root.Level)
	})
}

// setCleanup replaces the root logger with a fresh one for the test and
// restores the original one after the test.
func setCleanup(t *testing.T) {
	oldRoot, oldLogFile := root, logFile
	root, logFile = newRootLogger(), nil
	t.Cleanup(func() {
		setLogFile(nil)
		root, logFile = oldRoot, oldLogFile
	})
}
