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


// Package log provides the structured logger shared by the chain clients and
// the command line tools.
//
// All loggers are derived from one root logger. Configuring the root logger
// with InitLogger also applies to loggers derived before, so that clients
// can be created before the log configuration is known.
package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Keys of the fields attached to log entries.
const (
	ChainKey    = "chain"
	AccountKey  = "account"
	URLKey      = "url"
	ContractKey = "contract"
	MethodKey   = "method"
	EventKey    = "event"
	TxKey       = "tx"
	BlockKey    = "block"
)

// Logger is a type alias of logrus.FieldLogger that defines a broad interface for logging.
type Logger = logrus.FieldLogger

// Fields is a collection of fields to be passed to the Logger.
type Fields = logrus.Fields

var (
	mtx  sync.Mutex
	root = newRootLogger()

	// logFile is the file the root logger currently writes to, if any.
	logFile *os.File
)

// newRootLogger returns a logger that logs at info level to stderr.
func newRootLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stderr)
	l.SetFormatter(&customTextFormatter{logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006-01-02 15:04:05 Z0700",
		DisableLevelTruncation: true,
	}})
	return l
}

// InitLogger sets the level and the output of the root logger. It logs to
// stderr if logFile is an empty string and appends to the file otherwise.
//
// It can be called again to change the configuration; a previously opened
// log file is closed then. On error, the configuration is not changed.
func InitLogger(levelStr, logFile string) error {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return errors.WithStack(err)
	}
	var f *os.File
	if logFile != "" {
		if f, err = os.OpenFile(filepath.Clean(logFile), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600); err != nil {
			return errors.WithStack(err)
		}
	}

	mtx.Lock()
	defer mtx.Unlock()
	var out io.Writer = os.Stderr
	if f != nil {
		out = f
	}
	root.SetLevel(level)
	root.SetOutput(out)
	setLogFile(f)
	return nil
}

// setLogFile replaces the current log file and closes the previous one.
func setLogFile(f *os.File) {
	if logFile != nil {
		logFile.Close() // nolint: errcheck, gosec	// entries are written unbuffered.
	}
	logFile = f
}

// NewLoggerWithField returns a logger derived from the root logger that
// logs with the given field.
func NewLoggerWithField(key string, value interface{}) Logger {
	mtx.Lock()
	defer mtx.Unlock()
	return root.WithField(key, value)
}

// NewDerivedLoggerWithField returns a logger that inherits all properties of the parent logger,
// and adds the given field for each log entry.
//
// Panics if parent logger is nil.
func NewDerivedLoggerWithField(parentLogger Logger, key string, value interface{}) Logger {
	if parentLogger == nil {
		panic("parent logger should not be nil")
	}
	return parentLogger.WithField(key, value)
}

// customTextFormatter prefixes each entry with a marker.
type customTextFormatter struct {
	logrus.TextFormatter
}

// Format implements logrus.Formatter.
func (f *customTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.TextFormatter.Format(entry)
	return append([]byte("▶ "), text...), err
}
