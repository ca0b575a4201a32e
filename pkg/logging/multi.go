// Copyright 2018 Ewout Prangsma
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
//
// Author Ewout Prangsma
//

package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type multiWriter struct {
	writers []io.Writer
}

// NewMultiWriter creates a log output that writes to all given outputs.
// A failing output does not stop the others.
func NewMultiWriter(writers ...io.Writer) io.Writer {
	return &multiWriter{
		writers: writers,
	}
}

func (l *multiWriter) Write(p []byte) (int, error) {
	var firstErr error
	for _, w := range l.writers {
		if _, err := w.Write(p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(p), firstErr
}

// NewLogger creates a console logger on stderr with the given level.
// When logFile is not empty, JSON log lines are appended to that file as well.
func NewLogger(level, logFile string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, nil, errors.Wrapf(err, "invalid log level '%s'", level)
	}
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Logger{}, nil, errors.Wrapf(err, "failed to open log file '%s'", logFile)
		}
		out = NewMultiWriter(out, f)
		closer = f
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
