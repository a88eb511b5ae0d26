// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"io"
	stdlog "log"
)

// Level is the minimum severity written by a writer backed Logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelPrefix = [...]string{
	LevelDebug: "DEBUG ",
	LevelInfo:  "INFO ",
	LevelWarn:  "WARN ",
	LevelError: "ERROR ",
}

// writerLogger writes messages at or above level to a standard library logger.
type writerLogger struct {
	out   *stdlog.Logger
	level Level
}

// New returns a Logger writing messages at or above level to w.
func New(w io.Writer, level Level) Logger {
	return &writerLogger{
		out:   stdlog.New(w, "", stdlog.LstdFlags|stdlog.Lmsgprefix),
		level: level,
	}
}

func (l *writerLogger) log(level Level, msg string) {
	if level < l.level {
		return
	}
	// output errors have nowhere to go
	_ = l.out.Output(3, levelPrefix[level]+msg)
}

func (l *writerLogger) Debug(args ...interface{}) { l.log(LevelDebug, fmt.Sprint(args...)) }

func (l *writerLogger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Info(args ...interface{}) { l.log(LevelInfo, fmt.Sprint(args...)) }

func (l *writerLogger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Warn(args ...interface{}) { l.log(LevelWarn, fmt.Sprint(args...)) }

func (l *writerLogger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Error(args ...interface{}) { l.log(LevelError, fmt.Sprint(args...)) }

func (l *writerLogger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}
