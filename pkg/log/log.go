// Copyright 2023 Intel Corporation. All Rights Reserved.
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
	"fmt"
	"sync"

	"k8s.io/klog/v2"
)

// Level is the log message severity level below which we suppress messages.
type Level int32

const (
	// LevelDebug corresponds to debug messages.
	LevelDebug Level = iota
	// LevelInfo corresponds to informational messages.
	LevelInfo
	// LevelWarn corresponds to warning messages.
	LevelWarn
	// LevelError corresponds to error messages.
	LevelError
)

// Logger is the interface for producing log messages for a particular source.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Fatal(format string, args ...interface{})

	EnableDebug(bool) bool
	DebugEnabled() bool
	Source() string
}

// logger implements Logger, emitting messages through klog.
type logger struct {
	source string // logger source/module name
	debug  bool   // debugging enabled for this source
}

// logging is our runtime state.
type logging struct {
	sync.Mutex
	level   Level              // lowest unsuppressed severity
	loggers map[string]*logger // running loggers (log sources)
}

var log = &logging{
	level:   LevelInfo,
	loggers: make(map[string]*logger),
}

// emit depth, relative to the klog call: logger method, emit itself.
const emitDepth = 2

// Get returns the existing logger for the source, creating one if necessary.
func Get(source string) Logger {
	log.Lock()
	defer log.Unlock()

	l, ok := log.loggers[source]
	if !ok {
		l = &logger{source: source}
		log.loggers[source] = l
	}
	return l
}

// NewLogger creates a new logger, getting the existing one if possible.
func NewLogger(source string) Logger {
	return Get(source)
}

// SetLevel sets the lowest severity level that is not suppressed.
func SetLevel(level Level) {
	log.Lock()
	defer log.Unlock()
	log.level = level
}

// EnableDebug turns debug messages on or off for all sources.
func EnableDebug(enabled bool) {
	log.Lock()
	defer log.Unlock()
	for _, l := range log.loggers {
		l.debug = enabled
	}
	if enabled {
		log.level = LevelDebug
	}
}

// Flush waits for all buffered messages to get emitted.
func Flush() {
	klog.Flush()
}

func (l *logger) format(format string, args ...interface{}) string {
	return fmt.Sprintf("["+l.source+"] "+format, args...)
}

func (l *logger) Debug(format string, args ...interface{}) {
	if !l.debug || log.level > LevelDebug {
		return
	}
	klog.InfoDepth(emitDepth, l.format("D: "+format, args...))
}

func (l *logger) Info(format string, args ...interface{}) {
	if log.level > LevelInfo {
		return
	}
	klog.InfoDepth(emitDepth, l.format(format, args...))
}

func (l *logger) Warn(format string, args ...interface{}) {
	if log.level > LevelWarn {
		return
	}
	klog.WarningDepth(emitDepth, l.format(format, args...))
}

func (l *logger) Error(format string, args ...interface{}) {
	klog.ErrorDepth(emitDepth, l.format(format, args...))
}

// Fatal logs the message and exits with a non-zero status.
func (l *logger) Fatal(format string, args ...interface{}) {
	klog.ExitDepth(emitDepth, l.format(format, args...))
}

// EnableDebug turns debug messages on or off for this source. It returns
// the previous setting.
func (l *logger) EnableDebug(enabled bool) bool {
	log.Lock()
	defer log.Unlock()
	old := l.debug
	l.debug = enabled
	return old
}

// DebugEnabled returns whether debug messages are enabled for this source.
func (l *logger) DebugEnabled() bool {
	return l.debug
}

// Source returns the source name of this logger.
func (l *logger) Source() string {
	return l.source
}
