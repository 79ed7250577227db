// Package log provides the package-level diagnostic logger used by the
// heap and merge packages to report contract violations before they
// panic. It follows github.com/daicang/mk's logr adapter, but backs it
// with github.com/go-logr/stdr instead of hand-rolling the sink.
package log

import (
	"errors"
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var errAssertion = errors.New("assertion failed")

// Debug gates Assert. Release builds set this false so heap-invariant
// checks are elided entirely, matching the teacher's debugFlag toggle
// in pkg/debug.go — contract violations then become undefined
// behavior instead of a guaranteed panic.
var Debug = true

// Verbosity levels. Level zero matters most; increasing levels matter
// less and less. The package Logger is created at LevelInvariant
// verbosity; Assert reports through Logger.Error, which logr emits at
// every verbosity.
const (
	LevelInfo      = 0
	LevelInvariant = 1
)

// Logger is the logr.Logger used throughout dheap.
var Logger logr.Logger

func init() {
	Logger = New(LevelInvariant)
}

// New returns a stdr-backed logr.Logger at the given verbosity.
func New(verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	l := stdlog.New(os.Stderr, "", stdlog.LstdFlags|stdlog.Lshortfile)
	return stdr.New(l)
}

// Assert panics with msg when cond is false, first logging msg and kv
// through Logger.Error so the failing precondition is visible even when
// the panic is recovered higher up. This is the debug-mode contract
// check described by the heap and merge packages: in a release build
// callers are expected to strip these calls (e.g. via a build tag on
// the call sites), so a failing precondition is undefined behavior
// rather than a guaranteed panic.
func Assert(cond bool, msg string, kv ...interface{}) {
	if !Debug || cond {
		return
	}
	Logger.Error(errAssertion, msg, kv...)
	panic(msg)
}
