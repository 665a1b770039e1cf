package veb

import "fmt"

// assert panics with a formatted diagnostic when a precondition does not
// hold. Without the vebdebug build tag debugChecks is a false constant
// and the whole call compiles away; release callers are trusted.
//
// Checks whose condition is itself expensive (a contains walk, say) must
// be wrapped in an `if debugChecks` block at the call site so the
// condition is not evaluated in release builds either.
func assert(cond bool, format string, args ...interface{}) {
	if debugChecks && !cond {
		panic(fmt.Sprintf("veb: "+format, args...))
	}
}
