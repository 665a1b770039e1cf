//go:build !vebdebug

package veb

// debugChecks elides the precondition asserts; violating a precondition
// then corrupts the structure silently. Build with -tags vebdebug to
// diagnose.
const debugChecks = false
