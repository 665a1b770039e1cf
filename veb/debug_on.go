//go:build vebdebug

package veb

// debugChecks enables the precondition asserts.
const debugChecks = true
