//go:build !debug
// +build !debug

package debug

// Enabled is false unless built with -tags debug; guarded calls compile away.
const Enabled = false

func Log(format string, args ...interface{}) {}
