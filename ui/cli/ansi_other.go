//go:build !windows

package cli

// EnableANSI is a no-op: other terminals understand escape codes already.
func EnableANSI() {}
