//go:build !csrflow_debug

package assert

// DebugAssert is a no-op in the default build.
func DebugAssert(cond bool, msg string) {}
