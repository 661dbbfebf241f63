//go:build !bitvecdebug

package bitvec

const checksEnabled = false

// check compiles to a no-op without the bitvecdebug build tag. Violations
// are then caught, if at all, by the runtime's own bounds checks.
func check(bool, string) {}
