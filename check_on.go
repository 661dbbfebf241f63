//go:build bitvecdebug

package bitvec

import (
	"fmt"
	"os"
)

// checksEnabled reports whether precondition checking was compiled in.
const checksEnabled = true

// check validates a precondition. On violation it writes a diagnostic to
// stderr and panics rather than continuing with corrupted state.
func check(cond bool, msg string) {
	if !cond {
		fmt.Fprintf(os.Stderr, "validation failed: %s\n", msg)
		panic(msg)
	}
}
