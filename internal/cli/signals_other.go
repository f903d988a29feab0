//go:build !unix

package cli

import "os"

// interruptSignals end an edit session where only os.Interrupt is portable.
var interruptSignals = []os.Signal{os.Interrupt}
