//go:build unix

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// interruptSignals end an edit session on unix systems.
var interruptSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}
