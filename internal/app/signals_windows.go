//go:build windows

package app

import "os"

// Windows has no job control, so there is nothing to resume from.
func contSignals() []os.Signal {
	return nil
}
