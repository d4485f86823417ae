//go:build !windows

package shellsetup

import (
	"os"
	"strconv"
	"strings"
)

// DetectParentShellName reads the parent process name from procfs. Systems
// without /proc report an empty name and detection falls back to $SHELL.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	data, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm")
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(string(data)), "-")
}
