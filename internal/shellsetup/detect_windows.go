//go:build windows

package shellsetup

import (
	"os"

	"golang.org/x/sys/windows"
)

// DetectParentShellName returns the image path of the parent process, which
// normalizeShellName reduces to a shell name.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(ppid))
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(handle)

	buffer := make([]uint16, 512)
	for {
		size := uint32(len(buffer))
		err = windows.QueryFullProcessImageName(handle, 0, &buffer[0], &size)
		if err == nil {
			return windows.UTF16ToString(buffer[:size])
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER || len(buffer) >= 32768 {
			return ""
		}
		buffer = make([]uint16, len(buffer)*2)
	}
}
