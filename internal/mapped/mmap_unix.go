//go:build unix

package mapped

import (
	"os"
	"syscall"
)

// mmapFile maps the first size bytes of f (Unix implementation).
// Non-writable mappings are private copy-on-write pages.
func mmapFile(f *os.File, size int64, writable bool) ([]byte, error) {
	flags := syscall.MAP_PRIVATE
	if writable {
		flags = syscall.MAP_SHARED
	}
	return syscall.Mmap(
		int(f.Fd()), //nolint:gosec // G115: file descriptor fits in int
		0,
		int(size), //nolint:gosec // G115: size validated against the file by caller
		syscall.PROT_READ|syscall.PROT_WRITE,
		flags,
	)
}

// munmapFile unmaps a mapping (Unix implementation).
func munmapFile(data []byte) error {
	return syscall.Munmap(data)
}
