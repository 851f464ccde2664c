//go:build windows

package mapped

import (
	"os"
	"syscall"
	"unsafe"
)

// mmapFile maps the first size bytes of f (Windows implementation).
// Non-writable mappings are private copy-on-write pages.
func mmapFile(f *os.File, size int64, writable bool) ([]byte, error) {
	protect, access := uint32(syscall.PAGE_WRITECOPY), uint32(syscall.FILE_MAP_COPY)
	if writable {
		protect, access = syscall.PAGE_READWRITE, syscall.FILE_MAP_WRITE
	}

	handle, err := syscall.CreateFileMapping(
		syscall.Handle(f.Fd()),
		nil,
		protect,
		uint32(size>>32), //nolint:gosec // G115: high word of size
		uint32(size),     //nolint:gosec // G115: low word of size
		nil,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = syscall.CloseHandle(handle) }()

	addr, err := syscall.MapViewOfFile(handle, access, 0, 0, uintptr(size))
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G103: addr is a live mapping of exactly size bytes
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)), nil
}

// munmapFile unmaps a mapping (Windows implementation).
func munmapFile(data []byte) error {
	if len(data) == 0 {
		return syscall.EINVAL
	}
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(&data[0])))
}
