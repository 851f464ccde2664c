//go:build !unix && !windows

package mapped

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("memory mapping is not supported on this platform")

func mmapFile(*os.File, int64, bool) ([]byte, error) {
	return nil, errUnsupported
}

func munmapFile([]byte) error {
	return errUnsupported
}
