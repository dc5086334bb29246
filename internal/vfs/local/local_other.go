//go:build !windows

package local

import (
	"fmt"
	"runtime"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

// New fails: the host filesystem can only be queried on Windows.
func New() (ntpath.FinalPathFS, error) {
	return nil, fmt.Errorf("%w: host filesystem queries need windows, running on %s", ntpath.ErrUnsupported, runtime.GOOS)
}
