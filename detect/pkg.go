package detect

import (
	"errors"
	"os/exec"
)

// PathLookup interface abstracts the exec.LookPath functionality.
type PathLookup interface {
	LookPath(file string) (string, error)
}

// RealPathLookup is the production implementation of PathLookup.
type RealPathLookup struct{}

// LookPath implements PathLookup using the real exec.LookPath.
func (r RealPathLookup) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Known desktop G-code viewers and senders, in preference order.
const (
	CAMOTICS = "camotics"
	CANDLE   = "candle"
	UGS      = "ugsplatform"
	BCNC     = "bCNC"
)

// SupportedGCodeViewers lists the viewers DetectGCodeViewer probes for.
var SupportedGCodeViewers = [4]string{CAMOTICS, CANDLE, UGS, BCNC}

// ErrNoGCodeViewer is returned when none of the supported G-code viewers
// is found on the PATH.
var ErrNoGCodeViewer = errors.New("no supported G-code viewer found")

// DetectGCodeViewer returns the first supported viewer found on the PATH.
func DetectGCodeViewer(pathLookup PathLookup) (string, error) {
	for _, viewer := range SupportedGCodeViewers {
		if _, err := pathLookup.LookPath(viewer); err == nil {
			return viewer, nil
		}
	}

	return "", ErrNoGCodeViewer
}
