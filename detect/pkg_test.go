package detect_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louiss0/l2g/detect"
)

// mockPathLookup resolves only the executables it was told about.
type mockPathLookup struct {
	available map[string]string
}

func (m mockPathLookup) LookPath(file string) (string, error) {
	if path, ok := m.available[file]; ok {
		return path, nil
	}
	return "", fmt.Errorf("mock LookPath: %s not found", file)
}

func TestDetectGCodeViewer(t *testing.T) {
	t.Run("returns the first viewer found in preference order", func(t *testing.T) {
		lookup := mockPathLookup{available: map[string]string{
			detect.CANDLE:   "/usr/bin/candle",
			detect.CAMOTICS: "/usr/bin/camotics",
		}}

		viewer, err := detect.DetectGCodeViewer(lookup)

		assert.NoError(t, err)
		assert.Equal(t, detect.CAMOTICS, viewer)
	})

	t.Run("falls back through the list", func(t *testing.T) {
		lookup := mockPathLookup{available: map[string]string{
			detect.BCNC: "/usr/local/bin/bCNC",
		}}

		viewer, err := detect.DetectGCodeViewer(lookup)

		assert.NoError(t, err)
		assert.Equal(t, detect.BCNC, viewer)
	})

	t.Run("reports when no viewer is installed", func(t *testing.T) {
		lookup := mockPathLookup{}

		_, err := detect.DetectGCodeViewer(lookup)

		assert.ErrorIs(t, err, detect.ErrNoGCodeViewer)
	})
}
