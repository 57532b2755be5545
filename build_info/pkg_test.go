package build_info

import "testing"

// The raw values are only replaced by ldflags in release builds, so tests
// always see the development defaults.

func TestDefaults(t *testing.T) {
	if got := GetVersion(); got != "dev" {
		t.Errorf("Expected GetVersion() to return dev, got %s", got)
	}

	if got := GetGoMode(); got != "development" {
		t.Errorf("Expected GetGoMode() to return development, got %s", got)
	}

	if got := GetBuildDate(); got != "unknown" {
		t.Errorf("Expected GetBuildDate() to return unknown, got %s", got)
	}

	if InCI() {
		t.Error("Expected InCI() to return false by default")
	}
}

func TestBuildInfoString(t *testing.T) {
	if got := BuildInfo("1.2.3").String(); got != "1.2.3" {
		t.Errorf("Expected String() to return 1.2.3, got %s", got)
	}
}
