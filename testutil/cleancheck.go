// Package testutil provides utilities for testing.
package testutil

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"
)

// TestingT is an interface that matches the subset of testing.T methods we need.
// This allows for easier testing of the test helpers themselves.
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Fatal(args ...interface{})
}

// WorkingTreeSnapshot represents the state of the git working tree at a point in time.
type WorkingTreeSnapshot struct {
	files map[string]bool
}

// SnapshotWorkingTree captures the current state of the git working tree.
// It runs 'git status --porcelain' and stores the list of untracked/modified
// files. Files matched by .gitignore are automatically excluded, so a
// populated build/ directory does not trip the check.
func SnapshotWorkingTree() (*WorkingTreeSnapshot, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	snapshot := &WorkingTreeSnapshot{
		files: make(map[string]bool),
	}

	// Format: XY filename
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if len(line) > 3 {
			filename := strings.TrimSpace(line[3:])
			snapshot.files[filename] = true
		}
	}

	return snapshot, nil
}

// AssertWorkingTreeClean fails the test if new files, generated .nc output
// in particular, appeared in the working tree since the snapshot was taken.
// Command tests write through the mock FileWriter, so anything new here
// means a test leaked onto the real file system.
func AssertWorkingTreeClean(t TestingT, snapshot *WorkingTreeSnapshot) {
	t.Helper()

	if snapshot == nil {
		t.Fatal("snapshot is nil")
	}

	current, err := SnapshotWorkingTree()
	if err != nil {
		t.Fatalf("failed to snapshot working tree: %v", err)
	}

	var leaked []string
	for file := range current.files {
		if !snapshot.files[file] {
			leaked = append(leaked, file)
		}
	}

	if len(leaked) > 0 {
		t.Errorf("test left artifacts in working tree:\n%s", strings.Join(leaked, "\n"))
	}
}

// CleanupWorkingTree registers a t.Cleanup hook that asserts the working
// tree is still clean when the test finishes. Usage:
//
//	func TestSomething(t *testing.T) {
//	    CleanupWorkingTree(t)
//	    // ... test code that might create files ...
//	}
func CleanupWorkingTree(t *testing.T) {
	t.Helper()

	snapshot, err := SnapshotWorkingTree()
	if err != nil {
		t.Fatalf("failed to snapshot working tree: %v", err)
	}

	t.Cleanup(func() {
		AssertWorkingTreeClean(t, snapshot)
	})
}

var _ TestingT = (*testing.T)(nil)
