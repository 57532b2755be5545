// Package mock provides mock implementations for testing l2g.
package mock

import (
	// standard library
	"bytes"
	"fmt"
	"io"
	"strings"

	// internal
	"github.com/louiss0/l2g/cmd"
	"github.com/louiss0/l2g/services"

	// external
	"github.com/stretchr/testify/mock"
)

// MockDebugExecutor implements the cmd.DebugExecutor interface for testing purposes
type MockDebugExecutor struct {
	mock.Mock
}

// ExecuteIfDebugIsTrue records the call to this method.
// In tests, you can set expectations using `On("ExecuteIfDebugIsTrue")`.
func (m *MockDebugExecutor) ExecuteIfDebugIsTrue(cb func()) {
	m.Called(cb)
}

// LogDebugMessageIfDebugIsTrue records the call to this method along with its arguments.
func (m *MockDebugExecutor) LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{}) {
	args := []interface{}{msg}
	args = append(args, keyvals...)
	m.Called(args...)
}

func (m *MockDebugExecutor) LogViewerCommandIfDebugIsTrue(command string, args ...string) {
	callArgs := []interface{}{command}
	for _, arg := range args {
		callArgs = append(callArgs, arg)
	}
	m.Called(callArgs...)
}

// NoopDebugExecutor is a DebugExecutor that records nothing, for tests that
// don't care about debug output.
type NoopDebugExecutor struct{}

func (NoopDebugExecutor) ExecuteIfDebugIsTrue(cb func()) {}

func (NoopDebugExecutor) LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{}) {}

func (NoopDebugExecutor) LogViewerCommandIfDebugIsTrue(command string, args ...string) {}

// CommandCall represents a single command call with its name and arguments
type CommandCall struct {
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell prompt.
func (c CommandCall) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// MockCommandRunner implements the cmd.CommandRunner interface for testing purposes.
// This ensures no real commands are executed during tests.
type MockCommandRunner struct {
	Calls  []CommandCall
	RunErr error
	ran    bool
}

func (m *MockCommandRunner) Command(name string, args ...string) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
}

func (m *MockCommandRunner) Run() error {
	if len(m.Calls) == 0 {
		return fmt.Errorf("no command set to run")
	}
	m.ran = true
	return m.RunErr
}

// Ran reports whether Run was called at least once.
func (m *MockCommandRunner) Ran() bool {
	return m.ran
}

// LastCall returns the most recent prepared command.
func (m *MockCommandRunner) LastCall() CommandCall {
	if len(m.Calls) == 0 {
		return CommandCall{}
	}
	return m.Calls[len(m.Calls)-1]
}

// MockFileWriter implements cmd.FileWriter, capturing every rendered file
// in memory instead of touching the file system.
type MockFileWriter struct {
	WrittenFiles map[string]*bytes.Buffer
	WriteErr     error
}

// NewMockFileWriter creates an empty in-memory FileWriter.
func NewMockFileWriter() *MockFileWriter {
	return &MockFileWriter{
		WrittenFiles: map[string]*bytes.Buffer{},
	}
}

func (m *MockFileWriter) WriteFile(dir, name string, render func(w io.Writer) error) (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}

	path := strings.TrimSuffix(dir, "/") + "/" + name
	buffer := &bytes.Buffer{}
	if err := render(buffer); err != nil {
		return "", err
	}

	m.WrittenFiles[path] = buffer
	return path, nil
}

// Paths returns every path written so far.
func (m *MockFileWriter) Paths() []string {
	paths := make([]string, 0, len(m.WrittenFiles))
	for path := range m.WrittenFiles {
		paths = append(paths, path)
	}
	return paths
}

// MockFigureSelectUI implements cmd.FigureUISelector with a canned answer.
type MockFigureSelectUI struct {
	Selected string
	RunErr   error
	runs     int
}

func (m *MockFigureSelectUI) Run() error {
	m.runs++
	return m.RunErr
}

func (m *MockFigureSelectUI) Value() string {
	return m.Selected
}

// Runs returns how many times the selector was shown.
func (m *MockFigureSelectUI) Runs() int {
	return m.runs
}

// MockSenderService implements services.SenderService, capturing the
// program it was asked to stream.
type MockSenderService struct {
	mock.Mock
	SentProgram string
}

func (m *MockSenderService) Send(program io.Reader) (int, error) {
	data, err := io.ReadAll(program)
	if err != nil {
		return 0, err
	}
	m.SentProgram = string(data)

	args := m.Called()
	return args.Int(0), args.Error(1)
}

// Interface conformance checks.
var (
	_ cmd.DebugExecutor      = (*MockDebugExecutor)(nil)
	_ cmd.DebugExecutor      = NoopDebugExecutor{}
	_ cmd.CommandRunner      = (*MockCommandRunner)(nil)
	_ cmd.FileWriter         = (*MockFileWriter)(nil)
	_ cmd.FigureUISelector   = (*MockFigureSelectUI)(nil)
	_ services.SenderService = (*MockSenderService)(nil)
)
