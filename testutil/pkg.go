package testutil

import (
	"github.com/louiss0/l2g/cmd"
	"github.com/louiss0/l2g/mock"
	"github.com/louiss0/l2g/services"
	"github.com/spf13/cobra"
)

// RootCommandFactory is a helper struct for creating cobra.Command instances
// with various mocked dependencies for testing purposes.
type RootCommandFactory struct {
	commandRunner *mock.MockCommandRunner
	fileWriter    *mock.MockFileWriter
	senderService *mock.MockSenderService
	selectUI      *mock.MockFigureSelectUI
}

// NewRootCommandFactory creates a factory whose commands run entirely
// against in-memory mocks.
func NewRootCommandFactory() *RootCommandFactory {
	return &RootCommandFactory{
		commandRunner: &mock.MockCommandRunner{},
		fileWriter:    mock.NewMockFileWriter(),
		senderService: &mock.MockSenderService{},
		selectUI:      &mock.MockFigureSelectUI{},
	}
}

func (f *RootCommandFactory) CommandRunner() *mock.MockCommandRunner {
	return f.commandRunner
}

func (f *RootCommandFactory) FileWriter() *mock.MockFileWriter {
	return f.fileWriter
}

func (f *RootCommandFactory) SenderService() *mock.MockSenderService {
	return f.senderService
}

func (f *RootCommandFactory) SelectUI() *mock.MockFigureSelectUI {
	return f.selectUI
}

// baseDependencies returns a set of common mocked dependencies that can be overridden.
func (f *RootCommandFactory) baseDependencies() cmd.Dependencies {
	return cmd.Dependencies{
		CommandRunnerGetter: func() cmd.CommandRunner {
			return f.commandRunner
		},
		FileWriter: f.fileWriter,
		DetectGCodeViewer: func() (string, error) {
			return "camotics", nil
		},
		NewFigureSelectUI: func(options []string) cmd.FigureUISelector {
			return f.selectUI
		},
		NewSenderService: func(address string) services.SenderService {
			return f.senderService
		},
		NewDebugExecutor: func(bool) cmd.DebugExecutor {
			return mock.NoopDebugExecutor{}
		},
	}
}

// CreateRootCmd creates a root command wired with the factory's mocks.
func (f *RootCommandFactory) CreateRootCmd() *cobra.Command {
	return cmd.NewRootCmd(f.baseDependencies())
}

// CreateRootCmdWithFigureSelection creates a root command whose interactive
// figure picker answers with the given figure name.
func (f *RootCommandFactory) CreateRootCmdWithFigureSelection(figureName string) *cobra.Command {
	f.selectUI.Selected = figureName
	return f.CreateRootCmd()
}

// CreateRootCmdWithViewer creates a root command where G-code viewer
// detection yields the given viewer, or err when detection should fail.
func (f *RootCommandFactory) CreateRootCmdWithViewer(viewer string, err error) *cobra.Command {
	deps := f.baseDependencies()
	deps.DetectGCodeViewer = func() (string, error) {
		return viewer, err
	}
	return cmd.NewRootCmd(deps)
}
