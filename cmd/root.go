/*
Copyright © 2025 Shelton Louis

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package cmd provides command-line interface implementations for the L-system G-code generator.
package cmd

import (
	// standard library
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	// external
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/build_info"
	"github.com/louiss0/l2g/custom_flags"
	"github.com/louiss0/l2g/detect"
	"github.com/louiss0/l2g/env"
	"github.com/louiss0/l2g/services"
)

// Constants for context keys and configuration
const (
	_GO_ENV         = "go_env"         // Used for storing GoEnv in context
	_DEBUG_EXECUTOR = "debug_executor" // Key for the DebugExecutor
	_OUTPUT_DIR     = "output_dir"     // Resolved directory for generated .nc files
)

const (
	COMMAND_RUNNER_KEY = "command_runner"
	FILE_WRITER_KEY    = "file_writer"
	OUTPUT_FLAG        = "output"
	_DEBUG_FLAG        = "debug"
	DEFAULT_OUTPUT_DIR = "./build/"
)

// CommandRunner Interface and its implementation
// This interface allows for mocking command execution in tests.
// **Remember:** always use the `Command()` before using the `Run()`
type CommandRunner interface {
	// Prepares the command to execute; uses exec.Cmd behind the scenes.
	Command(string, ...string)
	// This method calls the underlying `exec.Run()` to execute the command from `exec.Cmd`!
	Run() error
}

type _ExecCommandFunc func(string, ...string) *exec.Cmd

type commandRunner struct {
	execCommandFunc _ExecCommandFunc
	cmd             *exec.Cmd
}

func newCommandRunner(execCommandFunc _ExecCommandFunc) CommandRunner {
	return &commandRunner{
		execCommandFunc: execCommandFunc,
	}
}

func (e *commandRunner) Command(name string, args ...string) {
	e.cmd = e.execCommandFunc(name, args...)
	e.cmd.Stdin = os.Stdin   // Ensure stdin is connected for interactive commands
	e.cmd.Stdout = os.Stdout // Ensure output goes to stdout
	e.cmd.Stderr = os.Stderr // Ensure errors go to stderr
}

func (e *commandRunner) Run() error {
	if e.cmd == nil {
		return fmt.Errorf("no command set to run")
	}
	return e.cmd.Run()
}

// FileWriter abstracts writing a rendered program into the output directory
// so command tests never touch the real file system.
type FileWriter interface {
	// WriteFile creates dir if needed, renders into dir/name and returns
	// the path it wrote.
	WriteFile(dir, name string, render func(w io.Writer) error) (string, error)
}

type realFileWriter struct{}

// NewRealFileWriter returns the production FileWriter.
func NewRealFileWriter() FileWriter {
	return realFileWriter{}
}

func (realFileWriter) WriteFile(dir, name string, render func(w io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := render(file); err != nil {
		file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", err
	}

	return path, nil
}

// Dependencies holds the external dependencies for testing and real execution

type Dependencies struct {
	CommandRunnerGetter func() CommandRunner
	FileWriter          FileWriter
	DetectGCodeViewer   func() (viewer string, err error)
	NewFigureSelectUI   func(options []string) FigureUISelector
	NewSenderService    func(address string) services.SenderService
	NewDebugExecutor    func(bool) DebugExecutor
}

// FigureUISelector is the interactive figure picker shown when generate is
// called without an argument.
type FigureUISelector interface {
	Run() error
	Value() string
}

type DebugExecutor interface {
	ExecuteIfDebugIsTrue(cb func())
	LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{})
	LogViewerCommandIfDebugIsTrue(command string, args ...string)
}

type debugExecutor struct {
	debugFlag bool
}

func newDebugExecutor(debugFlag bool) DebugExecutor {
	return debugExecutor{debugFlag}
}

func (d debugExecutor) ExecuteIfDebugIsTrue(cb func()) {
	if d.debugFlag {
		cb()
	}
}

func (d debugExecutor) LogDebugMessageIfDebugIsTrue(msg string, keyvals ...interface{}) {
	if d.debugFlag {
		log.Debug(msg, keyvals...)
	}
}

func (d debugExecutor) LogViewerCommandIfDebugIsTrue(command string, args ...string) {
	if d.debugFlag {
		log.Debug("Executing command:", "command", strings.Join(append([]string{command}, args...), " "))
	}
}

// NewRootCmd creates a new root command with injectable dependencies.
func NewRootCmd(deps Dependencies) *cobra.Command {
	outputFlag := custom_flags.NewFolderPathFlag(OUTPUT_FLAG)

	cmd := &cobra.Command{
		Use:     "l2g",
		Version: build_info.CLI_VERSION.String(), // Default version or set via build process
		Short:   "l2g - Generate CNC G-code from L-systems",
		Long: `l2g compiles deterministic, context-free L-systems into CNC toolpaths
and writes them as G-code (.nc) files ready to run on a milling machine.

A figure is an L-system (axiom plus production rules) paired with the
machining parameters that render it well: iteration count, step size, turn
angle, initial heading, feed rate and cutting depth. Four figures ship
built in (koch, hilbert, sierpinski, barnsley) and the compile command
accepts arbitrary axioms and rules.

Available commands:
		generate   - Compile a built-in figure and write its .nc file
		compile    - Compile a custom L-system from --axiom and --rule flags
		figures    - List the built-in figures
		preview    - Draw a figure's toolpath in the terminal
		stats      - Show toolpath size, extents and estimated cutting time
		send       - Stream an existing .nc file to a networked controller`,
		SilenceUsage: true,

		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			// Load .env file
			err := godotenv.Load()

			if err != nil && !os.IsNotExist(err) {
				log.Error(err.Error()) // Log error, but don't stop execution unless critical
			}

			goEnv := env.NewGoEnv() // Instantiate GoEnv

			// Store dependencies and other derived values in the command context
			c_ctx := c.Context() // Capture the current context to pass into lo.ForEach

			commandRunner := deps.CommandRunnerGetter()

			debug, err := c.Flags().GetBool(_DEBUG_FLAG)
			if err != nil {
				return err
			}

			if debug {
				log.SetLevel(log.DebugLevel)
			}

			debugExecutor := deps.NewDebugExecutor(debug)

			// Resolve the output directory: flag first, then the
			// environment, then the conventional ./build/ folder.
			outputDir := outputFlag.String()
			if outputDir == "" {
				if fromEnv, ok := os.LookupEnv(env.OUTPUT_DIR_ENV_VAR); ok && fromEnv != "" {
					debugExecutor.LogDebugMessageIfDebugIsTrue(
						"Output directory taken from environment",
						"dir", fromEnv,
					)
					outputDir = fromEnv
				} else {
					outputDir = DEFAULT_OUTPUT_DIR
				}
			}

			lo.ForEach([][2]any{
				{_GO_ENV, goEnv},
				{COMMAND_RUNNER_KEY, commandRunner},
				{FILE_WRITER_KEY, deps.FileWriter},
				{_DEBUG_EXECUTOR, debugExecutor},
				{_OUTPUT_DIR, outputDir},
			}, func(item [2]any, index int) {
				c_ctx = context.WithValue(
					c_ctx,
					item[0],
					item[1],
				)
			})

			c.SetContext(c_ctx)
			return nil
		},
	}

	// Add all subcommands
	cmd.AddCommand(NewGenerateCmd(deps.NewFigureSelectUI, deps.DetectGCodeViewer))
	cmd.AddCommand(NewCompileCmd())
	cmd.AddCommand(NewFiguresCmd())
	cmd.AddCommand(NewPreviewCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewSendCmd(deps.NewSenderService))
	cmd.AddCommand(NewCompletionCmd())

	cmd.PersistentFlags().BoolP(_DEBUG_FLAG, "d", false, "Make commands run in debug mode")

	cmd.PersistentFlags().VarP(outputFlag, OUTPUT_FLAG, "o", "Set the directory for generated .nc files (must end with '/' unless it's just '/')")

	return cmd
}

// Global variable for the root command, initialized in init()
var rootCmd *cobra.Command

func init() {
	// Initialize the global rootCmd with real implementations of its dependencies
	rootCmd = NewRootCmd(
		Dependencies{
			CommandRunnerGetter: func() CommandRunner {
				return newCommandRunner(exec.Command)
			},
			FileWriter: NewRealFileWriter(),
			DetectGCodeViewer: func() (string, error) {
				return detect.DetectGCodeViewer(detect.RealPathLookup{})
			},
			NewFigureSelectUI: newFigureSelectUI,
			NewSenderService: func(address string) services.SenderService {
				return services.NewGrblSenderService(address)
			},
			NewDebugExecutor: newDebugExecutor,
		},
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

// Helper functions to retrieve dependencies and other values from the command context.
// These functions are used by subcommands to get their required dependencies.

func getDebugExecutorFromCommandContext(cmd *cobra.Command) DebugExecutor {
	return cmd.Context().Value(_DEBUG_EXECUTOR).(DebugExecutor)
}

func getCommandRunnerFromCommandContext(cmd *cobra.Command) CommandRunner {
	return cmd.Context().Value(COMMAND_RUNNER_KEY).(CommandRunner)
}

func getFileWriterFromCommandContext(cmd *cobra.Command) FileWriter {
	return cmd.Context().Value(FILE_WRITER_KEY).(FileWriter)
}

func getOutputDirFromCommandContext(cmd *cobra.Command) string {
	return cmd.Context().Value(_OUTPUT_DIR).(string)
}

func getGoEnvFromCommandContext(cmd *cobra.Command) env.GoEnv {
	goEnv := cmd.Context().Value(_GO_ENV).(env.GoEnv)
	return goEnv
}
