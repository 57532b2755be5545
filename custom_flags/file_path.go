package custom_flags

import (
	"fmt"
	"regexp"

	"github.com/spf13/pflag"
)

// FilePathFlag extends pflag.Value for file path flags
type FilePathFlag interface {
	pflag.Value
	FlagName() string
}

// validateFilePath validates a file path according to the current platform
func validateFilePath(value string) bool {
	if isWindows() {
		return validateWindowsFilePath(value)
	}
	return validatePosixFilePath(value)
}

// validateWindowsFilePath validates Windows file paths: absolute, relative
// and UNC forms, both slash directions, no trailing separator.
func validateWindowsFilePath(value string) bool {
	windowsFilePathRegex := `^(?:(?:[a-zA-Z]:[/\\]|\\\\[^/\\:*?"<>|]+\\[^/\\:*?"<>|]+[/\\]|\.{1,2}[/\\])(?:[^/\\:*?"<>|]+[/\\])*|(?:[^/\\:*?"<>|]+[/\\])+)?[^/\\:*?"<>|]+$`
	match, _ := regexp.MatchString(windowsFilePathRegex, value)
	return match
}

// validatePosixFilePath validates POSIX/UNIX file paths
func validatePosixFilePath(value string) bool {
	posixUnixFilePathRegex := `^(?:/?(?:[a-zA-Z0-9._-]+|\.{1,2})(?:/(?:[a-zA-Z0-9._-]+|\.{1,2}))*)?/?([a-zA-Z0-9._-]+)$`
	match, _ := regexp.MatchString(posixUnixFilePathRegex, value)
	return match
}

// filePathFlag represents a flag that must contain a valid file path
type filePathFlag struct {
	value    string
	flagName string
}

// NewFilePathFlag creates a new FilePathFlag with the given flag name
func NewFilePathFlag(flagName string) FilePathFlag {
	return &filePathFlag{
		flagName: flagName,
	}
}

// String returns the flag's value as a string
func (p filePathFlag) String() string {
	return p.value
}

// Set validates and sets the flag's value, checking for valid file path format
func (p *filePathFlag) Set(value string) error {
	if len(value) == 0 || regexp.MustCompile(`^\s+$`).MatchString(value) {
		return fmt.Errorf("the %s flag cannot be empty or contain only whitespace", p.flagName)
	}

	if !validateFilePath(value) {
		platform := "POSIX/UNIX"
		if isWindows() {
			platform = "Windows"
		}
		return fmt.Errorf("the %s flag value '%s' is not a valid %s file path", p.flagName, value, platform)
	}

	p.value = value
	return nil
}

// Type returns the flag type as a string
func (p filePathFlag) Type() string {
	return "string"
}

// FlagName returns the flag's name for testing
func (p filePathFlag) FlagName() string {
	return p.flagName
}
