// Package custom_flags provides custom flag types for command-line argument parsing.
// It implements various flag types that can be used with the cobra CLI framework.
package custom_flags

import (
	"fmt"
	"math"
	"path"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/louiss0/l2g/build_info"
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/lsystem"
)

// Cross-platform path validation utilities

func isWindows() bool {
	return runtime.GOOS == "windows"
}

// validateFolderPath validates a folder path according to the current platform
func validateFolderPath(value string) bool {
	if isWindows() {
		return validateWindowsFolderPath(value)
	}
	return validatePosixFolderPath(value)
}

// validateWindowsFolderPath validates Windows folder paths
func validateWindowsFolderPath(value string) bool {
	trimmed := strings.TrimRight(value, "/\\")
	if trimmed != "" {
		lastComponent := trimmed
		if lastSlash := strings.LastIndexAny(trimmed, "/\\"); lastSlash != -1 {
			lastComponent = trimmed[lastSlash+1:]
		}

		// A file extension means it looks like a file, not a folder.
		if strings.Contains(lastComponent, ".") && lastComponent != "." && lastComponent != ".." {
			return false
		}
	}

	windowsFolderPathRegex := `^(?:[a-zA-Z]:[/\\]?|\\\\[^/\\:*?"<>|]+\\[^/\\:*?"<>|]+[/\\]?|\.{1,2}[/\\]?|[^/\\:*?"<>|]+)(?:[/\\][^/\\:*?"<>|]+)*[/\\]?$`
	match, _ := regexp.MatchString(windowsFolderPathRegex, value)
	if !match {
		return false
	}

	// CI accepts every path the regex accepts.
	if build_info.InCI() {
		return true
	}

	if value == "." || value == ".." {
		return true
	}

	if matched, _ := regexp.MatchString(`^[a-zA-Z]:$`, value); matched {
		return true
	}

	// Strict mode requires the trailing separator.
	return strings.HasSuffix(value, "/") || strings.HasSuffix(value, "\\")
}

// validatePosixFolderPath validates POSIX/UNIX folder paths
func validatePosixFolderPath(value string) bool {
	// Strict mode (default): requires a trailing slash unless it's just "/"
	posixUnixFolderPathStrict := `^(?:/?(?:[a-zA-Z0-9._-]+|\.{1,2})(?:/(?:[a-zA-Z0-9._-]+|\.{1,2}))*/|\/)$`
	// CI-relaxed mode: accepts with or without trailing slash
	posixUnixFolderPathRelaxed := `^(?:/?(?:[a-zA-Z0-9._-]+|\.{1,2})(?:/(?:[a-zA-Z0-9._-]+|\.{1,2}))*/?|\/)$`

	regexToUse := posixUnixFolderPathStrict
	if build_info.InCI() {
		regexToUse = posixUnixFolderPathRelaxed
	}

	match, _ := regexp.MatchString(regexToUse, value)
	return match
}

// Interfaces extending pflag.Value for testability

// FolderPathFlag extends pflag.Value for folder path flags
type FolderPathFlag interface {
	pflag.Value
	FlagName() string
}

// RangeFlag extends pflag.Value for bounded integer flags
type RangeFlag interface {
	pflag.Value
	FlagName() string
	Value() int
	Min() int
	Max() int
}

// UnionFlag extends pflag.Value for flags restricted to a fixed value set
type UnionFlag interface {
	pflag.Value
	FlagName() string
	AllowedValues() []string
}

// FloatFlag extends pflag.Value for finite floating point flags
type FloatFlag interface {
	pflag.Value
	FlagName() string
	Value() float64
	IsSet() bool
}

// AxiomFlag extends pflag.Value for L-system axiom strings
type AxiomFlag interface {
	pflag.Value
	FlagName() string
	Symbols() []lsystem.Symbol
}

// RulesFlag extends pflag.Value for repeatable L-system production rules
type RulesFlag interface {
	pflag.Value
	FlagName() string
	Rules() lsystem.Rules
}

// folderPathFlag represents a flag that must contain a valid folder path
type folderPathFlag struct {
	value    string
	flagName string
}

// NewFolderPathFlag creates a new FolderPathFlag with the given flag name
func NewFolderPathFlag(flagName string) FolderPathFlag {
	return &folderPathFlag{
		flagName: flagName,
	}
}

// String returns the flag's value as a string
func (p folderPathFlag) String() string {
	return p.value
}

// Set validates and sets the flag's value, checking for valid path format.
// File-like paths are always rejected; only trailing slash validation is relaxed in CI.
func (p *folderPathFlag) Set(value string) error {
	if len(value) == 0 || regexp.MustCompile(`^\s+$`).MatchString(value) {
		return fmt.Errorf("the %s flag cannot be empty or contain only whitespace", p.flagName)
	}

	if !isWindows() {
		trimmed := strings.TrimRight(value, "/")
		if trimmed != "" {
			base := path.Base(trimmed)
			ext := path.Ext(base)
			if ext != "" && base != "." && base != ".." {
				msg := "(must end with '/' unless it's just '/')"
				if build_info.InCI() {
					msg = ""
				}
				return fmt.Errorf("the %s flag value '%s' is not a valid POSIX/UNIX folder path %s", p.flagName, value, msg)
			}
		}
	}

	if !validateFolderPath(value) {
		platform := "POSIX/UNIX"
		msg := "(must end with '/' unless it's just '/')"
		if isWindows() {
			platform = "Windows"
			msg = ""
		} else if build_info.InCI() {
			msg = ""
		}
		return fmt.Errorf("the %s flag value '%s' is not a valid %s folder path %s", p.flagName, value, platform, msg)
	}

	p.value = value
	return nil
}

// Type returns the flag type as a string
func (p folderPathFlag) Type() string {
	return "string"
}

// FlagName returns the flag's name for testing
func (p folderPathFlag) FlagName() string {
	return p.flagName
}

// rangeFlag represents a flag that must be an integer within a specified range
type rangeFlag struct {
	value, min, max int
	flagName        string
}

// NewRangeFlag creates a new RangeFlag with the given flag name and range bounds
func NewRangeFlag(flagName string, min, max int) RangeFlag {
	if min > max {
		panic("min must be less than max")
	}
	if min < 0 || max < 0 {
		panic("min and max must be non-negative")
	}
	return &rangeFlag{
		min:      min,
		max:      max,
		flagName: flagName,
	}
}

// NewRangeFlagWithDefault creates a RangeFlag pre-set to a value inside the bounds
func NewRangeFlagWithDefault(flagName string, min, max, value int) RangeFlag {
	if value < min || value > max {
		panic("the default must be inside the bounds")
	}
	flag := &rangeFlag{min: min, max: max, flagName: flagName, value: value}
	return flag
}

// String returns the flag's value as a string
func (r rangeFlag) String() string {
	return fmt.Sprintf("%d", r.value)
}

// Value returns the flag's value as an int
func (r rangeFlag) Value() int {
	return r.value
}

// Set validates and sets the flag's value, ensuring it's within the allowed range
func (r *rangeFlag) Set(value string) error {
	match, err := regexp.MatchString(`^\d+$`, value)
	if err != nil {
		return err
	}
	if match {
		num, _ := strconv.Atoi(value)
		if num < r.min || num > r.max {
			return fmt.Errorf("%s flag must be between %d and %d", custom_errors.FlagName(r.flagName), r.min, r.max)
		}
		r.value = num
		return nil
	}
	return fmt.Errorf("%s flag must be an integer between %d and %d", custom_errors.FlagName(r.flagName), r.min, r.max)
}

// Type returns the flag type as a string
func (r rangeFlag) Type() string {
	return "string"
}

// FlagName returns the flag's name for testing
func (r rangeFlag) FlagName() string {
	return r.flagName
}

// Min returns the minimum value for testing
func (r rangeFlag) Min() int {
	return r.min
}

// Max returns the maximum value for testing
func (r rangeFlag) Max() int {
	return r.max
}

// unionFlag represents a flag that must be one of a predefined set of values
type unionFlag struct {
	value         string
	allowedValues []string
	flagName      string
}

// NewUnionFlag creates a new unionFlag with the given allowed values and flag name
func NewUnionFlag(allowedValues []string, flagName string) UnionFlag {
	return &unionFlag{
		allowedValues: allowedValues,
		flagName:      flagName,
	}
}

// String returns the flag's value as a string
func (u unionFlag) String() string {
	return u.value
}

// Set validates and sets the flag's value, ensuring it's one of the allowed values
func (u *unionFlag) Set(value string) error {
	match, err := regexp.MatchString(`^\S+$`, value)
	if err != nil {
		return err
	}
	if match && !lo.Contains(u.allowedValues, value) {
		return fmt.Errorf("%s flag must be one of %v", custom_errors.FlagName(u.flagName), u.allowedValues)
	}
	u.value = value
	return nil
}

// Type returns the flag type as a string
func (u unionFlag) Type() string {
	return "string"
}

// FlagName returns the flag's name for testing
func (u unionFlag) FlagName() string {
	return u.flagName
}

// AllowedValues returns the allowed values for testing
func (u unionFlag) AllowedValues() []string {
	return u.allowedValues
}

// floatFlag represents a flag that must be a finite floating point number
type floatFlag struct {
	value    float64
	set      bool
	flagName string
}

// NewFloatFlag creates a new FloatFlag with the given flag name
func NewFloatFlag(flagName string) FloatFlag {
	return &floatFlag{
		flagName: flagName,
	}
}

// String returns the flag's value as a string
func (f floatFlag) String() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

// Set validates and sets the flag's value, ensuring it's a finite number
func (f *floatFlag) Set(value string) error {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s flag must be a number, got '%s'", custom_errors.FlagName(f.flagName), value)
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return fmt.Errorf("%s flag must be a finite number", custom_errors.FlagName(f.flagName))
	}
	f.value = num
	f.set = true
	return nil
}

// Type returns the flag type as a string
func (f floatFlag) Type() string {
	return "float"
}

// Value returns the flag's value as a float64
func (f floatFlag) Value() float64 {
	return f.value
}

// IsSet reports whether the user supplied the flag, so presets can keep
// their defaults when they didn't.
func (f floatFlag) IsSet() bool {
	return f.set
}

// FlagName returns the flag's name for testing
func (f floatFlag) FlagName() string {
	return f.flagName
}

// axiomFlag represents a flag holding an L-system axiom string
type axiomFlag struct {
	value    string
	symbols  []lsystem.Symbol
	flagName string
}

// NewAxiomFlag creates a new AxiomFlag with the given flag name
func NewAxiomFlag(flagName string) AxiomFlag {
	return &axiomFlag{
		flagName: flagName,
	}
}

// String returns the flag's value as a string
func (a axiomFlag) String() string {
	return a.value
}

// Set validates and sets the flag's value against the L-system alphabet
func (a *axiomFlag) Set(value string) error {
	symbols, err := lsystem.ParseSymbols(value)
	if err != nil {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(a.flagName),
			err.Error(),
		)
	}
	a.value = value
	a.symbols = symbols
	return nil
}

// Type returns the flag type as a string
func (a axiomFlag) Type() string {
	return "string"
}

// Symbols returns the parsed axiom
func (a axiomFlag) Symbols() []lsystem.Symbol {
	return a.symbols
}

// FlagName returns the flag's name for testing
func (a axiomFlag) FlagName() string {
	return a.flagName
}

// rulesFlag accumulates repeatable HEAD=BODY production rules
type rulesFlag struct {
	values   []string
	rules    lsystem.Rules
	flagName string
}

// NewRulesFlag creates a new RulesFlag with the given flag name
func NewRulesFlag(flagName string) RulesFlag {
	return &rulesFlag{
		rules:    lsystem.Rules{},
		flagName: flagName,
	}
}

// String returns every rule the flag accumulated
func (r rulesFlag) String() string {
	return strings.Join(r.values, ",")
}

// Set parses one HEAD=BODY rule and adds it to the set. Repeating a head is
// rejected because the system is deterministic.
func (r *rulesFlag) Set(value string) error {
	head, body, err := lsystem.ParseRule(value)
	if err != nil {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(r.flagName),
			err.Error(),
		)
	}

	if _, exists := r.rules[head]; exists {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(r.flagName),
			fmt.Sprintf("already has a rule for %s", head),
		)
	}

	r.values = append(r.values, value)
	r.rules[head] = body
	return nil
}

// Type returns the flag type as a string
func (r rulesFlag) Type() string {
	return "string"
}

// Rules returns the accumulated production rules
func (r rulesFlag) Rules() lsystem.Rules {
	return r.rules
}

// FlagName returns the flag's name for testing
func (r rulesFlag) FlagName() string {
	return r.flagName
}
