// Package build_info defines all the build info that this repo needs
// All variables must be capitalised and must use the `BuildInfo` type
// All validation of individual types must be handled by the init function
package build_info

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// BuildInfo is a type alias for string, ensuring consistency.
type BuildInfo string

func (value BuildInfo) String() string {
	return string(value)
}

// Raw variables to be populated by LDFLAGS.
// They must be of type string and package-level.
// Initialize with default/placeholder values that indicate they weren't set.
var (
	rawCLI_VERSION = "dev"         // Default for local development, overridden by the release pipeline
	rawGO_MODE     = "development" // Default for local development
	rawBUILD_DATE  = "unknown"     // Default, will be overwritten by ldflags for releases
	// CI flag used exclusively to control behavior in CI (set via -ldflags)
	rawCI = "false"
)

// Public variables that expose the validated and potentially parsed values.
var (
	CLI_VERSION BuildInfo
	GO_MODE     BuildInfo
	BUILD_DATE  BuildInfo
	CI          BuildInfo // "true" or "false"
)

func init() {
	// Strip a leading 'v' so release tags and plain versions compare equal.
	processedVersion := rawCLI_VERSION
	if len(rawCLI_VERSION) > 0 && rawCLI_VERSION[0] == 'v' {
		processedVersion = rawCLI_VERSION[1:]
	}

	processedDate := rawBUILD_DATE
	if rawBUILD_DATE != "unknown" {
		if t, err := time.Parse(time.RFC3339, rawBUILD_DATE); err == nil {
			processedDate = t.Format("2006-01-02")
		}
	}

	CLI_VERSION = BuildInfo(processedVersion)
	GO_MODE = BuildInfo(rawGO_MODE)
	BUILD_DATE = BuildInfo(processedDate)
	CI = BuildInfo(rawCI)

	allowedModes := []string{"development", "production", "debug"}
	if !lo.Contains(allowedModes, GO_MODE.String()) {
		panic(fmt.Sprintf("build_info: invalid GO_MODE: '%s'. Must be one of: %v", GO_MODE.String(), allowedModes))
	}

	if CLI_VERSION.String() != "dev" {
		semverRegex := `^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|[0-9]*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|[0-9]*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`
		match, err := regexp.MatchString(semverRegex, CLI_VERSION.String())
		if err != nil {
			panic(fmt.Errorf("build_info: internal regex error for CLI_VERSION validation: %w", err))
		}
		if !match {
			panic(fmt.Sprintf("build_info: invalid CLI_VERSION format: '%s'. Must be a valid semver string (e.g., v1.2.3 or 1.2.3-beta.1)", CLI_VERSION.String()))
		}
	}

	if BUILD_DATE.String() == "unknown" {
		if GO_MODE.String() == "production" {
			panic("build_info: BUILD_DATE is 'unknown' in production mode. It must be set via ldflags.")
		}
	} else {
		_, err := time.Parse("2006-01-02", BUILD_DATE.String())
		if err != nil {
			panic(fmt.Sprintf("build_info: invalid BUILD_DATE format: '%s'. Must be YYYY-MM-DD or 'unknown': %v", BUILD_DATE.String(), err))
		}
	}

	if CI.String() != "true" && CI.String() != "false" {
		panic(fmt.Sprintf("build_info: invalid CI value: '%s'. Must be 'true' or 'false'", CI.String()))
	}
}

// GetVersion returns the application's CLI version.
func GetVersion() string {
	return CLI_VERSION.String()
}

// GetGoMode returns the application's Go environment mode.
func GetGoMode() string {
	return GO_MODE.String()
}

// GetBuildDate returns the build date.
func GetBuildDate() string {
	return BUILD_DATE.String()
}

// InCI returns true if the build is running with CI build flag enabled.
func InCI() bool {
	b, err := strconv.ParseBool(CI.String())
	if err != nil {
		return false
	}
	return b
}
