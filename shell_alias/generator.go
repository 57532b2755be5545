// Package shell_alias provides functionality for generating shell alias functions
// and completion wiring for l2g subcommands across different shell types.
package shell_alias

import (
	"fmt"
	"sort"
	"strings"
)

// Shell represents the supported shell types for alias generation.
type Shell string

// Supported shell types
const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	Nushell    Shell = "nushell"
	PowerShell Shell = "powershell"
)

// Generator provides methods for generating shell alias functions with completion wiring.
type Generator interface {
	// GenerateBash generates bash alias functions and completion wiring.
	// Input: map[string][]string where keys are canonical subcommand names
	// and values are lists of shorthand names to generate functions for.
	GenerateBash(aliases map[string][]string) string

	// GenerateZsh generates zsh alias functions and completion wiring.
	GenerateZsh(aliases map[string][]string) string

	// GenerateFish generates fish alias functions and completion wiring.
	GenerateFish(aliases map[string][]string) string

	// GenerateNushell generates nushell alias functions and completion wiring.
	GenerateNushell(aliases map[string][]string) string

	// GeneratePowerShell generates PowerShell alias functions and completion wiring.
	GeneratePowerShell(aliases map[string][]string) string
}

// generator is the concrete implementation of the Generator interface.
type generator struct{}

// NewGenerator creates a new instance of the shell alias generator.
func NewGenerator() Generator {
	return &generator{}
}

// sortedSubcommands keeps generated scripts stable across runs.
func sortedSubcommands(aliases map[string][]string) []string {
	subcommands := make([]string, 0, len(aliases))
	for subcommand := range aliases {
		subcommands = append(subcommands, subcommand)
	}
	sort.Strings(subcommands)
	return subcommands
}

// GenerateBash generates bash alias functions and completion wiring.
func (g *generator) GenerateBash(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# l2g shorthand aliases\n")
	result.WriteString("command -v l2g > /dev/null || return 0\n\n")

	for _, subcommand := range sortedSubcommands(aliases) {
		for _, aliasName := range aliases[subcommand] {
			result.WriteString(fmt.Sprintf("function %s() { command l2g %s \"$@\"; }\n", aliasName, subcommand))
			result.WriteString(fmt.Sprintf("complete -F __start_l2g %s\n", aliasName))
			result.WriteString("\n")
		}
	}

	return result.String()
}

// GenerateZsh generates zsh alias functions and completion wiring.
func (g *generator) GenerateZsh(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# l2g shorthand aliases\n")
	result.WriteString("(( $+commands[l2g] )) || return\n\n")

	for _, subcommand := range sortedSubcommands(aliases) {
		for _, aliasName := range aliases[subcommand] {
			result.WriteString(fmt.Sprintf("%s() { l2g %s \"$@\"; }\n", aliasName, subcommand))
			result.WriteString(fmt.Sprintf("compdef _l2g %s\n", aliasName))
			result.WriteString("\n")
		}
	}

	return result.String()
}

// GenerateFish generates fish alias functions and completion wiring.
func (g *generator) GenerateFish(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# l2g shorthand aliases\n\n")

	for _, subcommand := range sortedSubcommands(aliases) {
		for _, aliasName := range aliases[subcommand] {
			result.WriteString(fmt.Sprintf("function %s\n", aliasName))
			result.WriteString(fmt.Sprintf("    l2g %s $argv\n", subcommand))
			result.WriteString("end\n")
			result.WriteString(fmt.Sprintf("complete -c %s -w l2g\n", aliasName))
			result.WriteString("\n")
		}
	}

	return result.String()
}

// GenerateNushell generates nushell alias functions and completion wiring.
func (g *generator) GenerateNushell(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# l2g shorthand aliases\n\n")

	for _, subcommand := range sortedSubcommands(aliases) {
		for _, aliasName := range aliases[subcommand] {
			result.WriteString(fmt.Sprintf("export extern \"%s\" [\n", aliasName))
			result.WriteString("    ...args: string\n")
			result.WriteString("]\n")
			result.WriteString(fmt.Sprintf("export def %s [...args] {\n", aliasName))
			result.WriteString(fmt.Sprintf("    l2g %s $args\n", subcommand))
			result.WriteString("}\n\n")
		}
	}

	return result.String()
}

// GeneratePowerShell generates PowerShell alias functions and completion wiring.
func (g *generator) GeneratePowerShell(aliases map[string][]string) string {
	var result strings.Builder

	result.WriteString("# l2g shorthand aliases\n\n")
	result.WriteString("if (-not (Get-Command l2g -ErrorAction SilentlyContinue)) {\n")
	result.WriteString("    return\n")
	result.WriteString("}\n\n")

	for _, subcommand := range sortedSubcommands(aliases) {
		for _, aliasName := range aliases[subcommand] {
			result.WriteString(fmt.Sprintf("function %s {\n", aliasName))
			result.WriteString(fmt.Sprintf("    l2g %s @args\n", subcommand))
			result.WriteString("}\n")
			result.WriteString(fmt.Sprintf("Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {\n", aliasName))
			result.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
			result.WriteString(fmt.Sprintf("    l2g __complete %s \"$wordToComplete\" | ForEach-Object { $_ }\n", subcommand))
			result.WriteString("}\n\n")
		}
	}

	return result.String()
}
