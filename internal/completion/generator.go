// Package completion provides shell completion generation logic for l2g
// commands, kept out of the cmd package so it can be tested on its own.
package completion

import (
	// standard library
	"fmt"
	"io"
	"os"

	// external
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/shell_alias"
)

// Generator provides methods for generating shell completions with optional shorthand aliases.
type Generator interface {
	// GenerateCompletion generates a completion script for the specified
	// shell and writes it to filename, or to the command's stdout when
	// filename is empty. If withShorthand is true, shorthand alias
	// functions are appended to the completion output.
	GenerateCompletion(cmd *cobra.Command, shell string, filename string, withShorthand bool) error

	// SupportedShells returns a list of supported shell names.
	SupportedShells() []string

	// DefaultAliasMapping returns the default alias mapping for shorthand generation.
	DefaultAliasMapping() map[string][]string
}

// generator is the concrete implementation of the Generator interface.
type generator struct {
	aliasGenerator shell_alias.Generator
}

// NewGenerator creates a new completion generator instance.
func NewGenerator() Generator {
	return &generator{
		aliasGenerator: shell_alias.NewGenerator(),
	}
}

// SupportedShells returns the list of supported shells.
func (g *generator) SupportedShells() []string {
	return []string{
		"bash",
		"fish",
		"nushell",
		"powershell",
		"zsh",
	}
}

// DefaultAliasMapping returns the default alias mapping for l2g commands.
func (g *generator) DefaultAliasMapping() map[string][]string {
	return map[string][]string{
		"generate": {"lgg", "l2g-generate"},
		"compile":  {"lgc", "l2g-compile"},
		"figures":  {"lgf", "l2g-figures"},
		"preview":  {"lgp", "l2g-preview"},
		"stats":    {"lgst", "l2g-stats"},
		"send":     {"lgs", "l2g-send"},
	}
}

// GenerateCompletion generates a completion script for the specified shell.
func (g *generator) GenerateCompletion(cmd *cobra.Command, shell string, filename string, withShorthand bool) error {
	var outputWriter io.Writer

	if filename == "" {
		outputWriter = cmd.OutOrStdout()
	} else {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", filename, err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close completion file %s: %v\n", filename, cerr)
			}
		}()
		outputWriter = file
	}

	root := cmd.Root()

	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(outputWriter, true)
	case "zsh":
		err = root.GenZshCompletion(outputWriter)
	case "fish":
		err = root.GenFishCompletion(outputWriter, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(outputWriter)
	case "nushell":
		// Cobra has no nushell generator; emit extern stubs that call
		// into the __complete machinery.
		_, err = io.WriteString(outputWriter, nushellCompletionScript())
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}

	if !withShorthand {
		return nil
	}

	aliases := g.DefaultAliasMapping()

	var shorthand string
	switch shell {
	case "bash":
		shorthand = g.aliasGenerator.GenerateBash(aliases)
	case "zsh":
		shorthand = g.aliasGenerator.GenerateZsh(aliases)
	case "fish":
		shorthand = g.aliasGenerator.GenerateFish(aliases)
	case "powershell":
		shorthand = g.aliasGenerator.GeneratePowerShell(aliases)
	case "nushell":
		shorthand = g.aliasGenerator.GenerateNushell(aliases)
	}

	_, err = io.WriteString(outputWriter, "\n"+shorthand)
	return err
}

func nushellCompletionScript() string {
	return `# l2g completions for nushell
def "nu-complete l2g" [context: string] {
    ^l2g __complete ($context | split row " " | skip 1) | lines | where $it != "" | parse "{value}\t{description}" | default "" description
}

export extern "l2g" [
    ...args: string@"nu-complete l2g"
]
`
}
