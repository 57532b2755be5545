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

package cmd

import (
	// standard library
	"fmt"
	"sort"
	"strings"

	// external
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/custom_flags"
	"github.com/louiss0/l2g/internal/completion"
)

const WITH_SHORTHAND = "with-shorthand"

// NewCompletionCmd creates the parent 'completion' command
func NewCompletionCmd() *cobra.Command {
	outputFileFlag := custom_flags.NewFilePathFlag("output")

	completionCmd := &cobra.Command{
		Use:   "completion <target>",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for l2g.

Supported targets:
  bash, zsh, fish, powershell, nushell

To install completion for your shell, run:

Bash:
		$ l2g completion bash > /etc/bash_completion.d/l2g

Zsh:
		# To load completions for each session, run:
		$ l2g completion zsh > "${fpath[1]}/_l2g"
		# You will need to start a new shell for this setup to take effect.

Fish:
		$ l2g completion fish > ~/.config/fish/completions/l2g.fish

PowerShell:
		PS> l2g completion powershell | Out-String | Invoke-Expression

Nushell:
		$ l2g completion nushell > ~/.config/nushell/completions/l2g_completions.nu
		# Then add 'source ~/.config/nushell/completions/l2g_completions.nu' to your env.nu or config.nu

Pass --with-shorthand to also emit shorthand alias functions (lgg, lgc, ...)
wired into the completion machinery.
`,
		DisableFlagsInUseLine: true, // Don't show global flags for completion command itself
		Args: func(cmd *cobra.Command, args []string) error {
			// Get supported shells from the generator for consistency
			generator := completion.NewGenerator()
			supportedShells := generator.SupportedShells()

			// Sort for consistent output and efficient lookup
			sort.Strings(supportedShells)

			supportedShellList := strings.Join(supportedShells, ", ")

			if len(args) != 1 {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("requires exactly one argument representing the target. Supported targets are: %s", supportedShellList))
			}

			target := args[0]

			idx := sort.SearchStrings(supportedShells, target)
			if idx >= len(supportedShells) || supportedShells[idx] != target {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("unsupported target: '%s'. Supported targets are: %s", target, supportedShellList))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := completion.NewGenerator()

			withShorthand, err := cmd.Flags().GetBool(WITH_SHORTHAND)

			if err != nil {
				return err
			}

			return generator.GenerateCompletion(cmd, args[0], outputFileFlag.String(), withShorthand)
		},
	}

	// Bind the custom flag type
	completionCmd.Flags().VarP(outputFileFlag, "output", "O", "Write completion script to a file instead of stdout")
	completionCmd.Flags().Bool(WITH_SHORTHAND, false, "Append shorthand alias functions to the completion output")

	return completionCmd
}
