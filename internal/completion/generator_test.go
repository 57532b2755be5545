package completion_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/onsi/ginkgo/v2"

	"github.com/louiss0/l2g/internal/completion"
)

// Helper to capture output when `filename` is empty (output to cmd.OutOrStdout())
func captureOutput(cmd *cobra.Command, f func() error) (string, error) {
	oldOut := cmd.OutOrStdout()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	defer cmd.SetOut(oldOut)
	err := f()
	return buf.String(), err
}

// Helper for tests that write to a file via the `filename` argument
func withTempFile(ginkgoT FullGinkgoTInterface, testFunc func(filename string) error) (string, error) {
	requires := require.New(ginkgoT)
	tmpfile, err := os.CreateTemp("", "l2g-completion-test-*.out")
	requires.NoError(err, "failed to create temporary file for test")

	filename := tmpfile.Name()
	requires.NoError(tmpfile.Close())
	defer func() {
		if rErr := os.Remove(filename); rErr != nil {
			ginkgoT.Logf("warning: failed to remove temporary file %s: %v", filename, rErr)
		}
	}()

	err = testFunc(filename)
	if err != nil {
		return "", err
	}

	content, readErr := os.ReadFile(filename)
	requires.NoError(readErr, "failed to read content from temporary file")
	return string(content), nil
}

// TestCompletionGenerator is the entry point for running Ginkgo specs.
func TestCompletionGenerator(t *testing.T) {
	RunSpecs(t, "Completion Generator Suite")
}

var _ = Describe("CompletionGenerator", func() {
	var generator completion.Generator
	var cmd *cobra.Command

	BeforeEach(func() {
		generator = completion.NewGenerator()
		cmd = &cobra.Command{Use: "l2g"}
	})

	Context("SupportedShells", func() {
		It("should return the correct list of supported shells", func() {
			asserts := assert.New(GinkgoT())
			shells := generator.SupportedShells()

			asserts.Len(shells, 5)
			asserts.Equal([]string{"bash", "fish", "nushell", "powershell", "zsh"}, shells)
		})
	})

	Context("DefaultAliasMapping", func() {
		It("should map every subcommand to its shorthands", func() {
			asserts := assert.New(GinkgoT())
			aliasMap := generator.DefaultAliasMapping()

			asserts.Contains(aliasMap, "generate")
			asserts.Contains(aliasMap, "compile")
			asserts.Contains(aliasMap, "figures")
			asserts.Contains(aliasMap, "preview")
			asserts.Contains(aliasMap, "stats")
			asserts.Contains(aliasMap, "send")

			asserts.Contains(aliasMap["generate"], "lgg")
			asserts.Contains(aliasMap["generate"], "l2g-generate")
			asserts.Contains(aliasMap["send"], "lgs")
		})
	})

	Context("GenerateCompletion", func() {
		It("should write a bash completion script to stdout", func() {
			asserts := assert.New(GinkgoT())

			output, err := captureOutput(cmd, func() error {
				return generator.GenerateCompletion(cmd, "bash", "", false)
			})

			asserts.NoError(err)
			asserts.Contains(output, "bash completion V2 for l2g")
		})

		It("should write a nushell extern stub", func() {
			asserts := assert.New(GinkgoT())

			output, err := captureOutput(cmd, func() error {
				return generator.GenerateCompletion(cmd, "nushell", "", false)
			})

			asserts.NoError(err)
			asserts.Contains(output, `export extern "l2g"`)
			asserts.Contains(output, "__complete")
		})

		It("should append shorthand aliases when asked", func() {
			asserts := assert.New(GinkgoT())

			output, err := captureOutput(cmd, func() error {
				return generator.GenerateCompletion(cmd, "zsh", "", true)
			})

			asserts.NoError(err)
			asserts.Contains(output, "compdef _l2g lgg")
			asserts.Contains(output, "lgc() { l2g compile")
		})

		It("should write the script to a file when given a filename", func() {
			asserts := assert.New(GinkgoT())

			content, err := withTempFile(GinkgoT(), func(filename string) error {
				return generator.GenerateCompletion(cmd, "fish", filename, false)
			})

			asserts.NoError(err)
			asserts.Contains(content, "fish completion for l2g")
		})

		It("should reject an unsupported shell", func() {
			asserts := assert.New(GinkgoT())

			err := generator.GenerateCompletion(cmd, "tcsh", "", false)

			asserts.Error(err)
			asserts.Contains(err.Error(), "unsupported shell")
		})
	})
})
