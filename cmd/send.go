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
	"os"
	"strings"

	// external
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// internal
	"github.com/louiss0/l2g/custom_errors"
	"github.com/louiss0/l2g/env"
	"github.com/louiss0/l2g/services"
)

const ADDRESS_FLAG = "address"

// NewSendCmd creates the send command that streams an .nc file to a
// networked GRBL-style controller.
func NewSendCmd(newSenderService func(address string) services.SenderService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <file>",
		Short: "Stream an existing .nc file to a networked controller",
		Long: `Stream a G-code file to a GRBL-style controller over TCP, one line at a
time, waiting for each line to be acknowledged. The controller address comes
from --address or the ` + env.MACHINE_ADDR_ENV_VAR + ` environment variable.

Examples:
  l2g send build/koch_n3_s5.00_ia0.00_ai1.57.nc --address 192.168.1.40:23
  L2G_MACHINE_ADDR=192.168.1.40:23 l2g send build/hilbert_n5_s5.00_ia0.00_ai1.57.nc`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return custom_errors.CreateInvalidArgumentErrorWithMessage("requires exactly one G-code file path")
			}
			if !strings.HasSuffix(args[0], ".nc") {
				return custom_errors.CreateInvalidArgumentErrorWithMessage(
					fmt.Sprintf("%q does not look like a G-code file, expected a .nc extension", args[0]),
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			goEnv := getGoEnvFromCommandContext(cmd)
			debugExecutor := getDebugExecutorFromCommandContext(cmd)

			address, err := cmd.Flags().GetString(ADDRESS_FLAG)
			if err != nil {
				return err
			}
			if address == "" {
				address, _ = os.LookupEnv(env.MACHINE_ADDR_ENV_VAR)
			}
			if address == "" {
				return custom_errors.CreateInvalidFlagErrorWithMessage(
					custom_errors.FlagName(ADDRESS_FLAG),
					fmt.Sprintf("is required when %s is not set", env.MACHINE_ADDR_ENV_VAR),
				)
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			debugExecutor.LogDebugMessageIfDebugIsTrue(
				"Streaming program",
				"file", args[0],
				"address", address,
			)

			sender := newSenderService(address)
			linesSent, err := sender.Send(file)
			if err != nil {
				return err
			}

			goEnv.ExecuteIfModeIsProduction(func() {
				log.Info("Program streamed", "file", args[0], "lines", linesSent)
			})

			if goEnv.IsDevelopmentMode() {
				fmt.Fprintf(cmd.OutOrStdout(), "Sent %d lines to %s\n", linesSent, address)
			}

			return nil
		},
	}

	cmd.Flags().String(ADDRESS_FLAG, "", "TCP address of the machine controller, e.g. 192.168.1.40:23")

	return cmd
}
