// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	var output string

	pixelsCommand := &cobra.Command{
		Use:   "pixels FILE",
		Short: "Write the unfiltered pixel rows of a PNG file",
		Long:  "Write the unfiltered pixel rows of a PNG file to --output, or to stdout if not set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(res.Pixels)
				return err
			}
			if err := os.WriteFile(output, res.Pixels, 0o644); err != nil {
				return err
			}
			log.Info().Int("bytes", len(res.Pixels)).Msgf("wrote %s", output)
			return nil
		},
	}
	pixelsCommand.Flags().StringVarP(&output, "output", "o", "", "output file")
	rootCommand.AddCommand(pixelsCommand)
}
