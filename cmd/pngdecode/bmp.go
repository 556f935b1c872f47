// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
)

func init() {
	var output string

	bmpCommand := &cobra.Command{
		Use:   "bmp FILE",
		Short: "Convert an 8-bit PNG file to BMP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			res, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			img, err := toImage(res.Header, res.Pixels)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}()
			if err := bmp.Encode(f, img); err != nil {
				return err
			}
			log.Info().Msgf("wrote %s", output)
			return nil
		},
	}
	bmpCommand.Flags().StringVarP(&output, "output", "o", "", "output file")
	_ = bmpCommand.MarkFlagRequired("output")
	rootCommand.AddCommand(bmpCommand)
}
