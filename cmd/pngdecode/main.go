// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command pngdecode inspects PNG files and dumps their decoded pixels.
package main

import (
	"os"
	"time"

	"github.com/bep/pngdecode"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	timeout  time.Duration
)

var rootCommand = &cobra.Command{
	Use:           "pngdecode",
	Short:         "Decode non-interlaced PNG images",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCommand.PersistentFlags().DurationVar(&timeout, "timeout", 0, "give up decoding after this long, 0 to never time out")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Error().Err(err).Msg("pngdecode failed")
		os.Exit(1)
	}
}

// decodeFile decodes filename, logging decoder warnings.
func decodeFile(filename string) (pngdecode.DecodeResult, error) {
	return pngdecode.DecodeFile(filename, pngdecode.Options{
		Timeout: timeout,
		Warnf: func(format string, args ...any) {
			log.Warn().Str("file", filename).Msgf(format, args...)
		},
	})
}
