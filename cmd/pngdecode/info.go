// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/cobra"
)

func init() {
	infoCommand := &cobra.Command{
		Use:   "info FILE",
		Short: "Log the header, chunks and text metadata of a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := decodeFile(args[0])
			if err != nil {
				return err
			}

			h := res.Header
			log.Info().
				Uint32("width", h.Width).
				Uint32("height", h.Height).
				Uint8("bitDepth", h.BitDepth).
				Stringer("colorType", h.ColorType).
				Int("pixelBytes", len(res.Pixels)).
				Msg(args[0])

			for _, c := range res.File.Chunks() {
				log.Debug().
					Int("offset", c.Offset).
					Uint32("length", c.Length).
					Bool("ancillary", c.IsAncillary()).
					Msgf("chunk %s", c.Type)
			}

			entries, err := res.File.Text()
			if err != nil {
				log.Warn().Err(err).Msg("reading text chunks")
			}
			for _, e := range entries {
				ev := log.Info().Stringer("chunk", e.Type).Str("keyword", e.Keyword)
				if e.Language != "" {
					ev = ev.Str("language", e.Language)
				}
				ev.Msg(e.Text)
			}

			x, err := res.File.EXIF()
			if err != nil {
				log.Warn().Err(err).Msg("reading eXIf chunk")
			}
			if x != nil {
				if tag, err := x.Get(exif.Orientation); err == nil {
					log.Info().Str("orientation", tag.String()).Msg("EXIF")
				}
			}

			return nil
		},
	}
	rootCommand.AddCommand(infoCommand)
}
