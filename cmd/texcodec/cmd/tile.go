package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andrewvc/texcodec/texcodec"
)

// NewTileCmd builds the "tile" subcommand: cut an image into tiles and
// reassemble it losslessly, exercising the tiler primitives (border
// handling, padding, pooled allocation) without going through the DCT
// pipeline. Useful for checking a border/mode combination in isolation.
func NewTileCmd(ctx context.Context) *cobra.Command {
	var tileWidth, tileHeight, border int
	var modeName string

	cmd := &cobra.Command{
		Use:   "tile <in.png> <out.png>",
		Short: "cut and reassemble an image through the tiler, untransformed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseBorderMode(modeName)
			if err != nil {
				return err
			}

			pix, width, height, err := readImageAsRGBA(args[0])
			if err != nil {
				return fmt.Errorf("tile: %w", err)
			}

			cfg := texcodec.TilerConfig{
				ImageWidth: width, ImageHeight: height,
				Stride:     width * 4,
				TileWidth:  tileWidth, TileHeight: tileHeight,
				Border: border, BorderMode: mode,
			}

			ts, err := texcodec.NewTileSet(pix, cfg)
			if err != nil {
				return fmt.Errorf("tile: %w", err)
			}
			defer ts.Release()

			out, err := ts.Reassemble()
			if err != nil {
				return fmt.Errorf("tile: %w", err)
			}

			if err := writePNG(args[1], out, width, height); err != nil {
				return fmt.Errorf("tile: %w", err)
			}

			wOut, hOut, n := cfg.TileCount()
			slog.InfoContext(ctx, "tiled", "batch", ts.BatchID, "tiles_x", wOut, "tiles_y", hOut, "tiles", n)
			return nil
		},
	}

	cmd.Flags().IntVar(&tileWidth, "tile-width", 16, "tile width in pixels")
	cmd.Flags().IntVar(&tileHeight, "tile-height", 16, "tile height in pixels")
	cmd.Flags().IntVar(&border, "border", 0, "border width in pixels on each side")
	cmd.Flags().StringVar(&modeName, "mode", "clamp", "border mode: clamp or constant")
	return cmd
}

func parseBorderMode(name string) (texcodec.BorderMode, error) {
	switch name {
	case "clamp", "":
		return texcodec.BorderClampToEdge, nil
	case "constant":
		return texcodec.BorderConstantColor, nil
	default:
		return 0, fmt.Errorf("unknown border mode %q (want clamp or constant)", name)
	}
}
