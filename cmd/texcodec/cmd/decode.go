package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewvc/texcodec/texcodec"
)

// NewDecodeCmd builds the "decode" subcommand: read a container file
// written by "encode", run Decode16RGBA over every coefficient block, and
// reassemble the tiles into a PNG.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <in.texc> <out.png>",
		Short: "decode a texcodec coefficient container back to an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			defer in.Close()

			width, height, opts, coeffs, err := readContainer(in)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			cfg := texcodec.TilerConfig{
				ImageWidth: width, ImageHeight: height,
				Stride:     width * 4,
				TileWidth:  16, TileHeight: 16,
				BorderMode: texcodec.BorderClampToEdge,
			}
			wOut, hOut, n := cfg.TileCount()
			if n != len(coeffs) {
				return fmt.Errorf("decode: container has %d tiles, image geometry expects %d (%dx%d)", len(coeffs), n, wOut, hOut)
			}

			ts := &texcodec.TileSet{Config: cfg, Tiles: make([]*texcodec.Tile, 0, n)}
			defer ts.Release()

			i := 0
			for ty := 0; ty < hOut; ty++ {
				for tx := 0; tx < wOut; tx++ {
					t, err := texcodec.TileAlloc(cfg)
					if err != nil {
						return fmt.Errorf("decode: %w", err)
					}
					t.X, t.Y = tx, ty
					block := (*texcodec.RGBABlock)(t.Pixels)
					texcodec.Decode16RGBA(block, &coeffs[i], opts)
					ts.Tiles = append(ts.Tiles, t)
					i++
				}
			}

			out, err := ts.Reassemble()
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if err := writePNG(args[1], out, width, height); err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			slog.InfoContext(ctx, "decoded", "tiles", len(coeffs), "width", width, "height", height, "kernel", opts.Kernel.String())
			return nil
		},
	}
	return cmd
}
