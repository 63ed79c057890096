package cmd

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewvc/texcodec/texcodec"
)

// NewEncodeCmd builds the "encode" subcommand: read a PNG, tile it into
// 16x16 blocks, run Encode16 over every block, and write the resulting
// coefficient streams to a zstd-compressed container file.
func NewEncodeCmd(ctx context.Context) *cobra.Command {
	var quality int
	var kernelName string

	cmd := &cobra.Command{
		Use:   "encode <in.png> <out.texc>",
		Short: "encode an image into a texcodec coefficient container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kernel, err := parseKernel(kernelName)
			if err != nil {
				return err
			}
			opts := texcodec.EncodeOptions{Quality: quality, Kernel: kernel}

			rgba, width, height, err := readImageAsRGBA(args[0])
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			cfg := texcodec.TilerConfig{
				ImageWidth: width, ImageHeight: height,
				Stride:     width * 4,
				TileWidth:  16, TileHeight: 16,
				BorderMode: texcodec.BorderClampToEdge,
			}

			ts, err := texcodec.NewTileSet(rgba, cfg)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			defer ts.Release()

			coeffs := make([]texcodec.CoefficientBlock, len(ts.Tiles))
			for i, t := range ts.Tiles {
				block := (*texcodec.RGBABlock)(t.Pixels)
				texcodec.Encode16(&coeffs[i], block, opts)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			defer out.Close()

			if err := writeContainer(out, ts, coeffs, opts); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			slog.InfoContext(ctx, "encoded", "batch", ts.BatchID, "tiles", len(ts.Tiles),
				"width", width, "height", height, "quality", quality, "kernel", kernel.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&quality, "quality", 85, "quality factor, 1-100")
	cmd.Flags().StringVar(&kernelName, "kernel", "float", "DCT kernel: float or int")
	return cmd
}

func parseKernel(name string) (texcodec.Kernel, error) {
	switch name {
	case "float", "":
		return texcodec.KernelFloatAAN, nil
	case "int", "integer":
		return texcodec.KernelIntegerBink2, nil
	default:
		return 0, fmt.Errorf("unknown kernel %q (want float or int)", name)
	}
}

// readImageAsRGBA decodes the PNG at path and returns its pixels as a
// tightly packed RGBA8 buffer (stride == width*4), converting through
// image/draw the way other_examples' codec tooling normalizes arbitrary
// image.Image inputs before tiling.
func readImageAsRGBA(path string) (pix []byte, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	if rgba.Stride == width*4 {
		return rgba.Pix, width, height, nil
	}

	tight := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		copy(tight[y*width*4:(y+1)*width*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+width*4])
	}
	return tight, width, height, nil
}

// writePNG writes an RGBA8 tightly packed buffer out as a PNG.
func writePNG(path string, pix []byte, width, height int) error {
	img := &image.RGBA{Pix: pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
