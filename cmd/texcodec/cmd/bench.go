package cmd

import (
	"bytes"
	"compress/flate"
	"context"
	"fmt"
	"log/slog"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/andrewvc/texcodec/texcodec"
)

// NewBenchCmd builds the "bench" subcommand: encode an image across a
// quality sweep and compare two generic byte-stream compressors —
// klauspost/compress/zstd and stdlib compress/flate — over the same raw
// serialized coefficient bytes, reporting compressed size per backend
// per quality step.
func NewBenchCmd(ctx context.Context) *cobra.Command {
	var kernelName string

	cmd := &cobra.Command{
		Use:   "bench <in.png>",
		Short: "compare compression backends over a coefficient stream across a quality sweep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kernel, err := parseKernel(kernelName)
			if err != nil {
				return err
			}

			pix, width, height, err := readImageAsRGBA(args[0])
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			cfg := texcodec.TilerConfig{
				ImageWidth: width, ImageHeight: height,
				Stride:     width * 4,
				TileWidth:  16, TileHeight: 16,
				BorderMode: texcodec.BorderClampToEdge,
			}

			for _, quality := range []int{10, 30, 50, 70, 90} {
				opts := texcodec.EncodeOptions{Quality: quality, Kernel: kernel}

				ts, err := texcodec.NewTileSet(pix, cfg)
				if err != nil {
					return fmt.Errorf("bench: %w", err)
				}

				raw, err := serializeCoefficientsRaw(ts, opts)
				ts.Release()
				if err != nil {
					return fmt.Errorf("bench: %w", err)
				}

				flateSize, err := benchFlate(raw)
				if err != nil {
					return fmt.Errorf("bench: flate: %w", err)
				}
				zstdSize, err := benchZstd(raw)
				if err != nil {
					return fmt.Errorf("bench: zstd: %w", err)
				}

				slog.InfoContext(ctx, "bench",
					"quality", quality, "kernel", kernel.String(),
					"raw_bytes", len(raw), "flate_bytes", flateSize, "zstd_bytes", zstdSize)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kernelName, "kernel", "float", "DCT kernel: float or int")
	return cmd
}

// serializeCoefficientsRaw encodes every tile and concatenates its
// zig-zag-ordered coefficients and alpha plane, uncompressed — the input
// both bench backends compete over.
func serializeCoefficientsRaw(ts *texcodec.TileSet, opts texcodec.EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	var scratch [128]byte
	for _, t := range ts.Tiles {
		block := (*texcodec.RGBABlock)(t.Pixels)
		var coef texcodec.CoefficientBlock
		texcodec.Encode16(&coef, block, opts)

		for q := 0; q < 4; q++ {
			if err := texcodec.SerializeZigzag(scratch[:], asArray64(coef.Y[q*64:q*64+64])); err != nil {
				return nil, err
			}
			buf.Write(scratch[:])
		}
		if err := texcodec.SerializeZigzag(scratch[:], &coef.Co); err != nil {
			return nil, err
		}
		buf.Write(scratch[:])
		if err := texcodec.SerializeZigzag(scratch[:], &coef.Cg); err != nil {
			return nil, err
		}
		buf.Write(scratch[:])
		buf.Write(coef.Alpha[:])
	}
	return buf.Bytes(), nil
}

// benchFlate is the stdlib baseline: plain DEFLATE at best-compression
// level, with no domain knowledge of the coefficient stream's structure.
func benchFlate(data []byte) (int, error) {
	var out bytes.Buffer
	fw, err := flate.NewWriter(&out, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := fw.Write(data); err != nil {
		return 0, err
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}
	return out.Len(), nil
}

func benchZstd(data []byte) (int, error) {
	var out bytes.Buffer
	zw, err := zstd.NewWriter(&out)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(data); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return out.Len(), nil
}
