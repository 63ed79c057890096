package cmd

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/andrewvc/texcodec/texcodec"
)

// containerMagic identifies a texcodec container stream.
const containerMagic = "TXC1"

// writeContainer serializes a TileSet's encoded coefficients, zstd-
// compressed, to w. Layout: magic(4) + width(u32) + height(u32) +
// quality(u8) + kernel(u8) + tileCount(u32), then for each tile, in
// order: 768 bytes of zig-zag-ordered Y/Co/Cg coefficients (256+64+64
// int16 values) followed by the 256-byte raw alpha plane.
func writeContainer(w io.Writer, ts *texcodec.TileSet, coeffs []texcodec.CoefficientBlock, opts texcodec.EncodeOptions) error {
	if len(coeffs) != len(ts.Tiles) {
		return fmt.Errorf("container: %d coefficient blocks for %d tiles", len(coeffs), len(ts.Tiles))
	}

	var header [18]byte
	copy(header[0:4], containerMagic)
	binary.LittleEndian.PutUint32(header[4:8], uint32(ts.Config.ImageWidth))
	binary.LittleEndian.PutUint32(header[8:12], uint32(ts.Config.ImageHeight))
	header[12] = byte(opts.Quality)
	header[13] = byte(opts.Kernel)
	binary.LittleEndian.PutUint32(header[14:18], uint32(len(coeffs)))

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("container: open zstd writer: %w", err)
	}
	defer zw.Close()

	if _, err := zw.Write(header[:]); err != nil {
		return fmt.Errorf("container: write header: %w", err)
	}

	var yBuf, coBuf, cgBuf [256 * 2]byte // oversized for Y; reused per-tile below
	for i := range coeffs {
		c := &coeffs[i]
		if err := texcodec.SerializeZigzag(yBuf[0:128], asArray64(c.Y[0:64])); err != nil {
			return err
		}
		if _, err := zw.Write(yBuf[0:128]); err != nil {
			return err
		}
		for q := 1; q < 4; q++ {
			if err := texcodec.SerializeZigzag(yBuf[0:128], asArray64(c.Y[q*64:q*64+64])); err != nil {
				return err
			}
			if _, err := zw.Write(yBuf[0:128]); err != nil {
				return err
			}
		}
		if err := texcodec.SerializeZigzag(coBuf[0:128], &c.Co); err != nil {
			return err
		}
		if _, err := zw.Write(coBuf[0:128]); err != nil {
			return err
		}
		if err := texcodec.SerializeZigzag(cgBuf[0:128], &c.Cg); err != nil {
			return err
		}
		if _, err := zw.Write(cgBuf[0:128]); err != nil {
			return err
		}
		if _, err := zw.Write(c.Alpha[:]); err != nil {
			return err
		}
	}
	return nil
}

// readContainer is the inverse of writeContainer.
func readContainer(r io.Reader) (width, height int, opts texcodec.EncodeOptions, coeffs []texcodec.CoefficientBlock, err error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, 0, opts, nil, fmt.Errorf("container: open zstd reader: %w", err)
	}
	defer zr.Close()

	var header [18]byte
	if _, err := io.ReadFull(zr, header[:]); err != nil {
		return 0, 0, opts, nil, fmt.Errorf("container: read header: %w", err)
	}
	if string(header[0:4]) != containerMagic {
		return 0, 0, opts, nil, fmt.Errorf("container: bad magic %q", header[0:4])
	}

	width = int(binary.LittleEndian.Uint32(header[4:8]))
	height = int(binary.LittleEndian.Uint32(header[8:12]))
	opts = texcodec.EncodeOptions{Quality: int(header[12]), Kernel: texcodec.Kernel(header[13])}
	n := int(binary.LittleEndian.Uint32(header[14:18]))

	coeffs = make([]texcodec.CoefficientBlock, n)
	var scratch [128]byte
	for i := range coeffs {
		c := &coeffs[i]
		for q := 0; q < 4; q++ {
			if _, err := io.ReadFull(zr, scratch[:]); err != nil {
				return 0, 0, opts, nil, fmt.Errorf("container: read tile %d luma %d: %w", i, q, err)
			}
			var quad [64]int16
			if err := texcodec.DeserializeZigzag(&quad, scratch[:]); err != nil {
				return 0, 0, opts, nil, err
			}
			copy(c.Y[q*64:q*64+64], quad[:])
		}
		if _, err := io.ReadFull(zr, scratch[:]); err != nil {
			return 0, 0, opts, nil, fmt.Errorf("container: read tile %d Co: %w", i, err)
		}
		if err := texcodec.DeserializeZigzag(&c.Co, scratch[:]); err != nil {
			return 0, 0, opts, nil, err
		}
		if _, err := io.ReadFull(zr, scratch[:]); err != nil {
			return 0, 0, opts, nil, fmt.Errorf("container: read tile %d Cg: %w", i, err)
		}
		if err := texcodec.DeserializeZigzag(&c.Cg, scratch[:]); err != nil {
			return 0, 0, opts, nil, err
		}
		if _, err := io.ReadFull(zr, c.Alpha[:]); err != nil {
			return 0, 0, opts, nil, fmt.Errorf("container: read tile %d alpha: %w", i, err)
		}
	}
	return width, height, opts, coeffs, nil
}

// asArray64 reinterprets a 64-element int16 slice as a *[64]int16 without
// copying. Go's slice-to-array-pointer conversion panics at run time if
// the slice is shorter than 64; every caller passes a 64-element
// CoefficientBlock.Y quadrant.
func asArray64(s []int16) *[64]int16 {
	return (*[64]int16)(s)
}
