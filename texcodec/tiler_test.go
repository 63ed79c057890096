package texcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestImage(w, h int) ([]byte, int) {
	stride := w * 4
	buf := make([]byte, h*stride)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*stride + x*4
			buf[off+0] = byte(x)
			buf[off+1] = byte(y)
			buf[off+2] = byte(x + y)
			buf[off+3] = 255
		}
	}
	return buf, stride
}

func TestTileCountCoversPartialEdgeTiles(t *testing.T) {
	cfg := TilerConfig{ImageWidth: 17, ImageHeight: 33, TileWidth: 16, TileHeight: 16}
	wOut, hOut, n := cfg.TileCount()
	require.Equal(t, 2, wOut)
	require.Equal(t, 3, hOut)
	require.Equal(t, 6, n)
}

func TestTileCountExactMultiple(t *testing.T) {
	cfg := TilerConfig{ImageWidth: 32, ImageHeight: 16, TileWidth: 16, TileHeight: 16}
	wOut, hOut, n := cfg.TileCount()
	require.Equal(t, 2, wOut)
	require.Equal(t, 1, hOut)
	require.Equal(t, 2, n)
}

func TestCopyTileInteriorMatchesSource(t *testing.T) {
	img, stride := makeTestImage(32, 32)
	cfg := TilerConfig{ImageWidth: 32, ImageHeight: 32, Stride: stride, TileWidth: 16, TileHeight: 16}

	tile, err := TileAlloc(cfg)
	require.NoError(t, err)
	defer TileFree(tile)

	require.NoError(t, CopyTile(tile, img, cfg, 1, 1))
	require.Equal(t, 0, tile.PadRight)
	require.Equal(t, 0, tile.PadBottom)

	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			srcX, srcY := 16+col, 16+row
			srcOff := srcY*stride + srcX*4
			dstOff := (row*16 + col) * 4
			require.Equal(t, img[srcOff:srcOff+4], tile.Pixels[dstOff:dstOff+4])
		}
	}
}

func TestCopyTileRejectsOutOfRangeIndex(t *testing.T) {
	img, stride := makeTestImage(16, 16)
	cfg := TilerConfig{ImageWidth: 16, ImageHeight: 16, Stride: stride, TileWidth: 16, TileHeight: 16}

	tile, err := TileAlloc(cfg)
	require.NoError(t, err)
	defer TileFree(tile)

	err = CopyTile(tile, img, cfg, 5, 0)
	require.Error(t, err)
	var codecErr *CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, ErrCodeInvalidIndex, codecErr.Code)
}

func TestCopyTileClampToEdgePadsOverhang(t *testing.T) {
	img, stride := makeTestImage(20, 20)
	cfg := TilerConfig{
		ImageWidth: 20, ImageHeight: 20, Stride: stride,
		TileWidth: 16, TileHeight: 16, BorderMode: BorderClampToEdge,
	}

	tile, err := TileAlloc(cfg)
	require.NoError(t, err)
	defer TileFree(tile)

	// Tile (1,1) covers source columns/rows [16,32), but the image is
	// only 20x20: 12 columns and 12 rows of overhang.
	require.NoError(t, CopyTile(tile, img, cfg, 1, 1))
	require.Equal(t, 12, tile.PadRight)
	require.Equal(t, 12, tile.PadBottom)

	// The bottom-right pixel should equal the image's own corner pixel
	// (19,19), clamped.
	cornerOff := 19*stride + 19*4
	dstOff := (15*16 + 15) * 4
	require.Equal(t, img[cornerOff:cornerOff+4], tile.Pixels[dstOff:dstOff+4])
}

func TestCopyTileConstantColorDoesNotFillInteriorOverhang(t *testing.T) {
	img, stride := makeTestImage(20, 20)
	cfg := TilerConfig{
		ImageWidth: 20, ImageHeight: 20, Stride: stride,
		TileWidth: 16, TileHeight: 16,
		BorderMode: BorderConstantColor, BorderColor: [4]byte{9, 9, 9, 9},
	}

	tile, err := TileAlloc(cfg)
	require.NoError(t, err)
	defer TileFree(tile)

	// Tile (1,1)'s bottom-right corner is interior pad overhang (Border
	// is 0, so there is no border ring at all): it must edge-duplicate
	// the image's own corner pixel, never the constant border color.
	require.NoError(t, CopyTile(tile, img, cfg, 1, 1))

	cornerOff := 19*stride + 19*4
	dstOff := (15*16 + 15) * 4
	require.Equal(t, img[cornerOff:cornerOff+4], tile.Pixels[dstOff:dstOff+4])
}

func TestCopyTileConstantColorFillsBorderRing(t *testing.T) {
	img, stride := makeTestImage(16, 16)
	cfg := TilerConfig{
		ImageWidth: 16, ImageHeight: 16, Stride: stride,
		TileWidth: 20, TileHeight: 20, Border: 2,
		BorderMode: BorderConstantColor, BorderColor: [4]byte{9, 9, 9, 9},
	}

	tile, err := TileAlloc(cfg)
	require.NoError(t, err)
	defer TileFree(tile)

	// Tile (0,0)'s interior covers the whole 16x16 image exactly, so its
	// 2-pixel border ring on every side falls entirely outside the image
	// and must be filled with the constant color, not edge-duplicated.
	require.NoError(t, CopyTile(tile, img, cfg, 0, 0))

	require.Equal(t, []byte{9, 9, 9, 9}, tile.Pixels[0:4]) // top-left corner of the ring
	dstOff := (19*20 + 19) * 4
	require.Equal(t, []byte{9, 9, 9, 9}, tile.Pixels[dstOff:dstOff+4]) // bottom-right corner of the ring
}

func TestCopyTileWithBorderOverlapsNeighborTile(t *testing.T) {
	img, stride := makeTestImage(64, 64)
	cfg := TilerConfig{
		ImageWidth: 64, ImageHeight: 64, Stride: stride,
		TileWidth: 20, TileHeight: 20, Border: 2, BorderMode: BorderClampToEdge,
	}

	tile, err := TileAlloc(cfg)
	require.NoError(t, err)
	defer TileFree(tile)

	// Interior is 16x16; tile (1,0)'s interior starts at source x=16,
	// so its border reaches back to x=14, well within the image.
	require.NoError(t, CopyTile(tile, img, cfg, 1, 0))

	srcX, srcY := 14, 0
	srcOff := srcY*stride + srcX*4
	require.Equal(t, img[srcOff:srcOff+4], tile.Pixels[0:4])
}

func TestNewTileSetReassembleRoundTrip(t *testing.T) {
	img, stride := makeTestImage(40, 24)
	cfg := TilerConfig{ImageWidth: 40, ImageHeight: 24, Stride: stride, TileWidth: 16, TileHeight: 16}

	ts, err := NewTileSet(img, cfg)
	require.NoError(t, err)
	defer ts.Release()

	wOut, hOut, n := cfg.TileCount()
	require.Equal(t, n, len(ts.Tiles))
	require.Equal(t, wOut*hOut, len(ts.Tiles))

	out, err := ts.Reassemble()
	require.NoError(t, err)
	require.Equal(t, img, out)
}

func TestTilerConfigValidateRejectsZeroBorderInnerSize(t *testing.T) {
	cfg := TilerConfig{ImageWidth: 16, ImageHeight: 16, Stride: 64, TileWidth: 4, TileHeight: 4, Border: 2}
	require.Error(t, cfg.Validate())
}
