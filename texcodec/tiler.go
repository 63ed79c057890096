package texcodec

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// BorderMode controls how the tiler fills pixels of a tile's border ring
// that fall outside the source image. Pixels past the right/bottom edge of
// a tile's interior region are always edge-duplicated, whatever the mode.
type BorderMode int

const (
	BorderClampToEdge BorderMode = iota
	BorderConstantColor
)

// TilerConfig describes a source image and how to cut it into
// TileWidth x TileHeight tiles, each carrying a Border-pixel-wide ring of
// context sampled from (or synthesized around) neighboring image data.
// Border is 0 for the plain 16x16 block codec path; a nonzero border lets
// a caller hand tiles with filter context to code that reads past a
// block's own edge.
type TilerConfig struct {
	ImageWidth, ImageHeight int
	Stride                  int // source row length in bytes, >= ImageWidth*4
	TileWidth, TileHeight   int
	Border                  int
	BorderMode              BorderMode
	BorderColor             [4]byte // used only when BorderMode == BorderConstantColor
}

// innerSize returns the interior (non-border) region of one tile.
func (cfg TilerConfig) innerSize() (int, int) {
	return cfg.TileWidth - 2*cfg.Border, cfg.TileHeight - 2*cfg.Border
}

// Validate checks cfg for the preconditions TileCount and CopyTile rely on.
func (cfg TilerConfig) Validate() error {
	if cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0 {
		return newCodecError(ErrCodeInvalidConfig, "tiler: image dimensions must be positive, got %dx%d", cfg.ImageWidth, cfg.ImageHeight)
	}
	if cfg.Stride < cfg.ImageWidth*4 {
		return newCodecError(ErrCodeInvalidConfig, "tiler: stride %d too small for width %d", cfg.Stride, cfg.ImageWidth)
	}
	innerW, innerH := cfg.innerSize()
	if innerW <= 0 || innerH <= 0 {
		return newCodecError(ErrCodeInvalidConfig, "tiler: tile %dx%d too small for border %d", cfg.TileWidth, cfg.TileHeight, cfg.Border)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// TileCount returns how many tiles, in each dimension and total, cover
// cfg's image, given inner_w = TileWidth-2*Border and inner_h =
// TileHeight-2*Border: w_out = ceil(ImageWidth/inner_w), and likewise for
// h_out.
func (cfg TilerConfig) TileCount() (wOut, hOut, n int) {
	innerW, innerH := cfg.innerSize()
	wOut = ceilDiv(cfg.ImageWidth, innerW)
	hOut = ceilDiv(cfg.ImageHeight, innerH)
	n = wOut * hOut
	return
}

// Tile holds one tile's pixels plus the clamp bookkeeping CopyTile
// produced while building it: PadRight/PadBottom record how many columns
// and rows of the tile's interior extended past the image and were
// edge-extended rather than sourced directly.
type Tile struct {
	X, Y                int // tile coordinates, not pixel position
	PadRight, PadBottom int
	Pixels              []byte // TileWidth*TileHeight*4 bytes, row-major
}

var tilePool = sync.Pool{New: func() any { return new([]byte) }}

// TileAlloc returns a Tile sized for cfg, with Pixels drawn from a shared
// pool to avoid a fresh allocation per tile in a tight encode loop. The
// caller must release it with TileFree once done.
func TileAlloc(cfg TilerConfig) (*Tile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	need := cfg.TileWidth * cfg.TileHeight * 4
	bufp, _ := tilePool.Get().(*[]byte)
	buf := *bufp
	if cap(buf) < need {
		buf = make([]byte, need)
	} else {
		buf = buf[:need]
	}
	return &Tile{Pixels: buf}, nil
}

// TileFree returns t's pixel buffer to the shared pool. t must not be
// used again afterward.
func TileFree(t *Tile) {
	if t == nil || t.Pixels == nil {
		return
	}
	buf := t.Pixels
	t.Pixels = nil
	tilePool.Put(&buf)
}

// CopyTile fills t (previously sized by TileAlloc, or any Tile with a
// Pixels buffer of the right length) with the tile at tile coordinates
// (tx,ty) from src, a full RGBA8 image buffer laid out per cfg. Per
// spec, a tile row is built as: Border pixels of left border, the
// interior's real source columns, pad_right columns that duplicate the
// last real source column (edge-extend, unconditionally), then Border
// pixels of right border — and likewise top/bottom for rows. Only the
// Border-pixel ring honors BorderMode; pad_right/pad_bottom overhang
// inside the interior always edge-duplicates regardless of BorderMode.
func CopyTile(t *Tile, src []byte, cfg TilerConfig, tx, ty int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	wOut, hOut, _ := cfg.TileCount()
	if tx < 0 || tx >= wOut || ty < 0 || ty >= hOut {
		return newCodecError(ErrCodeInvalidIndex, "tiler: tile (%d,%d) out of range (%d,%d)", tx, ty, wOut, hOut)
	}
	need := cfg.TileWidth * cfg.TileHeight * 4
	if len(t.Pixels) != need {
		return newCodecError(ErrCodeInvalidConfig, "tiler: tile buffer has %d bytes, need %d", len(t.Pixels), need)
	}

	innerW, innerH := cfg.innerSize()
	sourceX := tx*innerW - cfg.Border
	sourceY := ty*innerH - cfg.Border

	t.X, t.Y = tx, ty
	t.PadRight = max(0, tx*innerW+innerW-cfg.ImageWidth)
	t.PadBottom = max(0, ty*innerH+innerH-cfg.ImageHeight)
	sourceW := innerW - t.PadRight
	sourceH := innerH - t.PadBottom

	for row := 0; row < cfg.TileHeight; row++ {
		dstRowOff := row * cfg.TileWidth * 4
		rowIsBorder := row < cfg.Border || row >= cfg.TileHeight-cfg.Border
		irow := row - cfg.Border

		for col := 0; col < cfg.TileWidth; col++ {
			colIsBorder := col < cfg.Border || col >= cfg.TileWidth-cfg.Border

			var px [4]byte
			if rowIsBorder || colIsBorder {
				px = cfg.sampleAt(src, sourceX+col, sourceY+row)
			} else {
				icol := min(col-cfg.Border, sourceW-1)
				jrow := min(irow, sourceH-1)
				off := (ty*innerH+jrow)*cfg.Stride + (tx*innerW+icol)*4
				copy(px[:], src[off:off+4])
			}

			off := dstRowOff + col*4
			copy(t.Pixels[off:off+4], px[:])
		}
	}
	return nil
}

// sampleAt resolves a border-ring pixel at image-space coordinates (x,y),
// which may fall outside [0,ImageWidth)x[0,ImageHeight). Only called for
// pixels CopyTile has already identified as part of the Border-pixel
// ring, never for interior pad overhang.
func (cfg TilerConfig) sampleAt(src []byte, x, y int) [4]byte {
	if x >= 0 && x < cfg.ImageWidth && y >= 0 && y < cfg.ImageHeight {
		var px [4]byte
		off := y*cfg.Stride + x*4
		copy(px[:], src[off:off+4])
		return px
	}
	if cfg.BorderMode == BorderConstantColor {
		return cfg.BorderColor
	}
	if x < 0 {
		x = 0
	} else if x >= cfg.ImageWidth {
		x = cfg.ImageWidth - 1
	}
	if y < 0 {
		y = 0
	} else if y >= cfg.ImageHeight {
		y = cfg.ImageHeight - 1
	}
	var px [4]byte
	off := y*cfg.Stride + x*4
	copy(px[:], src[off:off+4])
	return px
}

// PasteTile writes a tile's interior region (excluding its border ring)
// back into dst, a full RGBA8 image buffer laid out per cfg, clipping
// against the image edges. This is the inverse of CopyTile's interior
// placement; there is nothing to invert for border or overhang pixels,
// since those were synthesized rather than sourced.
func PasteTile(dst []byte, cfg TilerConfig, t *Tile) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	innerW, innerH := cfg.innerSize()
	originX := t.X * innerW
	originY := t.Y * innerH

	for row := 0; row < innerH; row++ {
		dstY := originY + row
		if dstY >= cfg.ImageHeight {
			continue
		}
		srcRow := (row + cfg.Border) * cfg.TileWidth * 4
		for col := 0; col < innerW; col++ {
			dstX := originX + col
			if dstX >= cfg.ImageWidth {
				continue
			}
			srcOff := srcRow + (col+cfg.Border)*4
			dstOff := dstY*cfg.Stride + dstX*4
			copy(dst[dstOff:dstOff+4], t.Pixels[srcOff:srcOff+4])
		}
	}
	return nil
}

// TileSet is a convenience batch driver that cuts an entire image into
// every tile TileCount describes up front, tagging the batch with a
// random ID so callers can correlate log lines or queue messages across
// a batch's lifetime.
type TileSet struct {
	BatchID uuid.UUID
	Config  TilerConfig
	Tiles   []*Tile
}

// NewTileSet cuts src into every tile cfg.TileCount() describes, in
// row-major order (y outer, x inner).
func NewTileSet(src []byte, cfg TilerConfig) (*TileSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	wOut, hOut, n := cfg.TileCount()
	ts := &TileSet{
		BatchID: uuid.New(),
		Config:  cfg,
		Tiles:   make([]*Tile, 0, n),
	}
	for y := 0; y < hOut; y++ {
		for x := 0; x < wOut; x++ {
			t, err := TileAlloc(cfg)
			if err != nil {
				return nil, err
			}
			if err := CopyTile(t, src, cfg, x, y); err != nil {
				return nil, err
			}
			ts.Tiles = append(ts.Tiles, t)
		}
	}
	return ts, nil
}

// Reassemble writes every tile (presumably round-tripped through
// Encode16/Decode16RGBA by the caller) back into a freshly allocated
// image buffer sized per ts.Config.
func (ts *TileSet) Reassemble() ([]byte, error) {
	out := make([]byte, ts.Config.ImageHeight*ts.Config.Stride)
	for _, t := range ts.Tiles {
		if err := PasteTile(out, ts.Config, t); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Release returns every tile's buffer to the shared pool. The TileSet
// must not be used again afterward.
func (ts *TileSet) Release() {
	for _, t := range ts.Tiles {
		TileFree(t)
	}
	ts.Tiles = nil
}

func (ts *TileSet) String() string {
	wOut, hOut, _ := ts.Config.TileCount()
	return fmt.Sprintf("TileSet{batch=%s tiles=%dx%d}", ts.BatchID, wOut, hOut)
}
