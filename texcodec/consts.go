// Package texcodec implements the core of a JPEG-like lossy block codec for
// real-time texture streaming: reversible YCoCg-R color conversion, 4:2:0
// chroma subsampling, a choice of two bit-exact 8x8 DCT kernels, and the
// quantization-table machinery that ties a quality factor to both.
package texcodec

// ZigZag maps a zig-zag stream position to its natural (row-major) index
// within an 8x8 block: ZigZag[k] is the natural index of the coefficient
// that belongs at stream position k. This is the classic JPEG "natural
// order" table; a forward emitter writes output[k] = coeffs[ZigZag[k]].
var ZigZag = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// ZigZagInverse is the inverse permutation of ZigZag: ZigZagInverse[n] gives
// the zig-zag stream position of the coefficient at natural index n.
var ZigZagInverse = inverseOf(ZigZag)

func inverseOf(perm [64]int) [64]int {
	var inv [64]int
	for pos, natural := range perm {
		inv[natural] = pos
	}
	return inv
}

// ApplyZigZag writes coeffs (natural order) into dst in zig-zag order.
func ApplyZigZag(dst, coeffs *[64]int16) {
	for k := 0; k < 64; k++ {
		dst[k] = coeffs[ZigZag[k]]
	}
}

// UndoZigZag is the inverse of ApplyZigZag: zigzag (stream order) into dst
// (natural order).
func UndoZigZag(dst, zigzag *[64]int16) {
	for k := 0; k < 64; k++ {
		dst[ZigZag[k]] = zigzag[k]
	}
}

// BaseLuma is the standard JPEG luma quantization table, natural order.
var BaseLuma = [64]int16{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// BaseChroma is the standard JPEG chroma quantization table, natural order.
var BaseChroma = [64]int16{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// AAN holds the eight Arai-Agui-Nakajima per-axis scale factors; the
// per-coefficient scale at (row,col) is AAN[row]*AAN[col].
var AAN = [8]float64{
	1.0, 1.387039845, 1.306562965, 1.175875602,
	1.0, 0.785694958, 0.541196100, 0.275899379,
}

// CSFUnity is the neutral contrast-sensitivity weighting (no perceptual
// reweighting): passing it to AANScaledQTable is equivalent to passing nil.
var CSFUnity = func() [64]float64 {
	var csf [64]float64
	for i := range csf {
		csf[i] = 1.0
	}
	return csf
}()
