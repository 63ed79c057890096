package texcodec

// Kernel selects which of the two DCT implementations a stream uses. The
// choice is a stream-wide property recorded alongside the quality factor —
// blocks encoded with one kernel must be decoded with the same kernel;
// nothing in this package mixes kernels within a single block.
type Kernel int

const (
	KernelFloatAAN Kernel = iota
	KernelIntegerBink2
)

func (k Kernel) String() string {
	switch k {
	case KernelFloatAAN:
		return "FloatAAN"
	case KernelIntegerBink2:
		return "IntegerBink2"
	default:
		return "Unknown"
	}
}

// EncodeOptions bundles the quality factor and kernel choice that
// QTables*/Encode16/Decode16* need. Quality is clamped to [1,100] by
// QualityScale; it is never an error to pass an out-of-range value.
type EncodeOptions struct {
	Quality int
	Kernel  Kernel
}

// FloatQTables holds the pair of AA&N-scaled float quantization tables
// (luma and chroma) needed for one direction (encode or decode) of the
// float kernel.
type FloatQTables struct {
	Luma, Chroma [64]float64
}

// IntQTables holds the pair of integer quantization tables for one
// direction of the integer kernel. Forward and inverse tables are
// identical for this kernel (see QTablesEncodeInt).
type IntQTables struct {
	Luma, Chroma [64]int16
}

// EncodeQTables derives the quantization tables this EncodeOptions' kernel
// needs for Encode16.
func (o EncodeOptions) EncodeQTables() (FloatQTables, IntQTables) {
	switch o.Kernel {
	case KernelIntegerBink2:
		ly, lc := QTablesEncodeInt(o.Quality)
		return FloatQTables{}, IntQTables{Luma: ly, Chroma: lc}
	default:
		ly, lc := QTablesEncodeFloat(o.Quality)
		return FloatQTables{Luma: ly, Chroma: lc}, IntQTables{}
	}
}

// DecodeQTables derives the quantization tables this EncodeOptions' kernel
// needs for Decode16RGBA/Decode16RGB.
func (o EncodeOptions) DecodeQTables() (FloatQTables, IntQTables) {
	switch o.Kernel {
	case KernelIntegerBink2:
		ly, lc := QTablesDecodeInt(o.Quality)
		return FloatQTables{}, IntQTables{Luma: ly, Chroma: lc}
	default:
		ly, lc := QTablesDecodeFloat(o.Quality)
		return FloatQTables{Luma: ly, Chroma: lc}, IntQTables{}
	}
}

// CoefficientBlock holds one 16x16 block's encoded form: 4 luma 8x8
// blocks packed contiguously (256 entries), one Co and one Cg 8x8 block,
// and the untransformed 16x16 alpha plane.
type CoefficientBlock struct {
	Y     [256]int16
	Co    [64]int16
	Cg    [64]int16
	Alpha AlphaBlock
}

var quadrantOrder = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} // (qx,qy), flattened index qy*2+qx

// Encode16 runs the full 16x16 block encode pipeline: color-space
// conversion, 4:2:0 chroma subsampling, and per-subblock forward DCT with
// quantization, dispatched to the kernel named in opts.
func Encode16(out *CoefficientBlock, rgba *RGBABlock, opts EncodeOptions) {
	var ycocg YCoCgBlock
	RGBABlockToYCoCgA(&ycocg, &out.Alpha, rgba)

	switch opts.Kernel {
	case KernelIntegerBink2:
		encode16Int(out, &ycocg, opts.Quality)
	default:
		encode16Float(out, &ycocg, opts.Quality)
	}
}

func encode16Float(out *CoefficientBlock, ycocg *YCoCgBlock, quality int) {
	qfy, qfc := QTablesEncodeFloat(quality)

	for k, q := range quadrantOrder {
		qx, qy := q[0], q[1]
		var samp [64]int16
		SubBlock(&samp, ycocg, qx, qy, ChannelY)

		var fsamp, fcoef [64]float64
		centerInt16(&fsamp, &samp)
		FDCTFloatQ(&fcoef, &fsamp, &qfy)
		roundCoeffToInt16(out.Y[k*64:k*64+64], &fcoef)
	}

	encodeChromaFloat(out.Co[:], ycocg, ChannelCo, &qfc)
	encodeChromaFloat(out.Cg[:], ycocg, ChannelCg, &qfc)
}

func encodeChromaFloat(dst []int16, ycocg *YCoCgBlock, channel int, qfc *[64]float64) {
	var samp [64]int16
	Subsample(&samp, ycocg, channel)

	var fsamp, fcoef [64]float64
	centerInt16(&fsamp, &samp)
	FDCTFloatQ(&fcoef, &fsamp, qfc)
	roundCoeffToInt16(dst, &fcoef)
}

func encode16Int(out *CoefficientBlock, ycocg *YCoCgBlock, quality int) {
	qiy, qic := QTablesEncodeInt(quality)

	for k, q := range quadrantOrder {
		qx, qy := q[0], q[1]
		var samp [64]int16
		SubBlock(&samp, ycocg, qx, qy, ChannelY)

		var coef [64]int16
		FDCTIntQ(&coef, &samp, &qiy)
		copy(out.Y[k*64:k*64+64], coef[:])
	}

	var sampCo, coefCo [64]int16
	Subsample(&sampCo, ycocg, ChannelCo)
	FDCTIntQ(&coefCo, &sampCo, &qic)
	copy(out.Co[:], coefCo[:])

	var sampCg, coefCg [64]int16
	Subsample(&sampCg, ycocg, ChannelCg)
	FDCTIntQ(&coefCg, &sampCg, &qic)
	copy(out.Cg[:], coefCg[:])
}

// Decode16RGBA runs the full 16x16 block decode pipeline (dequantize+IDCT,
// luma merge, chroma upscale, inverse color-space conversion) and emits
// RGBA8.
func Decode16RGBA(rgba *RGBABlock, coef *CoefficientBlock, opts EncodeOptions) {
	var ycocg YCoCgBlock
	decode16ToYCoCg(&ycocg, coef, opts)
	YCoCgABlockToRGBA(rgba, &ycocg, &coef.Alpha)
}

// Decode16RGB is Decode16RGBA without the alpha byte: 3 bytes per pixel.
func Decode16RGB(rgb *[blockPixels * 3]byte, coef *CoefficientBlock, opts EncodeOptions) {
	var ycocg YCoCgBlock
	decode16ToYCoCg(&ycocg, coef, opts)
	YCoCgABlockToRGB(rgb, &ycocg)
}

func decode16ToYCoCg(ycocg *YCoCgBlock, coef *CoefficientBlock, opts EncodeOptions) {
	switch opts.Kernel {
	case KernelIntegerBink2:
		decode16ToYCoCgInt(ycocg, coef, opts.Quality)
	default:
		decode16ToYCoCgFloat(ycocg, coef, opts.Quality)
	}
}

func decode16ToYCoCgFloat(ycocg *YCoCgBlock, coef *CoefficientBlock, quality int) {
	qiy, qic := QTablesDecodeFloat(quality)

	var quads [256]int16
	for k := range quadrantOrder {
		var fcoef, fsamp [64]float64
		widenInt16(&fcoef, coef.Y[k*64:k*64+64])
		IDCTFloatD(&fsamp, &fcoef, &qiy)
		roundSampleToInt16(quads[k*64:k*64+64], &fsamp)
	}
	var yMerged [256]int16
	MergeBlocks(&yMerged, &quads)

	var coFull, cgFull [256]int16
	decodeChromaFloat(&coFull, coef.Co[:], &qic)
	decodeChromaFloat(&cgFull, coef.Cg[:], &qic)

	packYCoCg(ycocg, &yMerged, &coFull, &cgFull)
}

func decodeChromaFloat(full *[256]int16, src []int16, qic *[64]float64) {
	var fcoef, fsamp [64]float64
	widenInt16(&fcoef, src)
	IDCTFloatD(&fsamp, &fcoef, qic)

	var small [64]int16
	roundSampleToInt16(small[:], &fsamp)
	ScaleBlock(full, &small)
}

func decode16ToYCoCgInt(ycocg *YCoCgBlock, coef *CoefficientBlock, quality int) {
	qiy, qic := QTablesDecodeInt(quality)

	var quads [256]int16
	for k := range quadrantOrder {
		var src [64]int16
		copy(src[:], coef.Y[k*64:k*64+64])
		var quad [64]int16
		IDCTIntD(&quad, &src, &qiy)
		copy(quads[k*64:k*64+64], quad[:])
	}
	var yMerged [256]int16
	MergeBlocks(&yMerged, &quads)

	var coFull, cgFull [256]int16
	decodeChromaInt(&coFull, coef.Co[:], &qic)
	decodeChromaInt(&cgFull, coef.Cg[:], &qic)

	packYCoCg(ycocg, &yMerged, &coFull, &cgFull)
}

func decodeChromaInt(full *[256]int16, src []int16, qic *[64]int16) {
	var srcArr [64]int16
	copy(srcArr[:], src)

	var small [64]int16
	IDCTIntD(&small, &srcArr, qic)
	ScaleBlock(full, &small)
}

func packYCoCg(ycocg *YCoCgBlock, y, co, cg *[256]int16) {
	for p := 0; p < blockPixels; p++ {
		ycocg[p*3+0] = y[p]
		ycocg[p*3+1] = co[p]
		ycocg[p*3+2] = cg[p]
	}
}

func centerInt16(dst *[64]float64, src *[64]int16) {
	for i, v := range src {
		dst[i] = float64(v) - 128
	}
}

func widenInt16(dst *[64]float64, src []int16) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// roundSampleToInt16 converts IDCT output (still centered, i.e. relative
// to -128) back to an uncentered sample value.
func roundSampleToInt16(dst []int16, src *[64]float64) {
	for i, v := range src {
		dst[i] = clampRound16(v + 128)
	}
}

// roundCoeffToInt16 rounds a quantized DCT coefficient to int16 with no
// centering bias — coefficients, unlike spatial samples, are already
// zero-centered by construction.
func roundCoeffToInt16(dst []int16, src *[64]float64) {
	for i, v := range src {
		dst[i] = clampRound16(v)
	}
}

func clampRound16(v float64) int16 {
	r := int32(v + 0.5)
	if v < 0 {
		r = int32(v - 0.5)
	}
	if r < -32768 {
		return -32768
	}
	if r > 32767 {
		return 32767
	}
	return int16(r)
}
