package texcodec

// QualityScale maps a JPEG-style quality factor (clamped to [1,100]) to the
// multiplier used by QuantizationTable.
func QualityScale(quality int) int {
	quality = clampQuality(quality)
	if quality < 50 {
		return 5000 / quality
	}
	return 200 - 2*quality
}

func clampQuality(quality int) int {
	if quality < 1 {
		return 1
	}
	if quality > 100 {
		return 100
	}
	return quality
}

// QuantizationTable scales a base table (BaseLuma or BaseChroma) by quality,
// clamping every entry to [1,255]. The result is in natural order.
func QuantizationTable(dst *[64]int16, base *[64]int16, quality int) {
	q := QualityScale(quality)
	for i := 0; i < 64; i++ {
		v := (int(base[i])*q + 50) / 100
		if v < 1 {
			v = 1
		} else if v > 255 {
			v = 255
		}
		dst[i] = int16(v)
	}
}

// CSFFromQTable derives a per-coefficient contrast-sensitivity weight from a
// scaled quantization table: CSF[i] = Q[0]/Q[i]. Natural order.
func CSFFromQTable(dst *[64]float64, q *[64]int16) {
	dc := float64(q[0])
	for i := 0; i < 64; i++ {
		dst[i] = dc / float64(q[i])
	}
}

// AANScaledQTable computes the AA&N-scaled float quantization table pair
// used by the combined-quantize DCT/IDCT variants. If csf is nil, unity
// weighting is used (equivalent to passing CSFUnity).
func AANScaledQTable(qidct, qfdct *[64]float64, csf *[64]float64) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			i := r*8 + c
			q := 1.0
			if csf != nil {
				q = csf[i]
			}
			aans := AAN[r] * AAN[c]
			qaan := aans * q
			qidct[i] = qaan / 8
			qfdct[i] = 1 / (qaan * 8)
		}
	}
}

// QTablesEncodeFloat derives the forward (FDCT-side) AA&N-scaled float
// quantization tables for luma and chroma at the given quality.
func QTablesEncodeFloat(quality int) (qy, qc [64]float64) {
	fy, _ := aanQTablesFor(&BaseLuma, quality)
	fc, _ := aanQTablesFor(&BaseChroma, quality)
	return fy, fc
}

// QTablesDecodeFloat derives the inverse (IDCT-side) AA&N-scaled float
// quantization tables for luma and chroma at the given quality.
func QTablesDecodeFloat(quality int) (qy, qc [64]float64) {
	_, iy := aanQTablesFor(&BaseLuma, quality)
	_, ic := aanQTablesFor(&BaseChroma, quality)
	return iy, ic
}

// aanQTablesFor runs the full base->quality->CSF->AAN pipeline for one base
// table, returning (Qfdct_f, Qidct_f).
func aanQTablesFor(base *[64]int16, quality int) (fdct, idct [64]float64) {
	var q [64]int16
	QuantizationTable(&q, base, quality)

	var csf [64]float64
	CSFFromQTable(&csf, &q)

	var qidct, qfdct [64]float64
	AANScaledQTable(&qidct, &qfdct, &csf)
	return qfdct, qidct
}

// QTablesEncodeInt and QTablesDecodeInt are identical: the integer DCT does
// not absorb AA&N scaling, so the forward and inverse integer tables are
// both exactly the quality-scaled base table.
func QTablesEncodeInt(quality int) (qy, qc [64]int16) {
	QuantizationTable(&qy, &BaseLuma, quality)
	QuantizationTable(&qc, &BaseChroma, quality)
	return
}

func QTablesDecodeInt(quality int) (qy, qc [64]int16) {
	return QTablesEncodeInt(quality)
}
