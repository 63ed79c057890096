package texcodec

// FDCTInt computes the forward Bink-2 style integer 8x8 DCT of src into
// dst as two 1-D passes (rows, then columns). Unlike the float AA&N kernel,
// raw YCoCg values are used directly — no centering step. Intermediate
// values are held in 32-bit signed integers; inputs and outputs are 16-bit
// signed, and every shift is a signed arithmetic right shift.
func FDCTInt(dst, src *[64]int16) {
	var work [64]int16
	work = *src

	for row := 0; row < 8; row++ {
		fdctInt1D(work[row*8 : row*8+8])
	}
	for col := 0; col < 8; col++ {
		fdctInt1DStrided(&work, col)
	}
	*dst = work
}

// FDCTIntQ runs FDCTInt and quantizes each coefficient by rounded division
// by qfdct (the integer encode-side quantization table).
func FDCTIntQ(dst, src *[64]int16, qfdct *[64]int16) {
	var raw [64]int16
	FDCTInt(&raw, src)
	for i := 0; i < 64; i++ {
		dst[i] = roundedDivInt16(raw[i], qfdct[i])
	}
}

// IDCTInt computes the inverse Bink-2 style integer 8x8 DCT of src into
// dst: a column pass followed by a row pass, the dual ordering of
// FDCTInt, then descales by 64 (>>6) the same way IDCTIntD does. This
// transform is approximately, not exactly, the mathematical inverse of
// FDCTInt — see dctint_inverse.go.
func IDCTInt(dst, src *[64]int16) {
	var work [64]int16
	work = *src

	for col := 0; col < 8; col++ {
		idctInt1DStrided(&work, col, nil)
	}
	for row := 0; row < 8; row++ {
		idctInt1D(work[row*8 : row*8+8])
	}
	for i := 0; i < 64; i++ {
		dst[i] = work[i] >> 6
	}
}

// IDCTIntD dequantizes src by qidct while loading it into the column pass,
// runs both 1-D passes, then descales the final sums by 64 (>>6) to
// compensate for the combined forward+inverse scaling. This is the
// combined dequantize+IDCT variant the decode orchestrator uses.
func IDCTIntD(dst, src *[64]int16, qidct *[64]int16) {
	var work [64]int16
	work = *src

	for col := 0; col < 8; col++ {
		idctInt1DStrided(&work, col, qidct)
	}
	for row := 0; row < 8; row++ {
		idctInt1D(work[row*8 : row*8+8])
	}
	for i := 0; i < 64; i++ {
		dst[i] = work[i] >> 6
	}
}

// fdctInt1D runs the forward lifting butterfly in place over 8 contiguous
// int16 values, per the Bink-2 style structure (identical for rows and
// columns).
func fdctInt1D(v []int16) {
	i0, i1, i2, i3 := int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3])
	i4, i5, i6, i7 := int32(v[4]), int32(v[5]), int32(v[6]), int32(v[7])

	a0, a1, a2, a3 := i0+i7, i1+i6, i2+i5, i3+i4
	a4, a5, a6, a7 := i0-i7, i1-i6, i2-i5, i3-i4

	b0, b1, b2, b3 := a0+a3, a1+a2, a0-a3, a1-a2
	c0, c1 := b0+b1, b0-b1
	c2 := b2 + (b2 >> 2) + (b3 >> 1)
	c3 := (b2 >> 1) - b3 - (b3 >> 2)

	b4 := (a7 >> 2) + a4 + (a4 >> 2) - (a4 >> 4)
	b7 := (a4 >> 2) - a7 - (a7 >> 2) + (a7 >> 4)
	b5 := a5 + a6 - (a6 >> 2) - (a6 >> 4)
	b6 := a6 - a5 + (a5 >> 2) + (a5 >> 4)

	c4, c5, c6, c7 := b4+b5, b4-b5, b6+b7, b6-b7
	d4, d5, d6, d7 := c4, c5+c7, c5-c7, c6

	v[0] = int16(c0)
	v[1] = int16(d4)
	v[2] = int16(c2)
	v[3] = int16(d6)
	v[4] = int16(c1)
	v[5] = int16(d5)
	v[6] = int16(c3)
	v[7] = int16(d7)
}

func fdctInt1DStrided(block *[64]int16, col int) {
	var v [8]int16
	for i := 0; i < 8; i++ {
		v[i] = block[i*8+col]
	}
	fdctInt1D(v[:])
	for i := 0; i < 8; i++ {
		block[i*8+col] = v[i]
	}
}

func roundedDivInt16(n, d int16) int16 {
	if d == 0 {
		return 0
	}
	return int16(roundedDivInt32(int32(n), int32(d)))
}

func roundedDivInt32(n, d int32) int32 {
	if d < 0 {
		n, d = -n, -d
	}
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}
