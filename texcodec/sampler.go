package texcodec

// Channel indices into a YCoCgBlock triple.
const (
	ChannelY  = 0
	ChannelCo = 1
	ChannelCg = 2
)

// SubBlock extracts the 8x8 quadrant (qx,qy) of the given channel from a
// 16x16 YCoCg block into samples, in row-major order. qx and qy are each
// either 0 or 1; channel is one of ChannelY/ChannelCo/ChannelCg.
func SubBlock(samples *[64]int16, ycocg *YCoCgBlock, qx, qy, channel int) {
	for i := 0; i < 8; i++ {
		rowBase := (qy*8+i)*48 + qx*24
		for j := 0; j < 8; j++ {
			samples[i*8+j] = ycocg[rowBase+j*3+channel]
		}
	}
}

// Subsample 2x2 box-filters a 16x16 YCoCg channel down to 8x8, the 4:2:0
// chroma path. The rounding bias alternates 0,2,0,2,... across output
// columns within a row; this dither pattern is load-bearing for bit-exact
// compatibility with the reference encoder and must not be "simplified" to
// a uniform +2 bias.
func Subsample(samples *[64]int16, ycocg *YCoCgBlock, channel int) {
	for i := 0; i < 8; i++ {
		r0 := 2 * i
		r1 := r0 + 1
		for j := 0; j < 8; j++ {
			c0 := 2 * j
			c1 := c0 + 1
			v00 := ycocg[(r0*16+c0)*3+channel]
			v01 := ycocg[(r0*16+c1)*3+channel]
			v10 := ycocg[(r1*16+c0)*3+channel]
			v11 := ycocg[(r1*16+c1)*3+channel]

			var bias int16
			if j%2 == 1 {
				bias = 2
			}
			sum := v00 + v01 + v10 + v11
			samples[i*8+j] = (sum + bias) >> 2
		}
	}
}

// MergeBlocks repacks four 8x8 quadrants (src[0:64]=TL, src[64:128]=TR,
// src[128:192]=BL, src[192:256]=BR) into one 16x16 block in dst.
func MergeBlocks(dst, src *[256]int16) {
	quadrants := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} // TL, TR, BL, BR
	for q, origin := range quadrants {
		qx, qy := origin[0], origin[1]
		for i := 0; i < 8; i++ {
			dstRow := (qy*8 + i) * 16
			srcRow := q*64 + i*8
			for j := 0; j < 8; j++ {
				dst[dstRow+qx*8+j] = src[srcRow+j]
			}
		}
	}
}

// ScaleBlock performs a nearest-neighbor 2x upscale of an 8x8 block into a
// 16x16 block: each input sample becomes a 2x2 patch in the output.
func ScaleBlock(dst *[256]int16, src *[64]int16) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			v := src[i*8+j]
			r0 := (2 * i) * 16
			r1 := r0 + 16
			c := 2 * j
			dst[r0+c] = v
			dst[r0+c+1] = v
			dst[r1+c] = v
			dst[r1+c+1] = v
		}
	}
}
