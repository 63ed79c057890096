package texcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQualityScaleBoundaries(t *testing.T) {
	require.Equal(t, 5000, QualityScale(1))
	require.Equal(t, 100, QualityScale(50))
	require.Equal(t, 0, QualityScale(100))
	require.Equal(t, 5000, QualityScale(0))   // clamps to 1
	require.Equal(t, 0, QualityScale(500))    // clamps to 100
}

func TestQuantizationTableClampsToValidRange(t *testing.T) {
	var q [64]int16
	QuantizationTable(&q, &BaseLuma, 1)
	for _, v := range q {
		require.GreaterOrEqual(t, v, int16(1))
		require.LessOrEqual(t, v, int16(255))
	}

	QuantizationTable(&q, &BaseLuma, 100)
	for _, v := range q {
		require.GreaterOrEqual(t, v, int16(1))
		require.LessOrEqual(t, v, int16(255))
	}
}

func TestQuantizationTableQuality100IsNearIdentity(t *testing.T) {
	// At quality 100, scale is 0, so every entry rounds down to the
	// clamp floor of 1: lossless-ish, finest quantization step.
	var q [64]int16
	QuantizationTable(&q, &BaseLuma, 100)
	for _, v := range q {
		require.Equal(t, int16(1), v)
	}
}

func TestCSFFromQTableDCIsUnity(t *testing.T) {
	var q [64]int16
	QuantizationTable(&q, &BaseLuma, 50)

	var csf [64]float64
	CSFFromQTable(&csf, &q)

	require.InDelta(t, 1.0, csf[0], 1e-9)
}

func TestAANScaledQTableNilCSFMatchesUnity(t *testing.T) {
	var qidctNil, qfdctNil [64]float64
	AANScaledQTable(&qidctNil, &qfdctNil, nil)

	var qidctUnity, qfdctUnity [64]float64
	AANScaledQTable(&qidctUnity, &qfdctUnity, &CSFUnity)

	require.Equal(t, qidctNil, qidctUnity)
	require.Equal(t, qfdctNil, qfdctUnity)
}

func TestAANScaledQTableIsFdctIdctReciprocal(t *testing.T) {
	var qidct, qfdct [64]float64
	AANScaledQTable(&qidct, &qfdct, nil)

	for i := 0; i < 64; i++ {
		// qfdct[i] * qidct[i] == 1/64 by construction (qfdct=1/(8*aan),
		// qidct=aan/8), independent of coefficient position.
		require.InDelta(t, 1.0/64.0, qfdct[i]*qidct[i], 1e-9)
	}
}

func TestQTablesEncodeDecodeFloatConsistentShape(t *testing.T) {
	ey, ec := QTablesEncodeFloat(75)
	dy, dc := QTablesDecodeFloat(75)

	for i := 0; i < 64; i++ {
		require.Greater(t, ey[i], 0.0)
		require.Greater(t, ec[i], 0.0)
		require.Greater(t, dy[i], 0.0)
		require.Greater(t, dc[i], 0.0)
	}
}

func TestQTablesEncodeDecodeIntAreIdentical(t *testing.T) {
	ey, ec := QTablesEncodeInt(60)
	dy, dc := QTablesDecodeInt(60)

	require.Equal(t, ey, dy)
	require.Equal(t, ec, dc)
}
