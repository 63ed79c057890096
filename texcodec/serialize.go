package texcodec

import "encoding/binary"

// SerializeZigzag writes coeffs (natural order) to dst as 64 little-endian
// int16 values in zig-zag stream order. dst must have length >= 128.
func SerializeZigzag(dst []byte, coeffs *[64]int16) error {
	if len(dst) < 128 {
		return newCodecError(ErrCodeInvalidConfig, "serialize: dst too short, need 128 bytes, got %d", len(dst))
	}
	var zz [64]int16
	ApplyZigZag(&zz, coeffs)
	for k, v := range zz {
		binary.LittleEndian.PutUint16(dst[k*2:k*2+2], uint16(v))
	}
	return nil
}

// DeserializeZigzag is the inverse of SerializeZigzag: it reads 64
// little-endian int16 values in zig-zag order from src and writes the
// natural-order coefficients into dst. src must have length >= 128.
func DeserializeZigzag(dst *[64]int16, src []byte) error {
	if len(src) < 128 {
		return newCodecError(ErrCodeInvalidConfig, "deserialize: src too short, need 128 bytes, got %d", len(src))
	}
	var zz [64]int16
	for k := range zz {
		zz[k] = int16(binary.LittleEndian.Uint16(src[k*2 : k*2+2]))
	}
	UndoZigZag(dst, &zz)
	return nil
}
