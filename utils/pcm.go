// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(Clamp(x) * 32767.0)
}

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}

// PCMScale is the divisor that maps a signed integer sample of bitDepth
// bits to [-1, 1). Unknown depths are treated as 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntsToFloat32 converts signed integer PCM of bitDepth bits into dst and
// returns the number of values written.
func IntsToFloat32(dst []float32, src []int, bitDepth int) int {
	scale := PCMScale(bitDepth)
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}

	return n
}

// Float32ToInts converts normalized samples to 16-bit values stored in ints,
// the layout go-audio encoders expect.
func Float32ToInts(dst []int, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int(Float32ToInt16(src[i]))
	}

	return n
}
