package oto

import (
	"encoding/binary"
	"math"

	"github.com/vsariola/toneboard"
)

// FloatBufferToFloat32LE appends the buffer to dst as interleaved 32-bit
// little-endian floats, the format the oto player is opened with. Samples are
// clamped to [-1, 1].
func FloatBufferToFloat32LE(buffer toneboard.AudioBuffer, dst []byte) []byte {
	var b [4]byte
	for _, frame := range buffer {
		for _, v := range frame {
			if v < -1 {
				v = -1
			} else if v > 1 {
				v = 1
			}
			binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
			dst = append(dst, b[:]...)
		}
	}
	return dst
}
