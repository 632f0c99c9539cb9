package subtxt

import (
	"encoding/binary"
	"slices"
)

// The length header is the first thing hidden in the image: the payload's
// byte length as 8 native-order bytes, with a zero byte inserted at positions
// 3 and 7 and two more appended. The resulting 12 bytes fill the first four
// carrier pixels exactly.

func encodeLength(n uint64) []byte {
	h := make([]byte, 8, headerSize)
	binary.NativeEndian.PutUint64(h, n)
	h = slices.Insert(h, 3, byte(0))
	h = slices.Insert(h, 7, byte(0))
	return append(h, 0, 0)
}

// decodeLength reads the declared payload length back out of the head of the
// raw pixel data. The read is unfiltered on purpose: in the images this
// format targets the leading pixels are carriers, so the stored header sits
// at the very start of the buffer, interleaved with their zero alpha bytes.
// Dropping the bytes at positions 9 and 4 strips the interleaving back out.
func decodeLength(data []byte) (uint64, error) {
	if len(data) <= headerSize {
		return 0, &CorruptPayloadError{"The image is too small to hold a header."}
	}

	raw := make([]byte, lengthSize)
	copy(raw, data)
	raw = slices.Delete(raw, 9, 10)
	raw = slices.Delete(raw, 4, 5)

	return binary.NativeEndian.Uint64(raw), nil
}
