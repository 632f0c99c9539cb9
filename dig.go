package subtxt

import (
	"fmt"
	"unicode/utf8"

	"github.com/zedseven/subtxt/internal/util"
)

// Dig extracts the hidden payload from the image. The R, G and B bytes of the
// carrier pixels form one byte stream; the declared length is read from the
// header, the 12-byte header region is skipped, and that many bytes are taken
// from the rest of the stream.
func (b *Buffer) Dig() ([]byte, error) {
	if b.Model != ModelRGBA8 {
		return nil, &UnknownColourModelError{}
	}

	size, err := decodeLength(b.Data)
	if err != nil {
		return nil, err
	}

	carriers := b.Carriers()
	remaining := util.Max(0, carrierChannels*len(carriers)-headerSize)
	if uint64(remaining) < size {
		return nil, &CorruptPayloadError{fmt.Sprintf(
			"The header declares %d bytes, but the image only stores %d.", size, remaining)}
	}

	payload := make([]byte, 0, size)
	pos := 0
	for _, p := range carriers {
		for c := 0; c < carrierChannels; c++ {
			if pos >= headerSize && uint64(len(payload)) < size {
				payload = append(payload, b.Data[p*channelsPerPix+c])
			}
			pos++
		}
	}

	return payload, nil
}

// DigText extracts the hidden payload and interprets it as text.
func (b *Buffer) DigText() (string, error) {
	payload, err := b.Dig()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", &CorruptPayloadError{"The extracted bytes are not valid UTF-8 text."}
	}
	return string(payload), nil
}
