package subtxt

import (
	"fmt"

	"github.com/zedseven/subtxt/internal/util"
)

// Hide embeds the payload in the image: the 12-byte length header followed by
// the payload bytes, written three per carrier pixel into the R, G and B
// channels in pixel order. Alpha bytes are never touched, so the carriers
// stay identifiable for digging. When ignoreOverflow is set the write simply
// stops once the carriers run out, silently truncating the payload; otherwise
// leftover bytes are an InsufficientHidingSpotsError.
//
// The buffer is modified even when an InsufficientHidingSpotsError is
// returned - a failed run's buffer should not be saved.
func (b *Buffer) Hide(payload []byte, ignoreOverflow bool) error {
	if b.Model != ModelRGBA8 {
		return &UnknownColourModelError{}
	}

	stream := append(encodeLength(uint64(len(payload))), payload...)

	written := 0
	for _, p := range b.Carriers() {
		if written >= len(stream) {
			break
		}
		n := util.Min(carrierChannels, len(stream)-written)
		copy(b.Data[p*channelsPerPix:p*channelsPerPix+n], stream[written:written+n])
		written += n
	}

	if !ignoreOverflow && written < len(stream) {
		return &InsufficientHidingSpotsError{AdditionalInfo: fmt.Sprintf(
			"The header and payload total %d bytes, but the image only has room for %d.", len(stream), written)}
	}

	return nil
}
