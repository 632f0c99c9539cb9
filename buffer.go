package subtxt

import "fmt"

// Types

// Buffer is the in-memory image: raw 8-bit RGBA bytes (R,G,B,A per pixel, in
// pixel order) plus geometry and the colour model the pixels arrived in. It
// is mutated in place by the operations that work on it.
type Buffer struct {
	Data  []byte      // The raw pixel data, 4 bytes per pixel.
	W, H  int         // The image dimensions in pixels.
	Model ColourModel // The colour model the image was decoded from.
}

// NewBuffer wraps raw pixel data in a Buffer, checking that the data length
// matches the provided dimensions.
func NewBuffer(data []byte, w, h int, model ColourModel) (*Buffer, error) {
	if len(data) != channelsPerPix*w*h {
		return nil, &InvalidFormatError{fmt.Sprintf(
			"The pixel data is %d bytes, but a %dx%d RGBA image needs %d.", len(data), w, h, channelsPerPix*w*h)}
	}
	return &Buffer{Data: data, W: w, H: h, Model: model}, nil
}

// Primary methods

// Carriers returns the indices of the carrier pixels (alpha byte == 0), in
// pixel order. The buffer is rescanned on every call: hiding and digging must
// agree on carrier identity, and a cached index would go stale the moment an
// alpha byte changes.
func (b *Buffer) Carriers() []int {
	carriers := make([]int, 0, len(b.Data)/channelsPerPix)
	for p := 0; p*channelsPerPix < len(b.Data); p++ {
		if b.Data[p*channelsPerPix+alphaOffset] == 0 {
			carriers = append(carriers, p)
		}
	}
	return carriers
}

// AvailableBytes reports how many bytes of text the image can currently hold:
// three per carrier pixel. ok is false when the colour model is unsupported.
func (b *Buffer) AvailableBytes() (n int, ok bool) {
	if b.Model != ModelRGBA8 {
		return 0, false
	}
	return carrierChannels * len(b.Carriers()), true
}

// MaxAlpha forces every pixel fully opaque. This erases the carrier markers,
// so it must only run once anything hidden in the image has been dug out.
func (b *Buffer) MaxAlpha() {
	for i := alphaOffset; i < len(b.Data); i += channelsPerPix {
		b.Data[i] = opaqueAlpha
	}
}
