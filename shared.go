// Package subtxt hides text in the fully-transparent pixels of an image and
// digs it back out later. Pixels with an alpha byte of 0 act as carriers: a
// 12-byte length header and the payload are spread over their R, G and B
// channels, three bytes per pixel, without changing how the image looks.
package subtxt

import "fmt"

const (
	bitsPerByte     uint8 = 8
	channelsPerPix        = 4
	carrierChannels       = 3
	alphaOffset           = 3
	headerSize            = 12
	lengthSize            = 10
	opaqueAlpha           = 0xff
	VersionMax      uint8 = 0
	VersionMid      uint8 = 1
	VersionMin      uint8 = 0
)

// Shared types

// ColourModel tags whether the pixels arrived as 8-bit RGBA, the only model
// whose transparent pixels may act as carriers. It is decided once, when the
// image is loaded.
type ColourModel int

const (
	ModelUnknown ColourModel = iota
	ModelRGBA8
)

func (m ColourModel) String() string {
	switch m {
	case ModelRGBA8:
		return "RGBA8"
	default:
		return "<Unknown>"
	}
}

// Error types

// UnknownColourModelError is returned when an operation that needs carrier
// pixels is attempted on an image that is not 8-bit RGBA.
type UnknownColourModelError struct{}

func (e *UnknownColourModelError) Error() string {
	return "The colour model of the provided image is not 8-bit RGBA."
}

// InvalidFormatError is returned when provided data or configuration is of an
// invalid format.
type InvalidFormatError struct {
	ErrorDesc string
}

func (e *InvalidFormatError) Error() string {
	if len(e.ErrorDesc) > 0 {
		return e.ErrorDesc
	}
	return "The provided data is of an invalid format."
}

// InsufficientHidingSpotsError is returned when the text to hide does not fit
// in the carrier pixels the image provides.
type InsufficientHidingSpotsError struct {
	AdditionalInfo string
}

func (e *InsufficientHidingSpotsError) Error() string {
	ret := "There is not enough space available to store the provided text within the provided image."
	if len(e.AdditionalInfo) > 0 {
		return fmt.Sprintf("%v Additional info: %v", ret, e.AdditionalInfo)
	}
	return ret
}

// CorruptPayloadError is returned when the hidden data cannot be extracted:
// the header is unreadable, the image holds fewer bytes than the header
// declares, or the extracted bytes are not the text they were expected to be.
type CorruptPayloadError struct {
	ErrorDesc string
}

func (e *CorruptPayloadError) Error() string {
	if len(e.ErrorDesc) > 0 {
		return e.ErrorDesc
	}
	return "The hidden data could not be extracted."
}

// UnsupportedFormatError is returned when the requested output image format
// cannot be written, or cannot carry hidden data losslessly.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("The output image format '%v' is not supported for this operation.", e.Format)
}

// Library methods

func Version() string {
	return fmt.Sprintf("%02d.%02d.%02d", VersionMax, VersionMid, VersionMin)
}
