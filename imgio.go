package subtxt

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zedseven/binmani"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Types

type imageFormat int

const (
	formatUnknown imageFormat = iota
	formatPNG
	formatTIFF
	formatBMP
	formatJPEG
)

// Primary methods

// LoadImage decodes the image on disk into a raw RGBA8 Buffer. Images that
// are not already 8-bit RGBA are converted, but tagged ModelUnknown so the
// hiding operations refuse them.
func LoadImage(imgPath string, outputLevel OutputLevel) (*Buffer, error) {
	imgFile, err := os.Open(imgPath)
	if err != nil {
		printlnLvl(outputLevel, OutputSteps, "Unable to open the image!", err.Error())
		return nil, err
	}

	defer func() {
		if err = imgFile.Close(); err != nil {
			printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Error closing the file '%v': %v", imgPath, err.Error()))
		}
	}()

	buf, err := readPixels(imgFile)
	if err != nil {
		printlnLvl(outputLevel, OutputSteps, "The image couldn't be decoded:", err.Error())
		return nil, err
	}

	return buf, nil
}

// WriteImage encodes the buffer to the provided path, picking the format from
// the file extension. When the buffer has data hidden in it only png and tiff
// are allowed: both store every channel byte losslessly, and anything else
// would destroy the hidden bytes on the way out. The format check runs before
// the file is created.
func WriteImage(buf *Buffer, outPath string, embedded bool, outputLevel OutputLevel) error {
	format := formatForPath(outPath)
	if format == formatUnknown {
		return &UnsupportedFormatError{filepath.Ext(outPath)}
	}
	if embedded && format != formatPNG && format != formatTIFF {
		printlnLvl(outputLevel, OutputSteps, "Only png and tiff can carry hidden data.")
		return &UnsupportedFormatError{filepath.Ext(outPath)}
	}

	img := &image.NRGBA{Pix: buf.Data, Stride: channelsPerPix * buf.W, Rect: image.Rect(0, 0, buf.W, buf.H)}

	f, err := os.Create(outPath)
	if err != nil {
		printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("There was an error creating the file '%v'.", outPath))
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			printlnLvl(outputLevel, OutputSteps, fmt.Sprintf("Error closing the file '%v': %v", outPath, cerr.Error()))
		}
	}()

	switch format {
	case formatPNG:
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		err = encoder.Encode(f, img)
	case formatTIFF:
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	case formatBMP:
		err = bmp.Encode(f, img)
	case formatJPEG:
		err = jpeg.Encode(f, img, nil)
	}
	if err != nil {
		printlnLvl(outputLevel, OutputSteps, "There was an error encoding the image to the new file.")
		return err
	}

	return nil
}

// Helper functions

func formatForPath(path string) imageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return formatPNG
	case ".tif", ".tiff":
		return formatTIFF
	case ".bmp":
		return formatBMP
	case ".jpg", ".jpeg":
		return formatJPEG
	default:
		return formatUnknown
	}
}

func readPixels(imgFile io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, err
	}

	dims := img.Bounds()
	w, h := dims.Dx(), dims.Dy()
	data := make([]byte, channelsPerPix*w*h)
	model := ModelUnknown

	// Each colour model has to be handled individually
	switch simg := img.(type) {
	case *image.NRGBA:
		copyRows(data, simg.Pix, simg.Stride, w, h)
		model = ModelRGBA8
	case *image.RGBA:
		copyRows(data, simg.Pix, simg.Stride, w, h)
		model = ModelRGBA8
	case *image.NRGBA64:
		downconvertRows(data, simg.Pix, simg.Stride, w, h)
	case *image.RGBA64:
		downconvertRows(data, simg.Pix, simg.Stride, w, h)
	default:
		canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(canvas, canvas.Bounds(), img, dims.Min, draw.Src)
		copy(data, canvas.Pix)
	}

	return NewBuffer(data, w, h, model)
}

func copyRows(dst, pix []byte, stride, w, h int) {
	rowLen := channelsPerPix * w
	for y := 0; y < h; y++ {
		copy(dst[y*rowLen:(y+1)*rowLen], pix[y*stride:y*stride+rowLen])
	}
}

// Image raw Pix arrays store multi-byte channel values in big-endian format
// across separate indices (https://golang.org/src/image/image.go?s=8222:8528#L380),
// so the high byte of each 16-bit channel is its 8-bit value.
func downconvertRows(dst, pix []byte, stride, w, h int) {
	rowLen := channelsPerPix * w
	for y := 0; y < h; y++ {
		for x := 0; x < rowLen; x++ {
			v := uint16(pix[y*stride+x*2])<<8 | uint16(pix[y*stride+x*2+1])
			dst[y*rowLen+x] = uint8(binmani.ReadFrom(v, bitsPerByte, bitsPerByte))
		}
	}
}
