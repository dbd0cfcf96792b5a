package misc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

// EncodePNG encodes img into memory. Fully opaque RGBA images are written
// as 8-bit RGB.
func EncodePNG(img image.Image) ([]byte, error) {
	var buffer bytes.Buffer
	err := png.Encode(&buffer, img)
	if err != nil {
		return nil, fmt.Errorf("unable to encode png: %w", err)
	}
	return buffer.Bytes(), nil
}

// SavePNG encodes img and writes it to fileName.
func SavePNG(fileName string, img image.Image) error {
	contents, err := EncodePNG(img)
	if err != nil {
		return err
	}
	bytesWritten, err := WriteFile(fileName, contents)
	if err != nil {
		return err
	}
	if bytesWritten != len(contents) {
		return fmt.Errorf("short write to %s: %d of %d bytes", fileName, bytesWritten, len(contents))
	}
	return nil
}
