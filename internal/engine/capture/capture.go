// Package capture writes framebuffer contents to PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capturer names and writes screenshots.
type Capturer struct {
	outputDir string
	prefix    string

	// now is replaced in tests.
	now  func() time.Time
	last string
	seq  int
}

// New creates a capturer writing <prefix>_<timestamp>.png files into outputDir.
func New(outputDir, prefix string) *Capturer {
	return &Capturer{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FromPixels converts bottom-up RGBA rows, as glReadPixels returns them,
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// Save writes bottom-up RGBA pixels to a new PNG file and returns its path.
func (c *Capturer) Save(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// nextFilename appends a counter when several captures share a second.
func (c *Capturer) nextFilename() string {
	stamp := c.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s.png", c.prefix, stamp)
	if stamp == c.last {
		c.seq++
		name = fmt.Sprintf("%s_%s_%d.png", c.prefix, stamp, c.seq)
	} else {
		c.last = stamp
		c.seq = 0
	}
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}
