package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes img as a PNG file at path, replacing any existing file, and
// returns the number of bytes written.
func Save(path string, img image.Image) (int, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(data), nil
}

// WriteFile renders the icon of the given size and saves it as
// FileName(size) inside dir. The returned Report carries the file path and
// its size in bytes.
func WriteFile(dir string, size int, opts Options) (Report, error) {
	img, rep, err := Render(size, opts)
	if err != nil {
		return Report{}, err
	}
	rep.Path = filepath.Join(dir, FileName(size))
	n, err := Save(rep.Path, img)
	if err != nil {
		return Report{}, err
	}
	rep.Bytes = n
	return rep, nil
}

// MaxICOSize is the largest edge an ICO directory entry can describe.
const MaxICOSize = 256

// EncodeICO writes a Windows icon container holding one entry per image, in
// the given order.
func EncodeICO(w io.Writer, imgs []image.Image) error {
	if len(imgs) == 0 {
		return fmt.Errorf("encode ico: no images")
	}
	for i, img := range imgs {
		b := img.Bounds()
		if b.Dx() > MaxICOSize || b.Dy() > MaxICOSize {
			return fmt.Errorf("encode ico: image %d is %dx%d, max %dx%d", i, b.Dx(), b.Dy(), MaxICOSize, MaxICOSize)
		}
	}
	if err := ico.EncodeAll(w, imgs); err != nil {
		return fmt.Errorf("encode ico: %w", err)
	}
	return nil
}

func WriteICO(path string, imgs []image.Image) error {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, imgs); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
