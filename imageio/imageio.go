// Package imageio loads textures and saves rendered frames, picking a codec by file extension.
//
// PNG, JPEG, and GIF come from the standard library, BMP, TIFF, and WebP from golang.org/x/image, and TGA from
// github.com/ftrvxmtrx/tga.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/softgl/softgl"
)

// ErrUnsupportedFormat is returned when a file extension has no matching codec.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 95

// Load opens and decodes the image at path, choosing the decoder from the file's extension.
func Load(path string) (image.Image, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f), filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding %s: %w", path, err)
	}

	softgl.Logger().Debug("image loaded", "path", path, "size", img.Bounds().Size())

	return img, nil

}

// Decode decodes an image from r. ext is a file extension such as ".png" (case-insensitive); if it's empty, the
// format is detected from the data instead.
func Decode(r io.Reader, ext string) (image.Image, error) {

	ext = normalizeExt(ext)
	if ext == "" {
		br := bufio.NewReader(r)
		ext = Sniff(br)
		r = br
	}

	switch ext {
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".gif":
		return gif.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	case ".tif", ".tiff":
		return tiff.Decode(r)
	case ".webp":
		return webp.Decode(r)
	case ".tga":
		return tga.Decode(r)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)

}

// Save encodes img to path, choosing the encoder from the file's extension. WebP can be loaded but not saved.
func Save(path string, img image.Image) (err error) {

	// Fail on the extension before creating the file.
	if !CanEncode(filepath.Ext(path)) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("imageio: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(f)

	if err = Encode(w, filepath.Ext(path), img); err != nil {
		return fmt.Errorf("imageio: encoding %s: %w", path, err)
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	softgl.Logger().Info("image saved", "path", path, "size", img.Bounds().Size())

	return nil

}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, ext string, img image.Image) error {

	switch normalizeExt(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".tga":
		return tga.Encode(w, img)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)

}

// CanEncode returns true if Save and Encode support the given extension.
func CanEncode(ext string) bool {
	switch normalizeExt(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".tga":
		return true
	}
	return false
}

// ExtFromMIME returns the file extension for an image MIME type, or an empty string if it's unknown.
func ExtFromMIME(mime string) string {
	switch strings.ToLower(mime) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/tiff":
		return ".tiff"
	case "image/webp":
		return ".webp"
	case "image/x-tga", "image/x-targa", "image/tga":
		return ".tga"
	}
	return ""
}

// Signatures checked by Sniff, in order. TGA has no magic number, so it's the fallback.
var signatures = []struct {
	ext    string
	offset int
	magic  string
}{
	{".png", 0, "\x89PNG\r\n\x1a\n"},
	{".jpg", 0, "\xff\xd8\xff"},
	{".gif", 0, "GIF8"},
	{".bmp", 0, "BM"},
	{".tiff", 0, "II*\x00"},
	{".tiff", 0, "MM\x00*"},
	{".webp", 8, "WEBP"},
}

// Sniff peeks at the start of r and returns the extension of the format it holds. Data matching no known
// signature is assumed to be TGA. r is not advanced.
func Sniff(r *bufio.Reader) string {

	header, _ := r.Peek(12)

	for _, sig := range signatures {
		end := sig.offset + len(sig.magic)
		if len(header) >= end && string(header[sig.offset:end]) == sig.magic {
			return sig.ext
		}
	}

	return ".tga"

}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
