package downloader

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"

	"listing-scraper/pkg/logger"
)

// ImageFetcher retrieves a single image, returning its bytes and the
// declared content type.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, string, error)
}

// Downloader writes listing images to disk one at a time, converting WebP
// to JPEG because WebP has poor compatibility with downstream consumers.
type Downloader struct {
	fetcher ImageFetcher
	log     *logger.Logger
}

func New(fetcher ImageFetcher, log *logger.Logger) *Downloader {
	return &Downloader{fetcher: fetcher, log: log}
}

const jpegQuality = 95

var keepExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// Download fetches every URL in order and writes img_<n> files (1-based)
// into dir. A failed fetch or conversion is logged and skipped; the batch
// always continues. Filesystem errors abort. Returns the number of images
// written.
func (d *Downloader) Download(ctx context.Context, urls []string, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}

	written := 0
	for i, u := range urls {
		data, contentType, err := d.fetcher.FetchImage(ctx, u)
		if err != nil {
			d.log.Errorf("failed to download %s: %v", u, err)
			continue
		}
		name, out, err := normalize(u, contentType, data, i+1)
		if err != nil {
			d.log.Errorf("failed to convert %s: %v", u, err)
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), out, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written++
	}
	return written, nil
}

// normalize decides the on-disk name and bytes for image number idx. WebP
// (by content type or extension) is re-encoded as JPEG at quality 95;
// anything else is written unchanged, with extensions outside
// jpg/jpeg/png forced to .jpg.
func normalize(url, contentType string, data []byte, idx int) (string, []byte, error) {
	ext := urlExt(url)
	if strings.Contains(strings.ToLower(contentType), "image/webp") || ext == ".webp" {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return "", nil, fmt.Errorf("decode webp: %w", err)
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return "", nil, fmt.Errorf("encode jpeg: %w", err)
		}
		return fmt.Sprintf("img_%d.jpg", idx), buf.Bytes(), nil
	}
	if !keepExts[ext] {
		ext = ".jpg"
	}
	return fmt.Sprintf("img_%d%s", idx, ext), data, nil
}

// urlExt is the lowercased extension of the URL path, query stripped.
func urlExt(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(path.Ext(s))
}
