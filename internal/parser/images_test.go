package parser

import (
	"reflect"
	"strings"
	"testing"
)

const galleryHTML = `<html><body>
<img data-src="https://cdn.example.com/a.jpg" src="https://cdn.example.com/a-thumb.jpg">
<img src="/photos/photo1.jpg">
<img src="thumb-small.jpg">
<img src="https://cdn.example.com/anim.gif">
<img src="https://cdn.example.com/clip.mp4">
<img src="/photos/photo1.jpg">
<img src="https://cdn.example.com/vr-tour.jpg">
<img src="https://cdn.example.com/pano-360.jpg">
<img src="https://cdn.example.com/b.webp?w=1200">
<img alt="no source at all">
</body></html>`

func TestImageURLs(t *testing.T) {
	p := New()
	got, err := p.ImageURLs(strings.NewReader(galleryHTML), "https://example.com/listing/42")
	if err != nil {
		t.Fatalf("image scan error: %v", err)
	}
	want := []string{
		"https://cdn.example.com/a.jpg",
		"https://example.com/photos/photo1.jpg",
		"https://cdn.example.com/b.webp?w=1200",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestImageURLsGifAlwaysExcluded(t *testing.T) {
	p := New()
	got, err := p.ImageURLs(strings.NewReader(`<img src="https://cdn.example.com/hero.gif">`), "https://example.com/")
	if err != nil {
		t.Fatalf("image scan error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("gif should be excluded regardless of naming, got %v", got)
	}
}

func TestImageURLsLazySourceWins(t *testing.T) {
	p := New()
	got, err := p.ImageURLs(strings.NewReader(`<img data-src="/full.jpg" src="/preview-small.jpg">`), "https://example.com/l/1")
	if err != nil {
		t.Fatalf("image scan error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"https://example.com/full.jpg"}) {
		t.Fatalf("want lazy source only, got %v", got)
	}
}
