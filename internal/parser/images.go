package parser

import (
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Listing sites serve video posters, 360-tour frames and low-res preview
// variants alongside the full images, with no structural markup telling
// them apart. Substring matching on the URL is the signal available.
var skipTokens = []string{"thumb", "small", "video", "tour", "360"}

var skipExts = map[string]bool{".mp4": true, ".mov": true, ".webm": true, ".gif": true}

// ImageURLs returns the absolute URLs of full-size listing images in the
// markup. A lazy-load data-src wins over src, thumbnail/video variants
// are filtered out, relative references are resolved against pageURL and
// duplicates dropped. Order is first occurrence in the document.
func (p *Parser) ImageURLs(r io.Reader, pageURL string) ([]string, error) {
	doc, err := parse(r, "")
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var urls []string
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("data-src", "")
		if src == "" {
			src = s.AttrOr("src", "")
		}
		if src == "" {
			return
		}
		lower := strings.ToLower(src)
		for _, tok := range skipTokens {
			if strings.Contains(lower, tok) {
				return
			}
		}
		if skipExts[ext(src)] {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		urls = append(urls, abs)
	})
	return urls, nil
}

// ext is the lowercased file extension of a URL, query string stripped.
func ext(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(path.Ext(s))
}
