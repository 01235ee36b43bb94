package parser

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"listing-scraper/internal/models"
)

// Parser extracts listing metadata and image URLs from page markup.
type Parser struct{}

func New() *Parser { return &Parser{} }

// DefaultAddress is the placeholder when no title or og:title exists.
const DefaultAddress = "unknown_address"

var priceRe = regexp.MustCompile(`\$[\d,]+`)

// Extract parses a listing page into a ListingRecord. Missing fields
// degrade to defaults; malformed markup never fails the parse because the
// underlying html parser is error-tolerant.
func (p *Parser) Extract(r io.Reader, contentType string) (models.ListingRecord, error) {
	doc, err := parse(r, contentType)
	if err != nil {
		return models.ListingRecord{}, err
	}

	rec := models.ListingRecord{Address: DefaultAddress}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		rec.Address = title
	}
	if og := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", "")); og != "" {
		rec.Address = og
	}

	rec.Price = firstPriceText(doc)
	rec.Description = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))

	return rec, nil
}

// parse decodes the markup to UTF-8 (charset may come from the
// Content-Type header or a meta tag) before handing it to goquery.
func parse(r io.Reader, contentType string) (*goquery.Document, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return nil, err
		}
		utf8data = data
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
}

// firstPriceText walks text nodes in document order and returns the first
// one carrying a "$1,234"-shaped amount. Listing pages put the price in a
// bare text node rather than any predictable element, so every text node
// counts, script bodies included: real pages often carry the amount in
// embedded JSON before it shows up in visible markup.
func firstPriceText(doc *goquery.Document) string {
	var price string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && priceRe.MatchString(n.Data) {
			price = strings.TrimSpace(n.Data)
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range doc.Selection.Nodes {
		if walk(n) {
			break
		}
	}
	return price
}
