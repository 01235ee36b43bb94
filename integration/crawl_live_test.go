//go:build integration

package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"listing-scraper/internal/crawler"
	"listing-scraper/internal/parser"
)

func TestLivePageExtraction(t *testing.T) {
	// any content-rich public page works; we only check the pipeline
	// holds up against real-world markup
	url := "https://en.wikipedia.org/wiki/Real_estate"

	client := crawler.New(25*time.Second, time.Second, crawler.DefaultUserAgent, 5*1024*1024)
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	page, ct, err := client.FetchPage(ctx, url)
	if err != nil {
		t.Skipf("skipping: fetch failed due to network: %v", err)
		return
	}

	p := parser.New()
	rec, err := p.Extract(bytes.NewReader(page), ct)
	if err != nil {
		t.Fatalf("extract failed on live markup: %v", err)
	}
	if rec.Address == parser.DefaultAddress {
		t.Errorf("expected a page title, got placeholder address")
	}

	if _, err := p.ImageURLs(bytes.NewReader(page), url); err != nil {
		t.Errorf("image scan failed on live markup: %v", err)
	}
}
