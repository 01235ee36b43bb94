package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><title>x</title></html>"))
	}))
	defer ts.Close()

	client := New(5*time.Second, 0, DefaultUserAgent, 1024)
	body, ct, err := client.FetchPage(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	if !strings.Contains(string(body), "<title>x</title>") {
		t.Fatalf("unexpected body %q", body)
	}
	if ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestFetchPageStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := New(5*time.Second, 0, DefaultUserAgent, 1024)
	if _, _, err := client.FetchPage(context.Background(), ts.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestFetchPageInvalidURL(t *testing.T) {
	client := New(5*time.Second, 0, DefaultUserAgent, 1024)
	if _, _, err := client.FetchPage(context.Background(), "not a url"); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func TestFetchImage(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer ts.Close()

	client := New(5*time.Second, 0, DefaultUserAgent, 1024)
	data, ct, err := client.FetchImage(context.Background(), ts.URL+"/img_1.jpg")
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	if string(data) != string(payload) || ct != "image/jpeg" {
		t.Fatalf("unexpected response %v %q", data, ct)
	}
}

func TestPoliteDelaySpacesRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	delay := 50 * time.Millisecond
	client := New(5*time.Second, delay, DefaultUserAgent, 1024)

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, _, err := client.FetchImage(context.Background(), ts.URL); err != nil {
			t.Fatalf("fetch err: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("second request not delayed: elapsed %v < %v", elapsed, delay)
	}
}

func TestSizeCap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer ts.Close()

	client := New(5*time.Second, 0, DefaultUserAgent, 10)
	data, _, err := client.FetchImage(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	if len(data) != 10 {
		t.Fatalf("size cap not enforced, got %d bytes", len(data))
	}
}
