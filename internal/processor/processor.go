package processor

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"listing-scraper/internal/downloader"
	"listing-scraper/internal/models"
	"listing-scraper/pkg/logger"
)

// PageFetcher retrieves listing page markup.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) ([]byte, string, error)
}

// Extractor turns markup into structured listing data.
type Extractor interface {
	Extract(r io.Reader, contentType string) (models.ListingRecord, error)
	ImageURLs(r io.Reader, pageURL string) ([]string, error)
}

// Tagger classifies a description into feature and style tags.
type Tagger interface {
	Classify(desc string, ts models.TagSet) (features, styles []string)
}

// ImageDownloader writes an image batch into a directory.
type ImageDownloader interface {
	Download(ctx context.Context, urls []string, dir string) (int, error)
}

// Ledger is the processed-URL record.
type Ledger interface {
	Contains(url string) bool
	Add(url string) error
}

// Params collects the Processor's collaborators.
type Params struct {
	Fetcher    PageFetcher
	Extractor  Extractor
	Tagger     Tagger
	Downloader ImageDownloader
	Ledger     Ledger
	Tags       models.TagSet
	BaseDir    string
	Log        *logger.Logger
}

// Processor runs the per-URL pipeline: fetch, extract, tag, download,
// record.
type Processor struct {
	p Params
}

func New(p Params) *Processor { return &Processor{p: p} }

// Process runs one URL through the pipeline. A URL already in the ledger
// is skipped; a fetch failure is terminal for that URL only, with no
// retry and no ledger update. Once extraction succeeds the URL is always
// recorded — even when every image download fails — because the ledger
// tracks listings visited, not images completed. The returned error is
// non-nil only for filesystem failures, which abort the whole run.
func (pr *Processor) Process(ctx context.Context, url string) (models.Result, error) {
	p := pr.p

	if p.Ledger.Contains(url) {
		p.Log.Infof("skipping already processed URL: %s", url)
		return models.Result{URL: url, Status: models.StatusSkipped}, nil
	}

	page, contentType, err := p.Fetcher.FetchPage(ctx, url)
	if err != nil {
		p.Log.Errorf("failed to fetch %s: %v", url, err)
		return models.Result{URL: url, Status: models.StatusFailed, Err: err}, nil
	}
	res := models.Result{URL: url, Status: models.StatusFetched}

	rec, err := p.Extractor.Extract(bytes.NewReader(page), contentType)
	if err != nil {
		p.Log.Errorf("failed to parse %s: %v", url, err)
		res.Status = models.StatusFailed
		res.Err = err
		return res, nil
	}
	res.Listing = &rec
	res.Status = models.StatusExtracted
	p.Log.Infof("fetched data for %s: address=%q price=%q", url, rec.Address, rec.Price)

	features, styles := p.Tagger.Classify(rec.Description, p.Tags)
	res.Tags = append(append([]string{}, features...), styles...)
	res.Status = models.StatusTagged

	res.Dir = downloader.TargetDir(p.BaseDir, rec.Address, res.Tags)

	imageURLs, err := p.Extractor.ImageURLs(bytes.NewReader(page), url)
	if err != nil {
		// degrade to an empty batch; the listing still counts as visited
		p.Log.Errorf("failed to scan images on %s: %v", url, err)
	}
	n, err := p.Downloader.Download(ctx, imageURLs, res.Dir)
	res.Images = n
	if err != nil {
		return res, fmt.Errorf("download images for %s: %w", url, err)
	}
	res.Status = models.StatusDownloaded

	if err := p.Ledger.Add(url); err != nil {
		return res, fmt.Errorf("record %s: %w", url, err)
	}
	res.Status = models.StatusRecorded
	p.Log.Infof("processed %s: %d images in %s", url, n, res.Dir)
	return res, nil
}
