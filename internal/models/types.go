package models

// ListingRecord holds the metadata extracted from a single listing page.
// Fields degrade to placeholder/empty values when the markup lacks them.
type ListingRecord struct {
	Address     string `json:"address"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description,omitempty"`
}

// TagSet groups the configured tag keywords by category. Loaded once per
// run, read-only afterwards.
type TagSet struct {
	ArchitecturalStyles []string `json:"architectural_style_tags"`
	RoomFeatures        []string `json:"room_feature_tags"`
	UniqueFeatures      []string `json:"unique_feature_tags"`
}

// Status is how far a URL made it through the pipeline.
type Status string

const (
	StatusSkipped    Status = "skipped"
	StatusFailed     Status = "failed"
	StatusFetched    Status = "fetched"
	StatusExtracted  Status = "extracted"
	StatusTagged     Status = "tagged"
	StatusDownloaded Status = "downloaded"
	StatusRecorded   Status = "recorded"
)

// Result summarizes one processed URL.
type Result struct {
	URL     string         `json:"url"`
	Status  Status         `json:"status"`
	Listing *ListingRecord `json:"listing,omitempty"`
	Tags    []string       `json:"tags,omitempty"`
	Dir     string         `json:"dir,omitempty"`
	Images  int            `json:"images"`
	Err     error          `json:"-"`
}
