package store

import "listing-scraper/internal/models"

// TagStore reads the tag definitions file. Read-only input.
type TagStore struct {
	path string
}

func NewTagStore(path string) *TagStore { return &TagStore{path: path} }

// Load returns the configured tag sets. A missing file yields empty sets,
// so listings are still filed under the address folder alone.
func (s *TagStore) Load() (models.TagSet, error) {
	var ts models.TagSet
	if _, err := readJSON(s.path, &ts); err != nil {
		return models.TagSet{}, err
	}
	return ts, nil
}
