package classifier

import (
	"regexp"
	"strings"

	"listing-scraper/internal/models"
)

// Classifier matches configured tag keywords against listing text.
type Classifier struct{}

func New() *Classifier { return &Classifier{} }

var nonWordRe = regexp.MustCompile(`\W+`)

// normalize lowercases s and strips every non-word character so that
// "Open-Concept", "open concept" and "openconcept" all compare equal.
func normalize(s string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(s), "")
}

// Detect returns the tags whose normalized keyword occurs as a substring
// of the normalized text. A leading '#' on a tag is stripped; tags that
// normalize to nothing never match. Output order follows the tag list,
// not occurrence order in the text.
func (c *Classifier) Detect(text string, tags []string) []string {
	haystack := normalize(text)
	var found []string
	for _, tag := range tags {
		keyword := normalize(strings.TrimLeft(tag, "#"))
		if keyword == "" {
			continue
		}
		if strings.Contains(haystack, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// Classify splits a listing description into feature and style tags.
// Feature tags (room features, then unique features) come before style
// tags in the folder hierarchy built from them.
func (c *Classifier) Classify(desc string, ts models.TagSet) (features, styles []string) {
	styles = c.Detect(desc, ts.ArchitecturalStyles)
	keywords := make([]string, 0, len(ts.RoomFeatures)+len(ts.UniqueFeatures))
	keywords = append(keywords, ts.RoomFeatures...)
	keywords = append(keywords, ts.UniqueFeatures...)
	features = c.Detect(desc, keywords)
	return features, styles
}
