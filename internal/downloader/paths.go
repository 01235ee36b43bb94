package downloader

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	reservedRe   = regexp.MustCompile(`[\\/:*?<>|]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

const maxSegmentLen = 100

// Sanitize converts arbitrary text into a single filesystem-safe path
// segment: reserved characters become underscores, whitespace runs
// collapse to one underscore, and the result is capped at 100 characters.
func Sanitize(text string) string {
	s := reservedRe.ReplaceAllString(text, "_")
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
	if r := []rune(s); len(r) > maxSegmentLen {
		s = string(r[:maxSegmentLen])
	}
	return s
}

// TargetDir builds the destination folder for a listing: base dir, the
// sanitized address, then one nested folder per detected tag. Segments
// are collected first and joined once.
func TargetDir(baseDir, address string, tags []string) string {
	segments := make([]string, 0, len(tags)+2)
	segments = append(segments, baseDir, Sanitize(address))
	for _, tag := range tags {
		segments = append(segments, Sanitize(tag))
	}
	return filepath.Join(segments...)
}
