// Package store persists the tool's state files: the config, the
// processed-URL ledger and the tag definitions. Every store takes its
// path at construction; a missing file yields defaults, a corrupt file is
// an error rather than a silent reset.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Default state-file names, shared on disk with earlier runs.
const (
	DefaultConfigFile = "config.json"
	DefaultLedgerFile = "processed_urls.json"
	DefaultTagsFile   = "tags.json"
	DefaultBaseDir    = "listings"
)

func readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
