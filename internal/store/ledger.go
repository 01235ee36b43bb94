package store

// LedgerStore tracks which listing URLs have already been processed. The
// on-disk form is a JSON array; the file is rewritten after every Add so
// partial progress survives interruption. Not safe for concurrent
// invocations of the tool.
type LedgerStore struct {
	path string
	urls []string
	seen map[string]struct{}
}

func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path, seen: make(map[string]struct{})}
}

// Load reads the ledger file. A missing file means an empty ledger.
func (s *LedgerStore) Load() error {
	var urls []string
	if _, err := readJSON(s.path, &urls); err != nil {
		return err
	}
	s.urls = urls
	for _, u := range urls {
		s.seen[u] = struct{}{}
	}
	return nil
}

func (s *LedgerStore) Contains(url string) bool {
	_, ok := s.seen[url]
	return ok
}

// Add records url and rewrites the ledger file immediately. Adding a URL
// already present is a no-op.
func (s *LedgerStore) Add(url string) error {
	if s.Contains(url) {
		return nil
	}
	s.urls = append(s.urls, url)
	s.seen[url] = struct{}{}
	return writeJSON(s.path, s.urls)
}

// URLs returns the recorded URLs in insertion order.
func (s *LedgerStore) URLs() []string {
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}
