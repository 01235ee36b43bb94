package downloader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123 Main St", "123_Main_St"},
		{`a\b/c:d*e?f<g>h|i`, "a_b_c_d_e_f_g_h_i"},
		{"  leading and   trailing  ", "leading_and_trailing"},
		{"", ""},
		{"already_clean", "already_clean"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "Sanitize(%q)", tt.in)
	}
}

func TestSanitizeProperties(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 300),
		"a\tb\nc d",
		`C:\Users\nobody\Desktop ? <important> | notes`,
		strings.Repeat("路", 150),
	}
	for _, in := range inputs {
		out := Sanitize(in)
		assert.NotContains(t, out, " ")
		for _, c := range `\/:*?<>|` {
			assert.NotContains(t, out, string(c), "input %q", in)
		}
		assert.LessOrEqual(t, len([]rune(out)), 100, "input %q", in)
	}
}

func TestTargetDir(t *testing.T) {
	dir := TargetDir("listings", "123 Main St", []string{"pool", "openconcept"})
	assert.Equal(t, filepath.Join("listings", "123_Main_St", "pool", "openconcept"), dir)

	// no tags: just the address folder
	assert.Equal(t, filepath.Join("out", "unknown_address"), TargetDir("out", "unknown_address", nil))
}
