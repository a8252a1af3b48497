package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

var countReplacer = strings.NewReplacer(",", "", "_", "", "K", "k")

// parseCount reads a whole number that may use SI suffixes and digit
// separators, such as "1K", "2M", "1,000" or "1_000".
func parseCount(s string) (uint64, error) {
	clean := countReplacer.Replace(strings.TrimSpace(s))
	n, unit, err := humanize.ParseSI(clean)
	if err != nil || unit != "" {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	if n < 0 || n != math.Trunc(n) || n >= math.MaxUint64 {
		return 0, fmt.Errorf("invalid count %q: must be a non-negative whole number", s)
	}
	return uint64(n), nil
}

// parseBytes reads a byte size such as "512", "10MB" or "1GiB".
func parseBytes(s string) (uint64, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n, nil
}
