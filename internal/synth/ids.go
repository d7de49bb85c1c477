package synth

import (
	"fmt"
	"strconv"
)

const (
	// IDWidth is the fixed number of digits of a generated identifier.
	IDWidth = 9

	// IDSpace is the size of the identifier space [0, 10^9-1].
	IDSpace = 1_000_000_000

	// maxLoadFactor bounds how full the space may get before rejection
	// sampling is refused.
	maxLoadFactor = 0.9
)

// FormatID renders n as a zero-padded identifier.
func FormatID(n int64) string {
	return fmt.Sprintf("%0*d", IDWidth, n)
}

// IsID reports whether s is a well formed identifier.
func IsID(s string) bool {
	if len(s) != IDWidth {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// ReserveIDs draws count unique identifiers that are not in excluded.
// Candidates are drawn uniformly and rejected when already produced or
// excluded. The result is in draw order.
func ReserveIDs(src *Source, count int, excluded map[string]struct{}) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("reserve ids: count=%d < 0: %w", count, ErrConfiguration)
	}
	limit := int(maxLoadFactor * IDSpace)
	if count+len(excluded) > limit {
		return nil, fmt.Errorf("reserve ids: count=%d with %d excluded exceeds limit %d: %w",
			count, len(excluded), limit, ErrCapacity)
	}

	seen := make(map[string]struct{}, count)
	ids := make([]string, 0, count)
	for len(ids) < count {
		id := FormatID(src.Int64N(IDSpace))
		if _, ok := excluded[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
