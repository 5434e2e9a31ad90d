package serialization

import (
	"fmt"
	"strings"

	"github.com/born-ml/ndshape/internal/shapeinfo"
)

// maxEntryRank bounds ranks read from untrusted headers before lengths are
// computed from them.
const maxEntryRank = 1 << 16

// ValidateEntryName rejects empty, oversized, and control-character names.
func ValidateEntryName(name string) error {
	if name == "" {
		return &ValidationError{Err: ErrInvalidEntryName, Details: "empty name"}
	}
	if len(name) > MaxEntryNameLen {
		return &ValidationError{
			Err:     ErrInvalidEntryName,
			Entry:   name[:32] + "...",
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxEntryNameLen),
		}
	}
	if strings.ContainsAny(name, "\x00\n\r") {
		return &ValidationError{Err: ErrInvalidEntryName, Entry: name, Details: "contains control character"}
	}
	return nil
}

// validateHeader checks the entry table against the data section: names
// are valid and unique, lengths match ranks, and every entry lies inside
// the data without overlapping its neighbours.
func validateHeader(h *Header, dataWords int64, maxEntries int) error {
	if len(h.Entries) > maxEntries {
		return &ValidationError{
			Err:     ErrTooManyEntries,
			Details: fmt.Sprintf("%d entries > max %d", len(h.Entries), maxEntries),
		}
	}

	seen := make(map[string]struct{}, len(h.Entries))
	var next int64
	for _, e := range h.Entries {
		if err := ValidateEntryName(e.Name); err != nil {
			return err
		}
		if _, dup := seen[e.Name]; dup {
			return &ValidationError{Err: ErrDuplicateEntry, Entry: e.Name, Details: "name appears twice"}
		}
		seen[e.Name] = struct{}{}

		if e.Rank <= 0 || e.Rank > maxEntryRank || int64(shapeinfo.Length(e.Rank)) != e.Words {
			return &ValidationError{
				Err:     ErrOutOfBounds,
				Entry:   e.Name,
				Details: fmt.Sprintf("%d words for rank %d", e.Words, e.Rank),
			}
		}
		if e.Offset != next || e.Offset+e.Words > dataWords {
			return &ValidationError{
				Err:     ErrOutOfBounds,
				Entry:   e.Name,
				Details: fmt.Sprintf("words [%d, %d) in data of %d words, expected offset %d", e.Offset, e.Offset+e.Words, dataWords, next),
			}
		}
		next = e.Offset + e.Words
	}
	if next != dataWords {
		return &ValidationError{Err: ErrOutOfBounds, Details: fmt.Sprintf("%d trailing words", dataWords-next)}
	}
	return nil
}
