package serialization

import (
	"time"
)

// Format constants.
const (
	MagicBytes      = "BSHP"
	FormatVersion   = 1
	FixedHeaderSize = 64        // 0x40
	ChecksumOffset  = 0x20      // Checksum offset in the fixed header
	ChecksumSize    = 32        // SHA-256 checksum size
	MaxHeaderSize   = 16 << 20  // Largest accepted JSON header
	MaxEntries      = 1 << 16   // Default entry limit for readers
	MaxEntryNameLen = 256       // Longest accepted entry name
	wordSize        = 8         // Bytes per descriptor word
	maxDataSize     = 256 << 20 // Largest accepted data section
)

// Header represents the JSON header in a .bshp file.
type Header struct {
	FormatVersion int               `json:"format_version"`     // Version of the .bshp format
	LayoutVersion int               `json:"layout_version"`     // shapeinfo layout version of the descriptors
	CreatedAt     time.Time         `json:"created_at"`         // When the file was created
	Entries       []EntryMeta       `json:"entries"`            // Descriptor table
	Metadata      map[string]string `json:"metadata,omitempty"` // Custom metadata
}

// EntryMeta locates one descriptor in the data section.
type EntryMeta struct {
	Name   string `json:"name"`   // Entry name (e.g., "conv0.out")
	Rank   int    `json:"rank"`   // Rank of the descriptor
	Offset int64  `json:"offset"` // Offset in words from the start of the data section
	Words  int64  `json:"words"`  // Descriptor length in words
}
