package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/born-ml/ndshape/internal/shapeinfo"
)

// Entry is a named descriptor.
type Entry struct {
	Name       string
	Descriptor *shapeinfo.Descriptor
}

// Write serializes entries in .bshp format.
func Write(w io.Writer, entries []Entry, metadata map[string]string) error {
	header := Header{
		FormatVersion: FormatVersion,
		LayoutVersion: shapeinfo.LayoutVersion,
		CreatedAt:     time.Now().UTC(),
		Entries:       make([]EntryMeta, 0, len(entries)),
		Metadata:      metadata,
	}

	var data []byte
	var offset int64
	for _, e := range entries {
		if e.Descriptor == nil {
			return fmt.Errorf("entry %q has no descriptor", e.Name)
		}
		words := int64(e.Descriptor.Len())
		header.Entries = append(header.Entries, EntryMeta{
			Name:   e.Name,
			Rank:   e.Descriptor.Rank(),
			Offset: offset,
			Words:  words,
		})
		data = append(data, e.Descriptor.Bytes()...)
		offset += words
	}
	if err := validateHeader(&header, offset, len(entries)); err != nil {
		return fmt.Errorf("invalid entries: %w", err)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], 0) // flags
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))
	sum := computeChecksum(headerJSON, data)
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], sum[:])

	for _, chunk := range [][]byte{fixed, headerJSON, data} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("failed to write: %w", err)
		}
	}
	return nil
}

// WriteFile writes entries to a .bshp file at path.
func WriteFile(path string, entries []Entry, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()
	return Write(file, entries, metadata)
}
