package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/ndshape/internal/shapeinfo"
)

// ReaderOptions configures Read.
type ReaderOptions struct {
	SkipChecksumValidation bool // Skip checksum validation (faster but less safe)
	MaxEntries             int  // Entry limit; zero means MaxEntries
}

// Table is the decoded content of a .bshp file.
type Table struct {
	Header  Header
	Entries []Entry
	index   map[string]int
}

// Lookup returns the descriptor stored under name.
func (t *Table) Lookup(name string) (*shapeinfo.Descriptor, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.Entries[i].Descriptor, true
}

// Read parses a .bshp stream.
func Read(r io.Reader, opts ReaderOptions) (*Table, error) {
	maxEntries := opts.MaxEntries
	if maxEntries == 0 {
		maxEntries = MaxEntries
	}

	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if !bytes.Equal(fixed[0:4], []byte(MagicBytes)) {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > maxDataSize || dataSize%wordSize != 0 {
		return nil, &ValidationError{Err: ErrOutOfBounds, Details: fmt.Sprintf("data size %d", dataSize)}
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header JSON: %w", err)
	}
	data := make([]byte, dataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := validateChecksum(computeChecksum(headerJSON, data), stored); err != nil {
			return nil, err
		}
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}
	if header.LayoutVersion != shapeinfo.LayoutVersion {
		return nil, fmt.Errorf("%w: layout version %d", ErrUnsupportedVersion, header.LayoutVersion)
	}
	//nolint:gosec // G115: dataSize is bounded by maxDataSize
	if err := validateHeader(&header, int64(dataSize/wordSize), maxEntries); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	table := &Table{
		Header:  header,
		Entries: make([]Entry, 0, len(header.Entries)),
		index:   make(map[string]int, len(header.Entries)),
	}
	for _, meta := range header.Entries {
		start := meta.Offset * wordSize
		desc, err := shapeinfo.DecodeBytes(data[start : start+meta.Words*wordSize])
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", meta.Name, err)
		}
		table.index[meta.Name] = len(table.Entries)
		table.Entries = append(table.Entries, Entry{Name: meta.Name, Descriptor: desc})
	}
	return table, nil
}

// ReadFile reads a .bshp file from path.
func ReadFile(path string, opts ReaderOptions) (*Table, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Read(file, opts)
}
