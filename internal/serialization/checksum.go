package serialization

import (
	"crypto/sha256"
)

// computeChecksum hashes the JSON header followed by the data section.
func computeChecksum(header, data []byte) [ChecksumSize]byte {
	h := sha256.New()
	h.Write(header)
	h.Write(data)
	var sum [ChecksumSize]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// validateChecksum compares computed checksum against stored checksum.
func validateChecksum(computed, stored [ChecksumSize]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
