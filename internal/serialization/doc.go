// Package serialization provides the .bshp format for saving and loading
// named shape descriptors.
//
//	Format Structure:
//	  0x00 [4 bytes: Magic "BSHP"]
//	  0x04 [4 bytes: Version (uint32 LE)]
//	  0x08 [4 bytes: Flags (uint32 LE)]
//	  0x0C [4 bytes: Reserved]
//	  0x10 [8 bytes: Header Size (uint64 LE)]
//	  0x18 [8 bytes: Data Size (uint64 LE)]
//	  0x20 [32 bytes: SHA-256 of header JSON followed by data]
//	  0x40 [Header: JSON table of entries]
//	       [Data: descriptor words, int64 LE, concatenated]
//
// Every entry in the header names a descriptor and gives its word offset
// and length in the data section. Descriptors are re-validated through
// shapeinfo.Decode on load, so a file can never yield a malformed
// descriptor.
//
// Example usage:
//
//	err := serialization.WriteFile("shapes.bshp", []serialization.Entry{
//	    {Name: "conv0.out", Descriptor: desc},
//	}, nil)
//
//	table, err := serialization.ReadFile("shapes.bshp", serialization.ReaderOptions{})
//	desc, ok := table.Lookup("conv0.out")
package serialization
