// Package serialization stores compact symmetric tensors in the .sym format.
//
// File layout:
//
//	0x00  magic "SYMT"
//	0x04  format version (uint32, little endian)
//	0x08  flags (uint32)
//	0x0C  reserved
//	0x10  header size in bytes (uint64)
//	0x18  data size in bytes (uint64)
//	0x20  SHA-256 checksum of the data section (32 bytes)
//	0x40  JSON header, zero padded to a multiple of 64 bytes
//	      data section: the compact storage slots in layout order
//
// The JSON header records the rank, dimension, element type and the groups
// of the configuration, so a file can be read without knowing its layout in
// advance. Elements are little endian; int is widened to int64 on disk.
package serialization
