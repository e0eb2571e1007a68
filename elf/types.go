// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

// Package elf holds the ELF32 little endian data model used by elfdwt: the
// raw image buffer, decoded header records and the structural checks that
// must pass before the vector table is touched.
package elf

// Header is the decoded ELF file header. It is a read-only view over the
// first bytes of an Image; mutating it has no effect on the image.
type Header struct {
	// Identification
	Class         FileClass
	Endian        FileEndian
	HeaderVersion uint8
	ABI           FileABI
	ABIVersion    uint8

	// Header
	Type             FileType
	Machine          MachineType
	Version          uint32
	Entry            uint32
	ProgHdrOffset    uint32
	SecHdrOffset     uint32
	Flags            uint32
	HeaderSize       uint16
	ProgHdrEntrySize uint16
	ProgHdrCount     uint16
	SecHdrEntrySize  uint16
	SecHdrCount      uint16
	SecHdrStrIndex   uint16
}

// SectionHeader is one decoded entry of the section header table. Offset and
// Size describe where the section's bytes live inside the image.
type SectionHeader struct {
	NameOffset uint32
	Type       SectionHeaderType
	Flags      SectionHeaderFlag
	Address    uint32
	Offset     uint32
	Size       uint32
	Link       uint32
	Info       uint32
	AddrAlign  uint32
	EntrySize  uint32
}
