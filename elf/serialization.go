// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

package elf

import (
	"encoding/binary"
	"io"
)

// Size of the e_ident block at the start of the file header.
const identSize = 16

type elfHeader32 struct {
	Type             uint16
	Machine          uint16
	Version          uint32
	Entry            uint32
	ProgHdrOff       uint32
	SecHdrOff        uint32
	Flags            uint32
	HeaderSize       uint16
	ProgHdrEntrySize uint16
	ProgHdrCount     uint16
	SecHdrEntrySize  uint16
	SecHdrCount      uint16
	SecHdrStrIndex   uint16
}

type sectionHeader32 struct {
	Name      uint32
	Type      uint32
	Flags     uint32
	Address   uint32
	Offset    uint32
	Size      uint32
	Link      uint32
	Info      uint32
	AddrAlign uint32
	EntrySize uint32
}

// ByteOrder is fixed to little endian. The endian byte in e_ident is decoded
// into Header.Endian but never acted on; big endian images are unsupported.
var ByteOrder binary.ByteOrder = binary.LittleEndian

func sizeHeader() int {
	// Add 16 bytes of ELF identification section
	return binary.Size(&elfHeader32{}) + identSize
}

func sizeSectionHeader() int {
	return binary.Size(&sectionHeader32{})
}

func decodeHeader(r io.Reader) (Header, error) {
	var h Header

	ident := make([]byte, identSize)
	if _, err := io.ReadFull(r, ident); err != nil {
		return h, err
	}

	h.Class = FileClass(ident[4])
	h.Endian = FileEndian(ident[5])
	h.HeaderVersion = ident[6]
	h.ABI = FileABI(ident[7])
	h.ABIVersion = ident[8]

	var fh elfHeader32
	if err := binary.Read(r, ByteOrder, &fh); err != nil {
		return h, err
	}

	h.Type = FileType(fh.Type)
	h.Machine = MachineType(fh.Machine)
	h.Version = fh.Version
	h.Entry = fh.Entry
	h.ProgHdrOffset = fh.ProgHdrOff
	h.SecHdrOffset = fh.SecHdrOff
	h.Flags = fh.Flags
	h.HeaderSize = fh.HeaderSize
	h.ProgHdrEntrySize = fh.ProgHdrEntrySize
	h.ProgHdrCount = fh.ProgHdrCount
	h.SecHdrEntrySize = fh.SecHdrEntrySize
	h.SecHdrCount = fh.SecHdrCount
	h.SecHdrStrIndex = fh.SecHdrStrIndex

	return h, nil
}

// Encode writes the header in ELF32 little endian wire layout.
func (h Header) Encode(w io.Writer) error {
	ident := make([]byte, identSize)

	ident[0] = 0x7F
	ident[1] = 0x45
	ident[2] = 0x4C
	ident[3] = 0x46

	ident[4] = uint8(h.Class)
	ident[5] = uint8(h.Endian)
	ident[6] = h.HeaderVersion
	ident[7] = uint8(h.ABI)
	ident[8] = h.ABIVersion

	if _, err := w.Write(ident); err != nil {
		return err
	}

	var fh elfHeader32

	fh.Type = uint16(h.Type)
	fh.Machine = uint16(h.Machine)
	fh.Version = h.Version
	fh.Entry = h.Entry
	fh.ProgHdrOff = h.ProgHdrOffset
	fh.SecHdrOff = h.SecHdrOffset
	fh.Flags = h.Flags
	fh.HeaderSize = h.HeaderSize
	fh.ProgHdrEntrySize = h.ProgHdrEntrySize
	fh.ProgHdrCount = h.ProgHdrCount
	fh.SecHdrEntrySize = h.SecHdrEntrySize
	fh.SecHdrCount = h.SecHdrCount
	fh.SecHdrStrIndex = h.SecHdrStrIndex

	return binary.Write(w, ByteOrder, &fh)
}

func decodeSectionHeader(r io.Reader) (SectionHeader, error) {
	var result SectionHeader

	var sh sectionHeader32
	if err := binary.Read(r, ByteOrder, &sh); err != nil {
		return result, err
	}

	result.NameOffset = sh.Name
	result.Type = SectionHeaderType(sh.Type)
	result.Flags = SectionHeaderFlag(sh.Flags)
	result.Address = sh.Address
	result.Offset = sh.Offset
	result.Size = sh.Size
	result.Link = sh.Link
	result.Info = sh.Info
	result.AddrAlign = sh.AddrAlign
	result.EntrySize = sh.EntrySize

	return result, nil
}

// Encode writes the section header in ELF32 little endian wire layout.
func (s SectionHeader) Encode(w io.Writer) error {
	var sh sectionHeader32

	sh.Name = s.NameOffset
	sh.Type = uint32(s.Type)
	sh.Flags = uint32(s.Flags)
	sh.Address = s.Address
	sh.Offset = s.Offset
	sh.Size = s.Size
	sh.Link = s.Link
	sh.Info = s.Info
	sh.AddrAlign = s.AddrAlign
	sh.EntrySize = s.EntrySize

	return binary.Write(w, ByteOrder, &sh)
}
