// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

package elf

type FileClass uint8

const (
	ELFCLASS32 FileClass = 1
	ELFCLASS64 FileClass = 2
)

type FileEndian uint8

const (
	ELFDATA2LSB FileEndian = 1
	ELFDATA2MSB FileEndian = 2
)

type FileABI uint8

type FileType uint16

const (
	ET_NONE FileType = 0
	ET_REL  FileType = 1
	ET_EXEC FileType = 2
	ET_DYN  FileType = 3
	ET_CORE FileType = 4
)

type MachineType uint16

const (
	EM_NONE MachineType = 0
	EM_ARM  MachineType = 40 // ARM processor, the usual target for these boot ROMs
)

// Section header index
const (
	SHN_UNDEF = 0
)

type SectionHeaderType uint32

const (
	SHT_NULL     SectionHeaderType = 0
	SHT_PROGBITS SectionHeaderType = 1
	SHT_SYMTAB   SectionHeaderType = 2
	SHT_STRTAB   SectionHeaderType = 3
	SHT_RELA     SectionHeaderType = 4
	SHT_HASH     SectionHeaderType = 5
	SHT_DYNAMIC  SectionHeaderType = 6
	SHT_NOTE     SectionHeaderType = 7
	SHT_NOBITS   SectionHeaderType = 8
	SHT_REL      SectionHeaderType = 9
)

// Section header flags
type SectionHeaderFlag uint32

const (
	SHF_WRITE     SectionHeaderFlag = 0x00000001
	SHF_ALLOC     SectionHeaderFlag = 0x00000002
	SHF_EXECINSTR SectionHeaderFlag = 0x00000004
)
