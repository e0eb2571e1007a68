// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

// Package vector locates the reset vector table inside a validated ELF
// image and computes the boot ROM checksum over it. The boot ROM accepts an
// image when the first eight 32 bit words of the vector table sum to zero
// modulo 2^32; words 0 to 6 are the handlers, word 7 is the checksum slot.
package vector

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/itzandroidtab/elfdwt/elf"
)

const (
	// SectionIndex is the section holding the vector table. The targets
	// place it in the first real section after the mandatory null entry;
	// this is a toolchain convention, not a lookup by name or flags.
	SectionIndex = 1

	// WordCount is the size of the table: seven covered words plus the
	// checksum slot.
	WordCount = 8

	// ChecksumWordIndex is the word overwritten with the checksum.
	ChecksumWordIndex = 7

	wordSize = 4
)

var (
	ErrWrongSectionType = errors.New("vector table section does not have the progbits type")
	ErrTruncatedTable   = errors.New("image too small for the vector table")
)

// Table is the vector table view: the file offset of word 0 and the seven
// covered words, decoded little endian. It does not own any image bytes.
type Table struct {
	Offset uint32
	Words  [ChecksumWordIndex]uint32
}

// Locate reads the section header at SectionIndex, checks that it holds
// program data and that the image has all eight words, and returns the
// decoded table.
func Locate(img elf.Image, hdr elf.Header) (*Table, error) {
	section, err := img.Section(hdr, SectionIndex)
	if err != nil {
		return nil, err
	}

	if section.Type != elf.SHT_PROGBITS {
		return nil, fmt.Errorf("%w: section %d has type %d", ErrWrongSectionType, SectionIndex, section.Type)
	}

	if uint64(len(img)) < uint64(section.Offset)+WordCount*wordSize {
		return nil, ErrTruncatedTable
	}

	table := &Table{Offset: section.Offset}
	for i := range table.Words {
		table.Words[i] = binary.LittleEndian.Uint32(img[int(section.Offset)+i*wordSize:])
	}

	return table, nil
}

// Checksum returns the value that makes all eight table words sum to zero
// modulo 2^32: the two's complement negation of the unsigned sum of the
// seven covered words. Overflow wraps around, matching the boot ROM check.
func Checksum(words [ChecksumWordIndex]uint32) uint32 {
	var sum uint32
	for _, word := range words {
		sum += word
	}
	return -sum
}

// Patch overwrites the checksum slot, the four bytes at word offset 7 of
// the table, with checksum encoded little endian. No other byte changes.
func (t *Table) Patch(img elf.Image, checksum uint32) {
	binary.LittleEndian.PutUint32(img[int(t.Offset)+ChecksumWordIndex*wordSize:], checksum)
}
