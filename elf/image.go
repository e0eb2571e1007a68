// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

package elf

import (
	"bytes"
	"fmt"
	"os"
)

var signature = [4]byte{0x7F, 0x45, 0x4C, 0x46}

// Image is the whole file held in memory. The patch step mutates it in
// place and Save writes it back byte for byte, so the buffer is the single
// source of truth for the file contents.
type Image []byte

// Load reads the file at path fully into memory. A zero byte file is
// reported as ErrEmptyFile rather than a plain read error.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return Image(data), nil
}

// Save rewrites path in place with a truncating write. The load and the
// save are two separate opens with no lock held in between, so another
// writer can race the gap, and an interrupted write leaves the file torn.
func (img Image) Save(path string) error {
	return os.WriteFile(path, img, 0o644)
}

// Validate runs the structural checks in order and returns the decoded file
// header. Each check only dereferences fields the checks before it proved
// to be in bounds:
//
//  1. the 4 byte ELF signature
//  2. enough bytes for the full file header
//  3. at least two section header entries (null entry plus one real one)
//  4. the whole section header table inside the image
//
// The image is not modified.
func (img Image) Validate() (Header, error) {
	if len(img) < len(signature) || !bytes.Equal(img[:len(signature)], signature[:]) {
		return Header{}, ErrInvalidSignature
	}

	if len(img) < sizeHeader() {
		return Header{}, ErrTruncatedHeader
	}

	hdr, err := decodeHeader(bytes.NewReader(img))
	if err != nil {
		return Header{}, err
	}

	if hdr.SecHdrCount < 2 {
		return Header{}, ErrTooFewSections
	}

	need := uint64(hdr.SecHdrOffset) + uint64(hdr.SecHdrCount)*uint64(sizeSectionHeader())
	if uint64(len(img)) < need {
		return Header{}, ErrTruncatedSectionTable
	}

	return hdr, nil
}

// Section decodes entry index of the section header table. The caller must
// have validated the image first; Validate proves the whole table is in
// bounds for indices below SecHdrCount.
func (img Image) Section(hdr Header, index int) (SectionHeader, error) {
	if index < 0 || index >= int(hdr.SecHdrCount) {
		return SectionHeader{}, fmt.Errorf("section index %d out of range, image has %d sections", index, hdr.SecHdrCount)
	}

	offset := int(hdr.SecHdrOffset) + index*sizeSectionHeader()
	return decodeSectionHeader(bytes.NewReader(img[offset:]))
}
