// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

package elf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader(secCount uint16) Header {
	return Header{
		Class:           ELFCLASS32,
		Endian:          ELFDATA2LSB,
		HeaderVersion:   1,
		Type:            ET_EXEC,
		Machine:         EM_ARM,
		Version:         1,
		SecHdrOffset:    uint32(sizeHeader()),
		HeaderSize:      uint16(sizeHeader()),
		SecHdrEntrySize: uint16(sizeSectionHeader()),
		SecHdrCount:     secCount,
	}
}

func encodeImage(t *testing.T, hdr Header, sections []SectionHeader, data []byte) Image {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, hdr.Encode(&buf), "header encode")
	for _, section := range sections {
		require.NoError(t, section.Encode(&buf), "section header encode")
	}
	buf.Write(data)

	return Image(buf.Bytes())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.elf"))
	assert.Error(t, err, "missing file")
	assert.NotErrorIs(t, err, ErrEmptyFile, "missing file is an io error, not an empty image")
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.elf")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyFile, "zero byte file")
}

func TestLoadReadsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.elf")
	contents := []byte{0x7F, 0x45, 0x4C, 0x46, 0xAA}
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	img, err := Load(path)
	require.NoError(t, err, "load")
	assert.Equal(t, Image(contents), img, "image bytes")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.elf")
	require.NoError(t, os.WriteFile(path, []byte("old contents, longer than the image"), 0o644))

	img := Image{1, 2, 3, 4}
	require.NoError(t, img.Save(path), "save")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(img), written, "save truncates and replaces")
}

func TestValidateSignature(t *testing.T) {
	_, err := Image{0x7F, 0x45, 0x4C}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSignature, "file shorter than the signature")

	_, err = Image("MZ\x90\x00 definitely not an elf file").Validate()
	assert.ErrorIs(t, err, ErrInvalidSignature, "wrong magic bytes")
}

func TestValidateTruncatedHeader(t *testing.T) {
	img := make(Image, sizeHeader()-1)
	copy(img, signature[:])

	_, err := img.Validate()
	assert.ErrorIs(t, err, ErrTruncatedHeader, "one byte short of a full header")
}

func TestValidateTooFewSections(t *testing.T) {
	img := encodeImage(t, testHeader(1), []SectionHeader{{}}, nil)

	_, err := img.Validate()
	assert.ErrorIs(t, err, ErrTooFewSections, "only the null entry")
}

func TestValidateSectionTableBoundary(t *testing.T) {
	// Null entry plus one real section, no section data: the image ends
	// exactly where the section header table ends.
	img := encodeImage(t, testHeader(2), []SectionHeader{{}, {Type: SHT_PROGBITS}}, nil)

	hdr, err := img.Validate()
	require.NoError(t, err, "exact fit")
	assert.Equal(t, uint16(2), hdr.SecHdrCount, "decoded section count")

	_, err = img[:len(img)-1].Validate()
	assert.ErrorIs(t, err, ErrTruncatedSectionTable, "one byte short of the table")
}

func TestSectionDecodesEntry(t *testing.T) {
	want := SectionHeader{
		Type:    SHT_PROGBITS,
		Flags:   SHF_ALLOC,
		Address: 0x10000000,
		Offset:  132,
		Size:    32,
	}
	img := encodeImage(t, testHeader(2), []SectionHeader{{}, want}, nil)

	hdr, err := img.Validate()
	require.NoError(t, err)

	section, err := img.Section(hdr, 1)
	require.NoError(t, err, "section decode")
	assert.Equal(t, want, section, "section fields")

	null, err := img.Section(hdr, 0)
	require.NoError(t, err)
	assert.Equal(t, SectionHeader{}, null, "null entry is all zero")

	_, err = img.Section(hdr, 2)
	assert.Error(t, err, "index past the table")
}
