// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

// Package elfdwt patches the boot ROM vector table checksum of an ELF32
// little endian firmware image. The whole run is one pass: load the file,
// validate the structure, locate the vector table, compute the checksum and
// write the patched buffer back. Any failure before the final write leaves
// the file on disk untouched.
package elfdwt

import (
	"fmt"

	"github.com/itzandroidtab/elfdwt/elf"
	"github.com/itzandroidtab/elfdwt/vector"
)

// Result reports what a successful patch did. Offsets are byte offsets
// relative to the start of the vector table section.
type Result struct {
	Path string

	// RangeStart and RangeEnd delimit the words covered by the checksum.
	RangeStart uint32
	RangeEnd   uint32

	// ChecksumOffset is where the checksum word was written.
	ChecksumOffset uint32
	Checksum       uint32
}

// PatchFile patches the file at path in place and reports the checksum that
// was written. On error the file has not been modified, except when the
// final write itself fails, which can leave a partially written file.
func PatchFile(path string) (*Result, error) {
	img, err := elf.Load(path)
	if err != nil {
		return nil, err
	}

	hdr, err := img.Validate()
	if err != nil {
		return nil, err
	}

	table, err := vector.Locate(img, hdr)
	if err != nil {
		return nil, err
	}

	checksum := vector.Checksum(table.Words)
	table.Patch(img, checksum)

	if err := img.Save(path); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return &Result{
		Path:           path,
		RangeStart:     0,
		RangeEnd:       (vector.ChecksumWordIndex - 1) * 4,
		ChecksumOffset: vector.ChecksumWordIndex * 4,
		Checksum:       checksum,
	}, nil
}
