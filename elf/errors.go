// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

package elf

import "errors"

var (
	// ErrEmptyFile marks a file that opened fine but held zero bytes; a
	// zero byte image can never be a valid ELF file.
	ErrEmptyFile = errors.New("empty or unreadable file, not a valid elf image")

	ErrInvalidSignature      = errors.New("invalid elf signature")
	ErrTruncatedHeader       = errors.New("image too small for the elf file header")
	ErrTooFewSections        = errors.New("not enough sections, need the null entry and at least one real section")
	ErrTruncatedSectionTable = errors.New("image too small for the section header table")
)
