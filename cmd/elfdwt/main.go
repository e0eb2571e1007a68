// SPDX-License-Identifier: MIT
//
// Copyright (c) 2026 itzandroidtab

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/itzandroidtab/elfdwt"
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]),
		"Patch the boot ROM vector table checksum of an ELF32 little endian firmware image.").UsageWriter(os.Stdout)
	app.HelpFlag.Short('h')
	file := app.Arg("file", "Path to the ELF file to patch in place.").Required().String()

	fmt.Println("elfdwt for little endian")

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	result, err := elfdwt.PatchFile(*file)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Signature over range: 0x%08x - 0x%08x: 0x%08x = 0x%08x\n",
		result.RangeStart, result.RangeEnd, result.ChecksumOffset, result.Checksum)
	fmt.Println("Processing completed, success")
}
