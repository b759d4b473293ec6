// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// BitcoinNet is the message-start magic that opens every message of a
// network.  It is read from the wire as a little endian uint32, so the
// constants below list the on-wire bytes in reverse.
type BitcoinNet uint32

const (
	// MainNet represents the main network.  Wire bytes: 44 50 4f 53.
	MainNet BitcoinNet = 0x534f5044

	// TestNet represents the public test network.  Wire bytes: 4c 90 34 fb.
	TestNet BitcoinNet = 0xfb34904c

	// RegTest represents the regression test network.  Wire bytes: c5 fc cf 06.
	RegTest BitcoinNet = 0x06cffcc5
)

// bnStrings is a map of networks back to their constant names for
// pretty printing.
var bnStrings = map[BitcoinNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}

// Bytes returns the magic in wire order.
func (n BitcoinNet) Bytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}
