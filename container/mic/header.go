/*
DESCRIPTION
  header.go implements the MIC file header: magic, tag, format, image
  dimensions and the three per-plane (byte,bit) offset records. All
  multi-byte integers are big-endian, grounded on
  container/mts/encoder.go's use of encoding/binary.BigEndian for its own
  header fields.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"encoding/binary"
	"io"

	"github.com/mcmaster-ece/mic/codec/mic"
	"github.com/pkg/errors"
)

const (
	magicHi = 0xEC
	magicLo = 0xE7
	tagByte = 0x44

	// HeaderSize is the fixed size in bytes of the MIC header (everything
	// before the entropy-coded color data begins).
	HeaderSize = 20
)

// PlaneOffset records where a plane's entropy-coded data begins, relative
// to the start of the color-data region (offset HeaderSize in the file):
// ByteOffset is a 24-bit field, BitOffset is an 8-bit field in [0,8).
type PlaneOffset struct {
	ByteOffset uint32 // stored as 24 bits; top byte must be zero
	BitOffset  uint8
}

// Header is the fixed MIC file header.
type Header struct {
	Format     mic.Format
	Rows, Cols uint16
	Offsets    [3]PlaneOffset // indexed by mic.PlaneY, mic.PlaneU, mic.PlaneV
}

// WriteTo serializes the header in the 20-byte on-disk layout described
// in the external interfaces section of the spec.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var buf [HeaderSize]byte
	buf[0], buf[1] = magicHi, magicLo
	buf[2] = tagByte
	buf[3] = byte(h.Format) & 0x3
	binary.BigEndian.PutUint16(buf[4:6], h.Rows)
	binary.BigEndian.PutUint16(buf[6:8], h.Cols)
	for i, off := range h.Offsets {
		base := 8 + i*4
		buf[base] = byte(off.ByteOffset >> 16)
		buf[base+1] = byte(off.ByteOffset >> 8)
		buf[base+2] = byte(off.ByteOffset)
		buf[base+3] = off.BitOffset
	}
	n, err := w.Write(buf[:])
	return int64(n), errors.Wrap(err, "could not write mic header")
}

// ReadHeader reads and validates a 20-byte MIC header from r.
func ReadHeader(r io.Reader) (*Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.Wrap(err, "could not read mic header")
	}
	if buf[0] != magicHi || buf[1] != magicLo {
		return nil, mic.NewFormatError("bad magic %#x%#x", buf[0], buf[1])
	}
	if buf[2] != tagByte {
		return nil, mic.NewFormatError("bad tag byte %#x", buf[2])
	}
	h := &Header{
		Format: mic.Format(buf[3] & 0x3),
		Rows:   binary.BigEndian.Uint16(buf[4:6]),
		Cols:   binary.BigEndian.Uint16(buf[6:8]),
	}
	if !h.Format.Valid() {
		return nil, mic.NewFormatError("bad format field %d", h.Format)
	}
	for i := range h.Offsets {
		base := 8 + i*4
		h.Offsets[i] = PlaneOffset{
			ByteOffset: uint32(buf[base])<<16 | uint32(buf[base+1])<<8 | uint32(buf[base+2]),
			BitOffset:  buf[base+3],
		}
	}
	return h, nil
}
