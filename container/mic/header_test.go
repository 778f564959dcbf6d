/*
DESCRIPTION
  header_test.go contains tests for MIC header framing.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcmaster-ece/mic/codec/mic"
)

func TestHeaderWriteReadRoundTrip(t *testing.T) {
	want := &Header{
		Format: mic.Format1,
		Rows:   32,
		Cols:   16,
		Offsets: [3]PlaneOffset{
			{ByteOffset: 0, BitOffset: 0},
			{ByteOffset: 120, BitOffset: 3},
			{ByteOffset: 240, BitOffset: 5},
		},
	}
	var buf bytes.Buffer
	if _, err := want.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.Len() != HeaderSize {
		t.Fatalf("got %d header bytes, want %d", buf.Len(), HeaderSize)
	}
	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if !cmp.Equal(got, want) {
		t.Errorf("header round trip mismatch\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	buf := make([]byte, HeaderSize)
	buf[0], buf[1] = 0x00, 0x00
	_, err := ReadHeader(bytes.NewReader(buf))
	if err == nil {
		t.Fatal("expected an error for bad magic, got nil")
	}
	var fe *mic.FormatError
	if !errors.As(err, &fe) {
		t.Errorf("got %T, want a FormatError (possibly wrapped)", err)
	}
}
