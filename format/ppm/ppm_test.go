/*
DESCRIPTION
  ppm_test.go tests binary PPM decode/encode round trips.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package ppm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcmaster-ece/mic/codec/mic"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	img := mic.NewRGBImage(2, 3)
	for i := range img.R {
		img.R[i] = byte(10 * i)
		img.G[i] = byte(20 * i)
		img.B[i] = byte(30 * i)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !cmp.Equal(got, img) {
		t.Errorf("round trip mismatch\ngot:  %+v\nwant: %+v", got, img)
	}
}

func TestDecodeSkipsComments(t *testing.T) {
	raw := "P6\n# a comment\n2 1\n# another\n255\n" + string([]byte{10, 20, 30, 40, 50, 60})
	img, err := Decode(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Rows != 1 || img.Cols != 2 {
		t.Fatalf("got %dx%d, want 1x2", img.Rows, img.Cols)
	}
	if img.R[1] != 40 || img.G[1] != 50 || img.B[1] != 60 {
		t.Errorf("second pixel = (%d,%d,%d), want (40,50,60)", img.R[1], img.G[1], img.B[1])
	}
}

func TestDecodeRejectsWrongMagic(t *testing.T) {
	_, err := Decode(strings.NewReader("P5\n1 1\n255\n\x00"))
	if err == nil {
		t.Fatal("expected an error for non-P6 magic, got nil")
	}
}

func TestDecodeRejectsNonByteMaxVal(t *testing.T) {
	_, err := Decode(strings.NewReader("P6\n1 1\n65535\n\x00\x00"))
	if err == nil {
		t.Fatal("expected an error for unsupported maxval, got nil")
	}
}
