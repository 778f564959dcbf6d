/*
DESCRIPTION
  bmp_test.go tests BMP decode/encode round trips.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package bmp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcmaster-ece/mic/codec/mic"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	img := mic.NewRGBImage(16, 32)
	for i := range img.R {
		img.R[i] = byte(7 * i)
		img.G[i] = byte(11 * i)
		img.B[i] = byte(13 * i)
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

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a bmp file")))
	if err == nil {
		t.Fatal("expected an error for malformed input, got nil")
	}
}

func TestDecodeRejectsNonMultipleOf16Dimensions(t *testing.T) {
	img := mic.NewRGBImage(4, 5)
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err := Decode(&buf)
	if err == nil {
		t.Fatal("expected an InputError for 4x5 dimensions, got nil")
	}
	var ie *mic.InputError
	if !errors.As(err, &ie) {
		t.Errorf("got %T, want *mic.InputError", err)
	}
}
