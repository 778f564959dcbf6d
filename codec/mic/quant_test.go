/*
DESCRIPTION
  quant_test.go contains tests for the quantizer/dequantizer tables.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"errors"
	"testing"
)

func TestDCMultiplierIsEightForEveryFormat(t *testing.T) {
	for _, f := range []Format{Format0, Format1, Format2} {
		var q Block
		q[0][0] = 10
		x := Dequantize(f, q)
		if x[0][0] != 80 {
			t.Errorf("format %d: DC dequant = %d, want 80 (multiplier 8)", f, x[0][0])
		}
	}
}

func TestQuantizeClampsToSigned9Bit(t *testing.T) {
	var x Block
	x[7][7] = 1 << 20 // wildly out of range pre-quantization coefficient
	q := Quantize(Format0, x)
	if q[7][7] < -256 || q[7][7] > 255 {
		t.Errorf("got %d, want within [-256,255]", q[7][7])
	}
}

func TestQuantizeCheckedReturnsInternalErrorOutOfRange(t *testing.T) {
	var x Block
	x[7][7] = 1 << 20 // same wildly out-of-range coefficient as above
	_, err := QuantizeChecked(Format0, x)
	if err == nil {
		t.Fatal("expected an InternalError, got nil")
	}
	var ie *InternalError
	if !errors.As(err, &ie) {
		t.Errorf("got %T, want *InternalError", err)
	}
}

func TestQuantizeCheckedAgreesWithQuantizeInRange(t *testing.T) {
	var x Block
	x[7][7] = 20
	want := Quantize(Format0, x)
	got, err := QuantizeChecked(Format0, x)
	if err != nil {
		t.Fatalf("QuantizeChecked: %v", err)
	}
	if got != want {
		t.Errorf("QuantizeChecked = %v, want %v (matching Quantize)", got, want)
	}
}

func TestQuantizeShiftsDecreaseAcrossFormats(t *testing.T) {
	// At a fixed high-frequency position, format 0 uses the coarsest
	// shift (6) and format 2 the finest (4), so a small coefficient that
	// format 0 rounds away to zero can still survive under format 2.
	var x Block
	x[7][7] = 20
	q0 := Quantize(Format0, x)
	q2 := Quantize(Format2, x)
	if got := Dequantize(Format0, q0)[7][7]; got != 0 {
		t.Errorf("format 0 dequant = %d, want 0", got)
	}
	if got := Dequantize(Format2, q2)[7][7]; got == 0 {
		t.Errorf("format 2 dequant = 0, want nonzero (finer quantization)")
	}
}
