/*
DESCRIPTION
  quant.go implements the position-dependent quantizer and dequantizer:
  three shift tables selected by a 2-bit format field, keyed by the
  coefficient's zigzag "distance" d = i+j.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import "sort"

// Format selects one of the three quantization shift tables.
type Format int

const (
	Format0 Format = 0
	Format1 Format = 1
	Format2 Format = 2
)

// Valid reports whether f is one of the three defined formats.
func (f Format) Valid() bool { return f >= Format0 && f <= Format2 }

// shiftTable maps a distance threshold to the shift used at and above
// that threshold, for one format. dcShift is the shift used at d=0,
// which is not part of the threshold ladder (see shiftFor).
type shiftTable struct {
	thresholds []int // descending, e.g. {8,6,4,2,1}
	shifts     []int // shifts[i] applies when d >= thresholds[i]
	dcShift    int   // shift at d == 0
}

// quantTables holds the three format-indexed shift tables transcribed
// directly from the specification.
var quantTables = [3]shiftTable{
	Format0: {thresholds: []int{8, 6, 4, 2, 1}, shifts: []int{6, 5, 4, 3, 2}, dcShift: 3},
	Format1: {thresholds: []int{8, 6, 4, 2, 1}, shifts: []int{5, 4, 3, 2, 2}, dcShift: 3},
	Format2: {thresholds: []int{8, 6, 4, 2, 1}, shifts: []int{4, 3, 2, 1, 1}, dcShift: 3},
}

// shiftFor returns the quantization shift for coefficient position
// (i,j) under format f.
func shiftFor(f Format, i, j int) int {
	d := i + j
	tbl := quantTables[f]
	if d == 0 {
		return tbl.dcShift
	}
	// thresholds is sorted descending; find the first one d meets.
	idx := sort.Search(len(tbl.thresholds), func(k int) bool { return tbl.thresholds[k] <= d })
	return tbl.shifts[idx]
}

// Quantize quantizes a post-DCT coefficient block under format f,
// clamping each result to the signed 9-bit range [-256,255].
func Quantize(f Format, x Block) Block {
	var q Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			s := shiftFor(f, i, j)
			half := 1 << (s - 1)
			v := (x[i][j] + half) >> s
			q[i][j] = clamp(v, -256, 255)
		}
	}
	return q
}

// QuantizeChecked is Quantize's assertion-checked counterpart, used by the
// pipeline driver instead of Quantize: rather than silently clamping an
// out-of-range result, it reports an InternalError naming the offending
// position the first time one occurs. Under these shift tables and an
// 8-bit-sourced DCT, a post-DCT coefficient should never quantize outside
// [-256,255], so reaching the error path means the codec's own arithmetic
// invariants were violated, not that the input was malformed.
func QuantizeChecked(f Format, x Block) (Block, error) {
	var q Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			s := shiftFor(f, i, j)
			half := 1 << (s - 1)
			v := (x[i][j] + half) >> s
			if v < -256 || v > 255 {
				return Block{}, NewInternalError("quantized coefficient at (%d,%d) = %d out of range [-256,255]", i, j, v)
			}
			q[i][j] = v
		}
	}
	return q, nil
}

// Dequantize reverses Quantize: multiplies each coefficient by
// 2^shiftFor(f,i,j). Position (0,0) always uses shift 3 (multiplier 8)
// across every format, matching the encoder's dcShift.
func Dequantize(f Format, q Block) Block {
	var x Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			s := shiftFor(f, i, j)
			x[i][j] = q[i][j] << s
		}
	}
	return x
}
