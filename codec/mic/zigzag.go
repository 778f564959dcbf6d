/*
DESCRIPTION
  zigzag.go defines the fixed 64-entry zigzag scan permutation that orders
  8x8 block positions from DC toward high frequencies, and its inverse.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

// ScanPattern[k] = row*8 + col for the k'th position visited by the
// zigzag scan, ordering coefficients from DC (k=0) to the highest
// frequency (k=63).
var ScanPattern = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// Scan flattens an 8x8 block into 64 coefficients in zigzag order.
func Scan(b Block) [64]int {
	var out [64]int
	for k, pos := range ScanPattern {
		out[k] = b[pos/8][pos%8]
	}
	return out
}

// Unscan is the inverse of Scan: it writes 64 zigzag-ordered coefficients
// back into an 8x8 block.
func Unscan(coeffs [64]int) Block {
	var b Block
	for k, pos := range ScanPattern {
		b[pos/8][pos%8] = coeffs[k]
	}
	return b
}
