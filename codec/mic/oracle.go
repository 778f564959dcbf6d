//go:build micoracle
// +build micoracle

/*
DESCRIPTION
  oracle.go retains the double-precision DCT/IDCT path the source gated
  behind "debug level 4" as a reference oracle for tests only (see design
  notes: "the encoder's debug level 4 double-precision path is
  specification-exempt"). It is never called by Quantize, ForwardDCT,
  InverseDCT or any conforming encode/decode path — only by this
  package's tests, to bound the fixed-point rounding error the spec's
  "within +/-1 LSB" round-trip property allows. Gated behind the
  micoracle build tag so gonum/mat is never a dependency of the
  conforming bitstream path; tests that use it carry the same tag.

  Built with gonum/mat's small dense matrices rather than nested float64
  loops, since a single 8x8 change-of-basis is exactly the kind of
  compact linear algebra gonum is for.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// doubleCoeffMatrix returns the un-quantized double-precision DCT basis
// matrix C[i][j] = alpha(i) * cos(pi*i*(j+0.5)/8), the same formula
// NewCoeffMatrix scales to Q4.12.
func doubleCoeffMatrix() *mat.Dense {
	c := mat.NewDense(BlockSize, BlockSize, nil)
	for i := 0; i < BlockSize; i++ {
		alpha := math.Sqrt(2.0 / BlockSize)
		if i == 0 {
			alpha = math.Sqrt(1.0 / BlockSize)
		}
		for j := 0; j < BlockSize; j++ {
			c.Set(i, j, alpha*math.Cos(math.Pi*float64(i)*(float64(j)+0.5)/BlockSize))
		}
	}
	return c
}

// oracleForwardDCT computes Y = C * X * C^T in double precision, the
// textbook two-pass separable DCT with no intermediate rounding.
func oracleForwardDCT(x Block) Block {
	c := doubleCoeffMatrix()
	xd := mat.NewDense(BlockSize, BlockSize, nil)
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			xd.Set(i, j, float64(x[i][j]))
		}
	}
	var t, y mat.Dense
	t.Mul(xd, c.T())
	y.Mul(c, &t)
	var out Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			out[i][j] = int(math.Round(y.At(i, j)))
		}
	}
	return out
}

// oracleInverseDCT computes X = C^T * Y * C in double precision and
// clamps to [0,255], the reference inverse transform.
func oracleInverseDCT(y Block) Block {
	c := doubleCoeffMatrix()
	yd := mat.NewDense(BlockSize, BlockSize, nil)
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			yd.Set(i, j, float64(y[i][j]))
		}
	}
	var t, x mat.Dense
	t.Mul(yd, c)
	x.Mul(c.T(), &t)
	var out Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			out[i][j] = clamp(int(math.Round(x.At(i, j))), 0, 255)
		}
	}
	return out
}
