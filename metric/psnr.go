/*
DESCRIPTION
  psnr.go computes the peak signal-to-noise ratio between two RGB
  images, pooling squared error across all three channels before taking
  the root-mean-square — matching sw/Compare.c's PSNR formula rather
  than averaging three per-channel PSNR values.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mcmaster-ece/mic/codec/mic"
)

// Result holds the pooled (all three channels together) comparison of two
// images.
type Result struct {
	MeanSquaredError float64
	PSNR             float64 // in dB; +Inf when the images are identical.
}

// Compare returns the pooled MSE and PSNR between a (reference) and b
// (reconstructed), treating R, G, and B samples as one combined
// population, per the reference comparator.
func Compare(a, b *mic.RGBImage) (Result, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return Result{}, fmt.Errorf("metric: dimension mismatch %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	n := len(a.R)
	sq := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		sq = append(sq,
			square(int(a.R[i])-int(b.R[i])),
			square(int(a.G[i])-int(b.G[i])),
			square(int(a.B[i])-int(b.B[i])),
		)
	}
	mse := stat.Mean(sq, nil)
	if mse == 0 {
		return Result{MeanSquaredError: 0, PSNR: math.Inf(1)}, nil
	}
	rmse := math.Sqrt(mse)
	return Result{
		MeanSquaredError: mse,
		PSNR:             20 * math.Log10(255/rmse),
	}, nil
}

func square(d int) float64 { return float64(d * d) }
