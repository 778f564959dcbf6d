/*
DESCRIPTION
  chroma.go implements the 4:2:2 chroma resampler: a 7-tap decimating
  low-pass filter on encode, and a 6-tap interpolator on decode. Y is
  never touched by either direction.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

// downsampleTaps are the symmetric 7-tap decimation filter coefficients,
// applied over a /512 normalization with a +256 rounding bias.
var downsampleTaps = [7]int{22, -52, 159, 256, 159, -52, 22}

const (
	downsampleBias  = 256
	downsampleShift = 9
)

// upsampleTaps are the 6-tap interpolation filter coefficients for odd
// output columns, applied over a /256 normalization with a +128 bias.
var upsampleTaps = [6]int{21, -52, 159, 159, -52, 21}

const (
	upsampleBias  = 128
	upsampleShift = 8
)

// clampIdx mirrors a source index at the plane boundary by clamping to
// [0,max].
func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

// Downsample applies the 7-tap horizontal decimating filter to one
// full-width row of pre-filter chroma samples (as produced by RGBToYUV)
// and returns the half-width, clamped result.
func Downsample(row []int) []byte {
	w := len(row)
	out := make([]byte, w/2)
	for j := 0; j < w; j += 2 {
		sum := 0
		for t, tap := range downsampleTaps {
			srcIdx := j + (t - 3)
			sum += tap * row[clampIdx(srcIdx, w-1)]
		}
		out[j/2] = clampByte((sum + downsampleBias) >> downsampleShift)
	}
	return out
}

// Upsample expands one half-width row of chroma samples back to full
// width: even output columns copy directly, odd columns are produced by
// the 6-tap interpolator. The result is not clamped, matching the
// pre-YUV->RGB headroom the spec calls for.
func Upsample(half []byte, fullWidth int) []int {
	hw := len(half)
	out := make([]int, fullWidth)
	for j := 0; j < fullWidth; j++ {
		if j%2 == 0 {
			out[j] = int(half[j/2])
			continue
		}
		base := j / 2
		sum := 0
		for t, tap := range upsampleTaps {
			srcIdx := clampIdx(base+(t-2), hw-1)
			sum += tap * int(half[srcIdx])
		}
		out[j] = (sum + upsampleBias) >> upsampleShift
	}
	return out
}
