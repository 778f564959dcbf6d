/*
DESCRIPTION
  color.go implements the RGB<->YUV colorspace transform: integer
  matrices with hardware-matching rounding biases and clamping.

LICENSE
  Copyright (C) 2026 the mic authors. All rights reserved.
  Use of this source code is governed by a BSD-style license that can be
  found in the LICENSE file of this repository.
*/

package mic

// Rounding biases baked into the encode matrix: ((16*2+1)<<15) for luma,
// ((128*2+1)<<15) for chroma, matching the hardware's round-to-nearest
// construction at the >>16 step.
const (
	yBias = (16*2 + 1) << 15
	cBias = (128*2 + 1) << 15
)

// RGBToYUV converts an RGBImage to a full-resolution YUV image (U and V
// not yet chroma-subsampled; callers resample with Downsample before
// building a YUV422Image). Y is clamped to [0,255]; U and V are left
// unclamped here, carrying pre-filter headroom the chroma resampler's
// clamp consumes.
func RGBToYUV(img *RGBImage) (y, u, v []int) {
	n := img.Rows * img.Cols
	y = make([]int, n)
	u = make([]int, n)
	v = make([]int, n)
	for i := 0; i < n; i++ {
		r, g, b := int(img.R[i]), int(img.G[i]), int(img.B[i])
		yy := (16843*r + 33030*g + 6423*b + yBias) >> 16
		uu := (-9699*r - 19071*g + 28770*b + cBias) >> 16
		vv := (28770*r - 24117*g - 4653*b + cBias) >> 16
		y[i] = clamp(yy, 0, 255)
		u[i] = uu
		v[i] = vv
	}
	return y, u, v
}

// YUVToRGB converts full-resolution Y, U, V integer sample planes back to
// an RGBImage, clamping each output channel to [0,255].
func YUVToRGB(rows, cols int, y, u, v []int) *RGBImage {
	img := NewRGBImage(rows, cols)
	for i := range y {
		yy := y[i] - 16
		uu := u[i] - 128
		vv := v[i] - 128
		r := (76284*yy + 104595*vv) >> 16
		g := (76284*yy - 25624*uu - 53281*vv) >> 16
		b := (76284*yy + 132251*uu) >> 16
		img.R[i] = clampByte(r)
		img.G[i] = clampByte(g)
		img.B[i] = clampByte(b)
	}
	return img
}
